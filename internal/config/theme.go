package config

// ColorScheme defines the colors of human-readable CLI output
type ColorScheme struct {
	// Preset name ("default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and headers)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - successful writes
	Edit   string `yaml:"edit"`   // Blue - edits
	Delete string `yaml:"delete"` // Red - deletions and confirmations

	// Text colors
	Subtle string `yaml:"subtle"` // Muted text (empty emails, counts)
	Normal string `yaml:"normal"`

	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:    "default",
		Accent:    "#874BFD",
		Create:    "#5FD75F",
		Edit:      "#5F87D7",
		Delete:    "#FF0000",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Create:    "#FFFFFF",
		Edit:      "#FFFFFF",
		Delete:    "#FFFFFF",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}
