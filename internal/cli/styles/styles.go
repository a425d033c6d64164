// Package styles holds the lipgloss styles of human-readable CLI output
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/phonebook/internal/config"
)

var (
	// Text styles
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style // Table headers
	LabelStyle   lipgloss.Style // For field labels like "Number:"
	ValueStyle   lipgloss.Style // For field values
	SectionStyle lipgloss.Style // For section headers like "Conflicts"
	SubtleStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	EditStyle    lipgloss.Style
	DeleteStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	PromptStyle  lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(colors.Accent))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	EditStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Edit))

	DeleteStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Delete))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg))

	PromptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Delete))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderTable lays rows out in aligned columns under a styled header
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		b.WriteString(" ")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" ")
			b.WriteString(style.Render(cell))
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)+1))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, HeaderStyle)
	for _, row := range rows {
		writeRow(row, ValueStyle)
	}
	return b.String()
}
