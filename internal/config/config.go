// Package config loads the phonebook configuration file
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/phonebook/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvConfigFile = "PHONEBOOK_CONFIG"
	EnvDatabase   = "PHONEBOOK_DB"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Local    LocalConfig    `yaml:"local"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the persistent store
type DatabaseConfig struct {
	// Empty selects ~/.phonebook/contacts.db
	Path string `yaml:"path"`
}

// LocalConfig controls the lifetime of the in-memory store
type LocalConfig struct {
	// SeedFile is imported into the local store at startup when it exists
	SeedFile string `yaml:"seed_file"`
	// Autosave exports the local store back to SeedFile on shutdown
	Autosave bool `yaml:"autosave"`
}

type ExportConfig struct {
	DefaultPath string `yaml:"default_path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty selects ~/.phonebook/logs/phonebook.log
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from PHONEBOOK_CONFIG or the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvConfigFile)
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			// Return default config if we can't determine config path
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults below
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Fill in any missing values with defaults
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save saves the config to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the config file Load reads
func Path() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "phonebook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "phonebook", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Export.DefaultPath == "" {
		c.Export.DefaultPath = models.DefaultExportPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Theme.ApplyDefaults()
}

func (c *Config) applyEnv() {
	if db := os.Getenv(EnvDatabase); db != "" {
		c.Database.Path = db
	}
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q (must be: debug, info, warn, error)", c.Logging.Level)
	}
	if c.Local.Autosave && c.Local.SeedFile == "" {
		return fmt.Errorf("local.autosave requires local.seed_file")
	}
	return nil
}
