package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger   *slog.Logger
	seedFile string
	autosave bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSeedFile sets the file LoadSeed imports. With autosave, Close exports
// the local store back to it.
func WithSeedFile(path string, autosave bool) Option {
	return func(cfg *appConfig) {
		cfg.seedFile = path
		cfg.autosave = autosave
	}
}
