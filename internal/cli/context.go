package cli

import (
	"context"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
)

type contextKey string

const (
	cliKey    contextKey = "cli"
	configKey contextKey = "config"
)

// WithCLI stores a live CLI that every command run with ctx reuses
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c.Shared())
}

// WithApp stores a CLI around an App built elsewhere, such as a test App.
// The App is shared and never closed by commands.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return WithCLI(ctx, &CLI{App: a, Config: config.Default()})
}

// WithConfig stores the loaded configuration for NewCLI
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// HasCLI reports whether ctx already carries a CLI
func HasCLI(ctx context.Context) bool {
	_, ok := ctx.Value(cliKey).(*CLI)
	return ok
}

// GetCLIFromContext returns the CLI for a command. A CLI stored with WithCLI
// or WithApp is shared; otherwise a new CLI is opened and the caller must Close it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(cliKey).(*CLI); ok {
		return c, nil
	}

	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, err
		}
	}
	return NewCLI(ctx, cfg)
}
