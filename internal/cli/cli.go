// Package cli provides the shared plumbing of the phonebook commands:
// the CLI container, output formatting and error-to-exit-code mapping.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned instances close the App; shared ones leave it to their creator
	owned bool
}

// NewCLI opens the persistent store, builds the App and loads the seed file into
// the local store
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithLogger(slog.Default()),
		app.WithSeedFile(cfg.Local.SeedFile, cfg.Local.Autosave),
	)

	res, err := application.LoadSeed(ctx)
	if err != nil {
		_ = application.Close()
		return nil, err
	}
	if len(res.Succeeded) > 0 || len(res.Failed) > 0 {
		slog.Info("seed file loaded", "path", cfg.Local.SeedFile, "loaded", len(res.Succeeded), "skipped", len(res.Failed))
	}

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Shared returns a view of c whose Close is a no-op
func (c *CLI) Shared() *CLI {
	return &CLI{App: c.App, Config: c.Config}
}

// ExportPath returns path, or the configured default export file when path is empty
func (c *CLI) ExportPath(path string) string {
	if path != "" {
		return path
	}
	if c.Config != nil && c.Config.Export.DefaultPath != "" {
		return c.Config.Export.DefaultPath
	}
	return config.Default().Export.DefaultPath
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
