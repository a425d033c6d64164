// Package app wires the stores and services of the phonebook together
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/localstore"
	"github.com/thenoetrevino/phonebook/internal/models"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	repo   database.DataStore
	logger *slog.Logger

	seedFile string
	autosave bool
	// seedLoaded is set once the seed file was read without rejecting a row;
	// only then may autosave replace it
	seedLoaded bool

	// Local is the in-memory store, alive for the lifetime of the App
	Local *localstore.Store

	// Service layer (business logic)
	ContactService contactservice.Service

	closeOnce sync.Once
	closeErr  error
}

// New creates a new App with all services initialized.
// The App owns db and closes it in Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	local := localstore.New()

	return &App{
		db:             db,
		repo:           repo,
		logger:         cfg.logger,
		seedFile:       cfg.seedFile,
		autosave:       cfg.autosave,
		Local:          local,
		ContactService: contactservice.NewService(local, repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// LoadSeed imports the configured seed file into the local store.
// A missing seed file is not an error. Autosave stays off unless every row of
// the file was imported.
func (a *App) LoadSeed(ctx context.Context) (models.BatchResult, error) {
	if a.seedFile == "" {
		return models.BatchResult{}, nil
	}

	res, err := a.ContactService.Import(ctx, a.seedFile)
	if errors.Is(err, models.ErrFileNotFound) {
		a.logger.Debug("seed file not found", "path", a.seedFile)
		a.seedLoaded = true
		return models.BatchResult{}, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to load seed file: %w", err)
	}

	if len(res.Failed) > 0 {
		if a.autosave {
			a.logger.Warn("autosave disabled, seed file has rejected rows",
				"path", a.seedFile, "rejected", len(res.Failed))
		}
		return res, nil
	}
	a.seedLoaded = true
	return res, nil
}

// Close saves the local store when autosave is enabled and the seed file was
// loaded cleanly, then closes the database.
// Calling Close more than once returns the first result.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		var errs []error
		if a.autosave && a.seedLoaded && a.seedFile != "" {
			if _, err := a.ContactService.Export(context.Background(), a.seedFile); err != nil {
				errs = append(errs, fmt.Errorf("autosave failed: %w", err))
			}
		}
		if a.db != nil {
			if err := a.db.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close database: %w", err))
			}
		}
		a.closeErr = errors.Join(errs...)
		if a.closeErr != nil {
			a.logger.Error("error closing app", "error", a.closeErr)
		}
	})
	return a.closeErr
}
