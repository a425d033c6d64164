package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed.
// Uniqueness is enforced by the repository rather than by constraints, so that
// legacy rows which break the current rules can still be stored and reported.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			surname TEXT,
			number TEXT,
			email TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_number ON contacts(number)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts(email)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_full_name ON contacts(name, surname)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
