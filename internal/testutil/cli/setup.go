package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/logging"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(db, app.WithLogger(logging.Discard()))

	return db, appInstance
}

// CreateTestContact wraps testutil.CreateTestContact for CLI tests
// Inserts a row into the persistent store directly
func CreateTestContact(t *testing.T, db *sql.DB, name, surname, number, email string) int64 {
	t.Helper()
	return testutil.CreateTestContact(t, db, name, surname, number, email)
}
