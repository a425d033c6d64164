package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestContact inserts a row directly, bypassing validation and duplicate checks
func CreateTestContact(t *testing.T, db *sql.DB, name, surname, number, email string) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO contacts (name, surname, number, email) VALUES (?, ?, ?, ?)",
		name, surname, number, email)
	if err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// CountContacts returns the number of rows in the persistent store
func CountContacts(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM contacts").Scan(&n); err != nil {
		t.Fatalf("Failed to count contacts: %v", err)
	}
	return n
}

// WriteCSV writes rows (header first) to a file in a temp dir and returns its path
func WriteCSV(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write csv: %v", err)
	}
	return path
}

// MustContact builds a valid contact or fails the test
func MustContact(t *testing.T, name, surname, number, email string) *models.Contact {
	t.Helper()
	c, err := models.NewContact(name, surname, number, email)
	if err != nil {
		t.Fatalf("Failed to build contact: %v", err)
	}
	return c
}
