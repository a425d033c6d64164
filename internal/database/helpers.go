package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
// Errors returned by fn are passed through untouched.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}

	return nil
}

// storageErr marks a driver failure as models.ErrStorage while keeping the cause
func storageErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, models.ErrStorage, err)
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// countRows runs a SELECT COUNT(*) query and returns the count
func countRows(ctx context.Context, q queryer, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, storageErr("count contacts", err)
	}
	return n, nil
}

// splitFullName splits "Name Surname" into its two tokens
func splitFullName(fullName string) (string, string, error) {
	tokens := strings.Fields(fullName)
	if len(tokens) != 2 {
		return "", "", models.ErrInvalidQuery
	}
	return tokens[0], tokens[1], nil
}

// likePattern builds a %keyword% pattern with LIKE wildcards in keyword escaped
func likePattern(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(keyword) + "%"
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
