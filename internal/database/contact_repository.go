package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ContactRepo handles data access for the contacts table.
// Uniqueness of number and non-empty email is enforced here, independently of the local store.
type ContactRepo struct {
	db *sql.DB
}

const selectContactColumns = `SELECT name, surname, number, email FROM contacts`

// CreateContact validates and inserts a contact, returning its row id.
// The duplicate checks and the insert share one transaction.
func (r *ContactRepo) CreateContact(ctx context.Context, name, surname, number, email string) (int64, error) {
	if _, err := models.NewContact(name, surname, number, email); err != nil {
		return 0, err
	}

	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if email != "" {
			n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM contacts WHERE email = ?`, email)
			if err != nil {
				return err
			}
			if n > 0 {
				return models.ErrDuplicateEmail
			}
		}

		n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM contacts WHERE number = ?`, number)
		if err != nil {
			return err
		}
		if n > 0 {
			return models.ErrDuplicateNumber
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (name, surname, number, email) VALUES (?, ?, ?, ?)`,
			name, surname, number, email,
		)
		if err != nil {
			return storageErr("insert contact", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return storageErr("read inserted id", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FetchAll loads every row. Rows that no longer pass validation are skipped and
// reported in the result rather than failing the whole fetch.
func (r *ContactRepo) FetchAll(ctx context.Context) (models.BatchResult, error) {
	rows, err := r.db.QueryContext(ctx, selectContactColumns+` ORDER BY id`)
	if err != nil {
		return models.BatchResult{}, storageErr("fetch contacts", err)
	}
	defer rows.Close()

	var res models.BatchResult
	for rows.Next() {
		f, err := scanFields(rows)
		if err != nil {
			return models.BatchResult{}, err
		}

		c, err := models.FromFields(f)
		if err != nil {
			res.Failed = append(res.Failed, models.ItemError{Fields: f, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, c)
	}
	if err := rows.Err(); err != nil {
		return models.BatchResult{}, storageErr("fetch contacts", err)
	}

	return res, nil
}

// FindByFullName returns the first row whose name and surname equal the two query tokens exactly
func (r *ContactRepo) FindByFullName(ctx context.Context, fullName string) (*models.Contact, error) {
	name, surname, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		selectContactColumns+` WHERE name = ? AND surname = ? ORDER BY id LIMIT 1`,
		name, surname,
	)
	return scanContact(row)
}

// FindByNumber returns the row holding the given number
func (r *ContactRepo) FindByNumber(ctx context.Context, number string) (*models.Contact, error) {
	row := r.db.QueryRowContext(ctx,
		selectContactColumns+` WHERE number = ? ORDER BY id LIMIT 1`,
		number,
	)
	return scanContact(row)
}

// FindByKeyword returns rows whose name, surname, number or email contains keyword.
// Matching follows SQLite LIKE, which ignores ASCII case. Invalid rows are skipped.
func (r *ContactRepo) FindByKeyword(ctx context.Context, keyword string) ([]*models.Contact, error) {
	pattern := likePattern(keyword)
	rows, err := r.db.QueryContext(ctx,
		selectContactColumns+` WHERE name LIKE ? ESCAPE '\' OR surname LIKE ? ESCAPE '\'
			OR number LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\' ORDER BY id`,
		pattern, pattern, pattern, pattern,
	)
	if err != nil {
		return nil, storageErr("search contacts", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		f, err := scanFields(rows)
		if err != nil {
			return nil, err
		}
		c, err := models.FromFields(f)
		if err != nil {
			slog.Warn("skipping invalid stored contact", "name", f.Name, "surname", f.Surname, "reason", err)
			continue
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("search contacts", err)
	}

	return contacts, nil
}

// UpdateContact rewrites the row identified by (oldEmail, oldNumber).
// The new email and number must not be used by any other row. It returns false
// without error when no row matches the old pair.
func (r *ContactRepo) UpdateContact(ctx context.Context, oldEmail, oldNumber string, f models.Fields) (bool, error) {
	if err := f.Validate(); err != nil {
		return false, err
	}

	updated := false
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var targetID int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM contacts WHERE email = ? AND number = ? ORDER BY id LIMIT 1`,
			oldEmail, oldNumber,
		).Scan(&targetID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return storageErr("find contact", err)
		}

		if f.Email != "" {
			n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM contacts WHERE email = ? AND id != ?`, f.Email, targetID)
			if err != nil {
				return err
			}
			if n > 0 {
				return models.ErrDuplicateEmail
			}
		}

		n, err := countRows(ctx, tx, `SELECT COUNT(*) FROM contacts WHERE number = ? AND id != ?`, f.Number, targetID)
		if err != nil {
			return err
		}
		if n > 0 {
			return models.ErrDuplicateNumber
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE contacts SET name = ?, surname = ?, number = ?, email = ? WHERE id = ?`,
			f.Name, f.Surname, f.Number, f.Email, targetID,
		)
		if err != nil {
			return storageErr("update contact", err)
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// DeleteContact removes the row identified by (email, number) and reports whether one existed
func (r *ContactRepo) DeleteContact(ctx context.Context, email, number string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE email = ? AND number = ?`, email, number)
	if err != nil {
		return false, storageErr("delete contact", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("delete contact", err)
	}
	return n > 0, nil
}

// Count returns the number of stored rows, valid or not
func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM contacts`)
}

// ============================================================================
// ROW SCANNING HELPERS
// ============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanFields(s scanner) (models.Fields, error) {
	var name, surname, number, email sql.NullString
	if err := s.Scan(&name, &surname, &number, &email); err != nil {
		return models.Fields{}, storageErr("scan contact", err)
	}
	return models.Fields{
		Name:    NullStringToString(name),
		Surname: NullStringToString(surname),
		Number:  NullStringToString(number),
		Email:   NullStringToString(email),
	}, nil
}

func scanContact(row *sql.Row) (*models.Contact, error) {
	var name, surname, number, email sql.NullString
	err := row.Scan(&name, &surname, &number, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("scan contact", err)
	}
	return models.NewContact(
		NullStringToString(name),
		NullStringToString(surname),
		NullStringToString(number),
		NullStringToString(email),
	)
}
