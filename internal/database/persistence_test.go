package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// TestContactsSurviveRestart verifies rows and uniqueness hold across a close and reopen
func TestContactsSurviveRestart(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	ctx := context.Background()

	_, err := NewRepository(db).CreateContact(ctx, "Jane", "Doe", "1", "jane@doe.com")
	require.NoError(t, err)

	db = closeAndReopenDB(t, db, dbPath)
	defer db.Close()
	repo := NewRepository(db)

	res, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, res.Succeeded, 1)
	assert.Equal(t, "Jane Doe", res.Succeeded[0].FullName())

	_, err = repo.CreateContact(ctx, "John", "Doe", "1", "")
	assert.ErrorIs(t, err, models.ErrDuplicateNumber)
}

// TestMigrationsAreIdempotent verifies that opening an existing database keeps its data
func TestMigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := NewRepository(db).CreateContact(ctx, "Jane", "Doe", "1", "")
	require.NoError(t, err)

	require.NoError(t, runMigrations(ctx, db))

	n, err := NewRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ============================================================================
// STORAGE FAULTS
// ============================================================================

func TestFetchAll_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectContactColumns)).WillReturnError(errors.New("disk I/O error"))

	_, err = NewRepository(db).FetchAll(context.Background())
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_StorageErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM contacts WHERE email = ?`)).
		WithArgs("jane@doe.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM contacts WHERE number = ?`)).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contacts`)).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	_, err = NewRepository(db).CreateContact(context.Background(), "Jane", "Doe", "1", "jane@doe.com")
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_DuplicateRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM contacts WHERE number = ?`)).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = NewRepository(db).CreateContact(context.Background(), "Jane", "Doe", "1", "")
	assert.ErrorIs(t, err, models.ErrDuplicateNumber)
	assert.NotErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContact_BeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

	_, err = NewRepository(db).UpdateContact(context.Background(), "", "1", models.Fields{
		Name: "Jane", Surname: "Doe", Number: "1",
	})
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContact_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts`)).WillReturnError(errors.New("readonly database"))

	_, err = NewRepository(db).DeleteContact(context.Background(), "", "1")
	assert.ErrorIs(t, err, models.ErrStorage)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%doe%", likePattern("doe"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
