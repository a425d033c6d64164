package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ============================================================================
// CREATE
// ============================================================================

func TestCreateContact(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	id1, err := repo.CreateContact(ctx, "Jane", "Doe", "1234567890", "jane@doe.com")
	if err != nil {
		t.Fatalf("Failed to create contact: %v", err)
	}
	id2, err := repo.CreateContact(ctx, "John", "Doe", "555", "")
	if err != nil {
		t.Fatalf("Failed to create contact: %v", err)
	}

	if id1 <= 0 || id2 <= id1 {
		t.Errorf("Expected increasing positive ids, got %d and %d", id1, id2)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows, got %d", count)
	}
}

func TestCreateContact_Duplicates(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", "jane@doe.com"); err != nil {
		t.Fatalf("Failed to create contact: %v", err)
	}

	_, err := repo.CreateContact(ctx, "Janet", "Doe", "2", "jane@doe.com")
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}

	_, err = repo.CreateContact(ctx, "Janet", "Doe", "1", "janet@doe.com")
	if !errors.Is(err, models.ErrDuplicateNumber) {
		t.Errorf("Expected ErrDuplicateNumber, got %v", err)
	}

	// Email is checked first when both collide
	_, err = repo.CreateContact(ctx, "Janet", "Doe", "1", "jane@doe.com")
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateContact_EmptyEmailsDoNotCollide(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateContact(ctx, "John", "Doe", "2", ""); err != nil {
		t.Errorf("second contact without email should be accepted: %v", err)
	}
}

func TestCreateContact_InvalidField(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateContact(ctx, strings.Repeat("A", 51), "Smith", "123", "")
	if !errors.Is(err, models.ErrInvalidField) {
		t.Errorf("Expected ErrInvalidField, got %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Errorf("invalid contact must not be inserted, found %d rows", count)
	}
}

// ============================================================================
// READ
// ============================================================================

func TestFetchAll_SkipsInvalidRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", "jane@doe.com"); err != nil {
		t.Fatal(err)
	}
	insertRawContact(t, db, "R2D2", "Droid", "2", "")
	insertRawContact(t, db, nil, "Ghost", "3", nil)
	if _, err := repo.CreateContact(ctx, "John", "Doe", "4", ""); err != nil {
		t.Fatal(err)
	}

	res, err := repo.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(res.Succeeded) != 2 {
		t.Fatalf("Expected 2 valid contacts, got %d", len(res.Succeeded))
	}
	if res.Succeeded[0].Name() != "Jane" || res.Succeeded[1].Name() != "John" {
		t.Errorf("Unexpected order: %v", res.Succeeded)
	}

	if len(res.Failed) != 2 {
		t.Fatalf("Expected 2 skipped rows, got %d", len(res.Failed))
	}
	for _, f := range res.Failed {
		if !errors.Is(f, models.ErrInvalidField) {
			t.Errorf("Expected skipped row to carry ErrInvalidField, got %v", f.Err)
		}
	}
	if res.Failed[0].Fields.Name != "R2D2" {
		t.Errorf("Expected skipped row to keep its fields, got %+v", res.Failed[0].Fields)
	}
}

func TestFindByFullName_ExactMatch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", ""); err != nil {
		t.Fatal(err)
	}

	c, err := repo.FindByFullName(ctx, "Jane Doe")
	if err != nil {
		t.Fatalf("FindByFullName failed: %v", err)
	}
	if c.Number() != "1" {
		t.Errorf("Expected number 1, got %s", c.Number())
	}

	if _, err := repo.FindByFullName(ctx, "Jan Doe"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("substring must not match, got %v", err)
	}
	if _, err := repo.FindByFullName(ctx, "Jane"); !errors.Is(err, models.ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery, got %v", err)
	}
}

func TestFindByNumber(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", ""); err != nil {
		t.Fatal(err)
	}

	c, err := repo.FindByNumber(ctx, "1")
	if err != nil {
		t.Fatalf("FindByNumber failed: %v", err)
	}
	if c.FullName() != "Jane Doe" {
		t.Errorf("Expected Jane Doe, got %s", c.FullName())
	}

	if _, err := repo.FindByNumber(ctx, "2"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindByKeyword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seed := []models.Fields{
		{Name: "Jane", Surname: "Doe", Number: "111", Email: "jane@doe.com"},
		{Name: "Bob", Surname: "Smith", Number: "222", Email: "bob@work.org"},
		{Name: "Alice", Surname: "Meyer", Number: "333111", Email: ""},
	}
	for _, f := range seed {
		if _, err := repo.CreateContact(ctx, f.Name, f.Surname, f.Number, f.Email); err != nil {
			t.Fatal(err)
		}
	}
	insertRawContact(t, db, "Bad1", "Row", "999", "")

	tests := []struct {
		keyword string
		want    int
	}{
		{"doe", 1},  // surname and email, case-insensitive
		{"111", 2},  // number substring
		{"work", 1}, // email
		{"JANE", 1},
		{"zzz", 0},
		{"_", 0}, // wildcard characters match literally
		{"Row", 0},
	}

	for _, tt := range tests {
		got, err := repo.FindByKeyword(ctx, tt.keyword)
		if err != nil {
			t.Fatalf("FindByKeyword(%q) failed: %v", tt.keyword, err)
		}
		if len(got) != tt.want {
			t.Errorf("FindByKeyword(%q) returned %d contacts, want %d", tt.keyword, len(got), tt.want)
		}
	}
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateContact(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", "jane@doe.com"); err != nil {
		t.Fatal(err)
	}

	ok, err := repo.UpdateContact(ctx, "jane@doe.com", "1", models.Fields{
		Name: "Janet", Surname: "Doe", Number: "2", Email: "janet@doe.com",
	})
	if err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected UpdateContact to report an update")
	}

	c, err := repo.FindByNumber(ctx, "2")
	if err != nil {
		t.Fatalf("updated contact not found: %v", err)
	}
	if c.Name() != "Janet" || c.Email() != "janet@doe.com" {
		t.Errorf("Unexpected fields after update: %+v", c.Fields())
	}

	// Keeping its own number and email is not a collision
	ok, err = repo.UpdateContact(ctx, "janet@doe.com", "2", models.Fields{
		Name: "Jan", Surname: "Doe", Number: "2", Email: "janet@doe.com",
	})
	if err != nil || !ok {
		t.Errorf("self update failed: ok=%v err=%v", ok, err)
	}
}

func TestUpdateContact_NoMatchingRow(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	ok, err := repo.UpdateContact(ctx, "ghost@nowhere.com", "000", models.Fields{
		Name: "Jane", Surname: "Doe", Number: "1", Email: "",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected no update for an unknown row")
	}
}

func TestUpdateContact_Collisions(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", "jane@doe.com"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateContact(ctx, "John", "Doe", "2", "john@doe.com"); err != nil {
		t.Fatal(err)
	}

	_, err := repo.UpdateContact(ctx, "jane@doe.com", "1", models.Fields{
		Name: "Jane", Surname: "Doe", Number: "1", Email: "john@doe.com",
	})
	if !errors.Is(err, models.ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}

	_, err = repo.UpdateContact(ctx, "jane@doe.com", "1", models.Fields{
		Name: "Jane", Surname: "Doe", Number: "2", Email: "jane@doe.com",
	})
	if !errors.Is(err, models.ErrDuplicateNumber) {
		t.Errorf("Expected ErrDuplicateNumber, got %v", err)
	}

	_, err = repo.UpdateContact(ctx, "jane@doe.com", "1", models.Fields{
		Name: "Jane", Surname: "Doe", Number: "abc", Email: "",
	})
	if !errors.Is(err, models.ErrInvalidField) {
		t.Errorf("Expected ErrInvalidField, got %v", err)
	}

	c, _ := repo.FindByNumber(ctx, "1")
	if c == nil || c.Email() != "jane@doe.com" {
		t.Error("failed updates must leave the row untouched")
	}
}

func TestDeleteContact(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateContact(ctx, "Jane", "Doe", "1", ""); err != nil {
		t.Fatal(err)
	}

	ok, err := repo.DeleteContact(ctx, "", "1")
	if err != nil || !ok {
		t.Fatalf("DeleteContact: ok=%v err=%v", ok, err)
	}

	ok, err = repo.DeleteContact(ctx, "", "1")
	if err != nil || ok {
		t.Errorf("second delete should be a no-op: ok=%v err=%v", ok, err)
	}
}
