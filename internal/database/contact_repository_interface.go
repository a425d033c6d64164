package database

import (
	"context"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ContactReader defines read operations for persisted contacts.
type ContactReader interface {
	FetchAll(ctx context.Context) (models.BatchResult, error)
	FindByFullName(ctx context.Context, fullName string) (*models.Contact, error)
	FindByKeyword(ctx context.Context, keyword string) ([]*models.Contact, error)
	FindByNumber(ctx context.Context, number string) (*models.Contact, error)
	Count(ctx context.Context) (int, error)
}

// ContactWriter defines write operations for persisted contacts.
type ContactWriter interface {
	CreateContact(ctx context.Context, name, surname, number, email string) (int64, error)
	UpdateContact(ctx context.Context, oldEmail, oldNumber string, f models.Fields) (bool, error)
	DeleteContact(ctx context.Context, email, number string) (bool, error)
}

// ContactRepository combines all contact-related operations.
type ContactRepository interface {
	ContactReader
	ContactWriter
}
