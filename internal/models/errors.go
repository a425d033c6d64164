package models

import (
	"errors"

	"github.com/thenoetrevino/phonebook/internal/validation"
)

// Domain-specific errors shared by both contact stores
var (
	// ErrInvalidField indicates a field failed validation. The concrete error is a *validation.FieldError.
	ErrInvalidField = validation.ErrInvalidField

	// ErrDuplicateNumber indicates another contact in the same store already uses the number
	ErrDuplicateNumber = errors.New("number already added")

	// ErrDuplicateEmail indicates another contact in the same store already uses the email
	ErrDuplicateEmail = errors.New("email already added")

	// ErrNotFound indicates a lookup or update matched no contact
	ErrNotFound = errors.New("contact not found")

	// ErrInvalidQuery indicates a full-name query did not split into exactly a name and a surname
	ErrInvalidQuery = errors.New("full name must be a name and a surname separated by whitespace")

	// ErrFileNotFound indicates an import source does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrIO indicates a file could not be read or written
	ErrIO = errors.New("i/o error")

	// ErrMalformedHeader indicates an import file lacks one of the required columns
	ErrMalformedHeader = errors.New("malformed header")

	// ErrStorage indicates the persistent store itself failed
	ErrStorage = errors.New("storage error")
)
