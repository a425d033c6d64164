package contact

import "errors"

// Contact service errors
var (
	// Validation errors
	ErrInvalidTarget   = errors.New("invalid store (must be: local, cloud)")
	ErrEmptyNumber     = errors.New("number is required to select a contact")
	ErrNothingToUpdate = errors.New("no fields to update")
	ErrEmptyPath       = errors.New("file path cannot be empty")
)
