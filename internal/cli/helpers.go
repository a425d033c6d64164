package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("usage error")

// UsageError wraps a message as an ErrUsage
func UsageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

type errorKind struct {
	err        error
	code       string
	exit       int
	suggestion string
}

// kinds is ordered: the first match wins
var kinds = []errorKind{
	{models.ErrInvalidField, "INVALID_FIELD", ExitValidation, ""},
	{models.ErrDuplicateNumber, "DUPLICATE_NUMBER", ExitConflict, "Use 'phonebook contact edit' to change the contact that holds it"},
	{models.ErrDuplicateEmail, "DUPLICATE_EMAIL", ExitConflict, "Use 'phonebook contact edit' to change the contact that holds it"},
	{models.ErrNotFound, "NOT_FOUND", ExitNotFound, "List contacts with: phonebook contact list"},
	{models.ErrInvalidQuery, "INVALID_QUERY", ExitUsage, `Quote the full name: phonebook contact find "Jane Doe"`},
	{models.ErrFileNotFound, "FILE_NOT_FOUND", ExitNotFound, ""},
	{models.ErrMalformedHeader, "MALFORMED_HEADER", ExitDataErr, "The first row must name the columns: Name,Surname,Number,Email"},
	{models.ErrIO, "IO_ERROR", ExitError, ""},
	{models.ErrStorage, "STORAGE_ERROR", ExitError, ""},
	{contactservice.ErrInvalidTarget, "USAGE", ExitUsage, ""},
	{contactservice.ErrEmptyNumber, "USAGE", ExitUsage, ""},
	{contactservice.ErrNothingToUpdate, "USAGE", ExitUsage, "Pass at least one of --name, --surname, --new-number, --email"},
	{contactservice.ErrEmptyPath, "USAGE", ExitUsage, ""},
	{ErrUsage, "USAGE", ExitUsage, ""},
}

func kindOf(err error) (errorKind, bool) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return errorKind{}, false
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	if k, ok := kindOf(err); ok {
		return k.code
	}
	return "ERROR"
}

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if k, ok := kindOf(err); ok {
		return k.exit
	}
	return ExitError
}

// Suggestion returns a hint for the error, or ""
func Suggestion(err error) string {
	if k, ok := kindOf(err); ok {
		return k.suggestion
	}
	return ""
}

// ReportedError is an error the formatter has already shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// Report prints err through f and marks it as reported
func Report(f *OutputFormatter, err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), Suggestion(err)); fmtErr != nil {
		return fmt.Errorf("%w (while formatting: %v)", err, fmtErr)
	}
	return &ReportedError{Err: err}
}

// TargetFor returns the store a command acts on
func TargetFor(cloud bool) models.Target {
	if cloud {
		return models.TargetCloud
	}
	return models.TargetLocal
}
