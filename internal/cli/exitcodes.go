package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage faults, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// a full-name query that is not two words.
	ExitUsage = 2

	// ExitNotFound indicates a requested contact or file was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: an import file without the required header columns.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: a name, surname, number or email rejected by the field rules.
	ExitValidation = 5

	// ExitConflict indicates the number or email is already held by another contact.
	ExitConflict = 6
)
