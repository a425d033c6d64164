package models

import "fmt"

// ============================================================================
// STORE TARGET CONSTANTS
// ============================================================================

// Target selects which contact store an operation works against
type Target string

const (
	// TargetLocal is the in-memory store of the running process
	TargetLocal Target = "local"

	// TargetCloud is the persistent SQLite store
	TargetCloud Target = "cloud"
)

// ParseTarget maps a user supplied store name to a Target
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetLocal, "pc", "":
		return TargetLocal, nil
	case TargetCloud, "db":
		return TargetCloud, nil
	default:
		return "", fmt.Errorf("invalid store '%s' (must be: local, cloud)", s)
	}
}

// ============================================================================
// FILE FORMAT CONSTANTS
// ============================================================================

// Column headers used by CSV and spreadsheet import/export, in file order
const (
	HeaderName    = "Name"
	HeaderSurname = "Surname"
	HeaderNumber  = "Number"
	HeaderEmail   = "Email"
)

// Headers lists the required columns in the order they are written
var Headers = []string{HeaderName, HeaderSurname, HeaderNumber, HeaderEmail}

// DefaultExportPath is used when export is given no destination
const DefaultExportPath = "my_export.csv"
