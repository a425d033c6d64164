package models

import "fmt"

// ItemError records why one item of a batch operation was rejected
type ItemError struct {
	Fields Fields
	Row    int // 1-based data row for file imports, 0 otherwise
	Err    error
}

func (e ItemError) Error() string {
	name := e.Fields.Name + " " + e.Fields.Surname
	if e.Row > 0 {
		return fmt.Sprintf("row %d (%s): %v", e.Row, name, e.Err)
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// BatchResult is the outcome of a partial-failure batch: what went through and what did not
type BatchResult struct {
	Succeeded []*Contact
	Failed    []ItemError
}

// Ok reports whether every item succeeded
func (r BatchResult) Ok() bool {
	return len(r.Failed) == 0
}
