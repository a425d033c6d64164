package database

// DataStore defines the unified interface for all persistent data operations.
// Consumers can depend on the smaller ContactReader or ContactWriter interfaces
// for better testability and clearer dependencies.
type DataStore interface {
	ContactRepository
}
