package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrIO is returned when persisted state cannot be written.
	// Read failures never surface; they degrade to an empty address book.
	ErrIO = errors.New("i/o failure")

	// ErrCorrupt is returned when persisted state exists but cannot be decoded
	// into a valid address book.
	ErrCorrupt = errors.New("persisted data is corrupt")

	// ErrUnsupportedVersion indicates the persisted state was written in a
	// format version this build does not read.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported format version", ErrCorrupt)

	// ErrDuplicateContact indicates two persisted contacts share a name.
	ErrDuplicateContact = fmt.Errorf("%w: duplicate contact name", ErrCorrupt)

	// ErrInvalidEntity is returned when a backend rejects the data being
	// written, for example through a database constraint.
	ErrInvalidEntity = errors.New("invalid entity data")
)

// IsIOError checks if the error is a persistence write failure.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "address_book")
	Operation string // The operation that failed (e.g., "save")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewIOError wraps cause as a StoreError that matches ErrIO.
func NewIOError(entity, operation, message string, cause error) *StoreError {
	return NewStoreError(entity, operation, message, errors.Join(ErrIO, cause))
}
