// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a field value fails validation.
	// The field-specific sentinels below all wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a looked-up entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Field validation errors. Each wraps ErrValidation.
var (
	// ErrEmptyName is returned when a name is empty after trimming.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrInvalidPhoneFormat is returned when a phone is not exactly 10 digits.
	ErrInvalidPhoneFormat = fmt.Errorf("%w: phone must contain exactly 10 digits", ErrValidation)

	// ErrInvalidDateFormat is returned when a birthday is not a real DD.MM.YYYY date.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format, use DD.MM.YYYY", ErrValidation)
)

// Lookup errors. Each wraps ErrNotFound.
var (
	// ErrContactNotFound is returned when no record exists for a name.
	ErrContactNotFound = fmt.Errorf("%w: contact", ErrNotFound)

	// ErrPhoneNotFound is returned when a record has no phone equal to the requested value.
	ErrPhoneNotFound = fmt.Errorf("%w: phone", ErrNotFound)
)

// ValidationError describes a rejected field value. Err holds the
// field-specific sentinel so callers can classify it with errors.Is.
type ValidationError struct {
	Field   string // The field being validated (e.g., "name", "phone")
	Value   string // The raw value that was rejected
	Message string // Human readable reason
	Err     error  // Sentinel error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, value, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is any kind of field validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
