package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsIOError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrIO",
			err:      ErrIO,
			expected: true,
		},
		{
			name:     "wrapped ErrIO",
			err:      fmt.Errorf("failed to do something: %w", ErrIO),
			expected: true,
		},
		{
			name:     "IO StoreError",
			err:      NewIOError(EntityAddressBook, "save", "failed to write", errors.New("disk full")),
			expected: true,
		},
		{
			name:     "corrupt data",
			err:      ErrCorrupt,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIOError(tt.err); got != tt.expected {
				t.Errorf("IsIOError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCorruptionErrorsWrapErrCorrupt(t *testing.T) {
	for _, err := range []error{ErrUnsupportedVersion, ErrDuplicateContact} {
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("%v should wrap ErrCorrupt", err)
		}
		if IsIOError(err) {
			t.Errorf("%v should not be an I/O error", err)
		}
	}
}
