package postgres_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/addressbook/internal/platform/postgres"
	"github.com/phrazzld/addressbook/internal/store"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "contacts",
		ColumnName:     "name",
		ConstraintName: "test_constraint",
	}
}

func TestConstraintPredicates(t *testing.T) {
	t.Parallel()

	predicates := map[string]func(error) bool{
		"23505": postgres.IsUniqueViolation,
		"23503": postgres.IsForeignKeyViolation,
		"23514": postgres.IsCheckConstraintViolation,
		"23502": postgres.IsNotNullViolation,
	}

	for code, predicate := range predicates {
		assert.False(t, predicate(nil), "nil error for %s", code)
		assert.False(t, predicate(errors.New("generic error")), "generic error for %s", code)

		for other := range predicates {
			err := fmt.Errorf("wrapped: %w", newPgError(other))
			assert.Equal(t, code == other, predicate(err), "predicate %s on code %s", code, other)
		}
	}
}

func TestConstraintKind(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"23505": "unique",
		"23503": "foreign_key",
		"23514": "check",
		"23502": "not_null",
		"42P01": "",
	}
	for code, want := range tests {
		assert.Equal(t, want, postgres.ConstraintKind(fmt.Errorf("wrapped: %w", newPgError(code))), "code %s", code)
	}
	assert.Empty(t, postgres.ConstraintKind(nil))
	assert.Empty(t, postgres.ConstraintKind(errors.New("generic error")))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		errIs  error
		errMsg string
	}{
		{name: "unique violation", err: newPgError("23505"), errIs: store.ErrDuplicateContact, errMsg: "duplicate contact name"},
		{name: "foreign key violation", err: newPgError("23503"), errIs: store.ErrInvalidEntity, errMsg: "foreign key violation"},
		{name: "check constraint violation", err: newPgError("23514"), errIs: store.ErrInvalidEntity, errMsg: "check constraint violation"},
		{name: "not null violation", err: newPgError("23502"), errIs: store.ErrInvalidEntity, errMsg: "not null violation (name)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := postgres.MapError(tt.err)

			assert.ErrorIs(t, result, tt.errIs)
			assert.ErrorIs(t, result, tt.err, "original error should stay in the chain")
			assert.Contains(t, result.Error(), tt.errMsg)
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	t.Parallel()

	assert.Nil(t, postgres.MapError(nil))

	generic := errors.New("generic error")
	assert.Same(t, generic, postgres.MapError(generic))

	undefinedTable := newPgError("42P01")
	assert.Equal(t, error(undefinedTable), postgres.MapError(undefinedTable))
}
