package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneValues(r *Record) []string {
	out := make([]string, 0)
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("  John ")
	require.NoError(t, err)
	assert.Equal(t, "John", r.Name().String())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)

	_, err = NewRecord("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRecord_AddPhone(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)

	p, err := r.AddPhone(" 1234567890 ")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", p.String())

	// duplicates are allowed
	_, err = r.AddPhone("1234567890")
	require.NoError(t, err)

	_, err = r.AddPhone("12345")
	assert.ErrorIs(t, err, ErrInvalidPhoneFormat)

	assert.Equal(t, []string{"1234567890", "1234567890"}, phoneValues(r))
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)
	for _, p := range []string{"1111111111", "2222222222", "1111111111"} {
		_, err := r.AddPhone(p)
		require.NoError(t, err)
	}

	assert.True(t, r.RemovePhone("1111111111"))
	assert.Equal(t, []string{"2222222222", "1111111111"}, phoneValues(r), "only the first match is removed")

	assert.False(t, r.RemovePhone("3333333333"))
	assert.Equal(t, []string{"2222222222", "1111111111"}, phoneValues(r))
}

func TestRecord_EditPhone(t *testing.T) {
	t.Parallel()

	newRecord := func(t *testing.T) *Record {
		r, err := NewRecord("John")
		require.NoError(t, err)
		for _, p := range []string{"1111111111", "2222222222", "3333333333"} {
			_, err := r.AddPhone(p)
			require.NoError(t, err)
		}
		return r
	}

	t.Run("replaces in place", func(t *testing.T) {
		r := newRecord(t)
		require.NoError(t, r.EditPhone("2222222222", "9999999999"))
		assert.Equal(t, []string{"1111111111", "9999999999", "3333333333"}, phoneValues(r))
	})

	t.Run("old phone missing", func(t *testing.T) {
		r := newRecord(t)
		err := r.EditPhone("0000000000", "9999999999")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPhoneNotFound)
		assert.True(t, IsNotFoundError(err))
		assert.Equal(t, []string{"1111111111", "2222222222", "3333333333"}, phoneValues(r))
	})

	t.Run("old phone missing is reported before new phone validation", func(t *testing.T) {
		r := newRecord(t)
		err := r.EditPhone("0000000000", "bad")
		assert.ErrorIs(t, err, ErrPhoneNotFound)
	})

	t.Run("invalid new phone", func(t *testing.T) {
		r := newRecord(t)
		err := r.EditPhone("1111111111", "12-34")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
		assert.Equal(t, []string{"1111111111", "2222222222", "3333333333"}, phoneValues(r))
	})
}

func TestRecord_FindPhone(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)
	_, err = r.AddPhone("5555555555")
	require.NoError(t, err)

	p, ok := r.FindPhone("5555555555")
	assert.True(t, ok)
	assert.Equal(t, "5555555555", p.String())

	_, ok = r.FindPhone("6666666666")
	assert.False(t, ok)
}

func TestRecord_SetBirthday(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)

	_, err = r.SetBirthday("1.1.1990")
	require.NoError(t, err)
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.1990", b.String())

	// overwrite, never an error
	_, err = r.SetBirthday("02.02.1992")
	require.NoError(t, err)
	b, _ = r.Birthday()
	assert.Equal(t, "02.02.1992", b.String())

	// a rejected value keeps the previous birthday
	_, err = r.SetBirthday("31.02.1992")
	assert.True(t, errors.Is(err, ErrInvalidDateFormat))
	b, _ = r.Birthday()
	assert.Equal(t, "02.02.1992", b.String())

	assert.True(t, r.RemoveBirthday())
	assert.False(t, r.RemoveBirthday())
	_, ok = r.Birthday()
	assert.False(t, ok)
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)
	_, err = r.AddPhone("1234567890")
	require.NoError(t, err)

	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}
	assert.Equal(t, []string{"1234567890"}, phoneValues(r))
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("John")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John, phones: , birthday: —", r.String())

	_, err = r.AddPhone("1234567890")
	require.NoError(t, err)
	_, err = r.AddPhone("5555555555")
	require.NoError(t, err)
	_, err = r.SetBirthday("01.01.1990")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555, birthday: 01.01.1990", r.String())
}
