package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/store"
)

func sampleBook(t *testing.T) *domain.AddressBook {
	t.Helper()
	book := domain.NewAddressBook()

	alice, err := domain.NewRecord("Alice")
	require.NoError(t, err)
	_, err = alice.AddPhone("0123456789")
	require.NoError(t, err)
	_, err = alice.SetBirthday("01.01.1990")
	require.NoError(t, err)
	book.AddRecord(alice)

	bob, err := domain.NewRecord("bob")
	require.NoError(t, err)
	_, err = bob.AddPhone("1111111111")
	require.NoError(t, err)
	_, err = bob.AddPhone("1111111111")
	require.NoError(t, err)
	book.AddRecord(bob)

	return book
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	snap := store.Snapshot(sampleBook(t))
	assert.Equal(t, store.BookSnapshot{
		Version: store.SnapshotVersion,
		Contacts: []store.ContactSnapshot{
			{Name: "Alice", Phones: []string{"0123456789"}, Birthday: "01.01.1990"},
			{Name: "bob", Phones: []string{"1111111111", "1111111111"}},
		},
	}, snap)
}

func TestSnapshotEmptyBook(t *testing.T) {
	t.Parallel()

	snap := store.Snapshot(domain.NewAddressBook())
	assert.Equal(t, store.SnapshotVersion, snap.Version)
	assert.NotNil(t, snap.Contacts)
	assert.Empty(t, snap.Contacts)
}

func TestRehydrateRoundTrip(t *testing.T) {
	t.Parallel()

	original := sampleBook(t)
	restored, err := store.Rehydrate(store.Snapshot(original))
	require.NoError(t, err)

	assert.Equal(t, original.String(), restored.String())
	assert.Equal(t, store.Snapshot(original), store.Snapshot(restored))

	alice, ok := restored.Find("Alice")
	require.True(t, ok)
	phones := alice.Phones()
	require.Len(t, phones, 1)
	assert.Equal(t, "0123456789", phones[0].String())
	b, ok := alice.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.1990", b.String())
}

func TestRehydrateRejectsBadSnapshots(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		snap    store.BookSnapshot
		wantErr error
	}{
		{
			name:    "wrong version",
			snap:    store.BookSnapshot{Version: 2},
			wantErr: store.ErrUnsupportedVersion,
		},
		{
			name:    "missing version",
			snap:    store.BookSnapshot{},
			wantErr: store.ErrUnsupportedVersion,
		},
		{
			name:    "empty name",
			snap:    store.BookSnapshot{Version: 1, Contacts: []store.ContactSnapshot{{Name: " "}}},
			wantErr: domain.ErrEmptyName,
		},
		{
			name: "bad phone",
			snap: store.BookSnapshot{Version: 1, Contacts: []store.ContactSnapshot{
				{Name: "Alice", Phones: []string{"123"}},
			}},
			wantErr: domain.ErrInvalidPhoneFormat,
		},
		{
			name: "bad birthday",
			snap: store.BookSnapshot{Version: 1, Contacts: []store.ContactSnapshot{
				{Name: "Alice", Birthday: "30.02.1990"},
			}},
			wantErr: domain.ErrInvalidDateFormat,
		},
		{
			name: "duplicate names",
			snap: store.BookSnapshot{Version: 1, Contacts: []store.ContactSnapshot{
				{Name: "Alice"}, {Name: "Alice "},
			}},
			wantErr: store.ErrDuplicateContact,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			book, err := store.Rehydrate(tc.snap)
			require.Error(t, err)
			assert.Nil(t, book)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, store.ErrCorrupt)
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := store.NewIOError(store.EntityAddressBook, "save", "failed to write file", cause)

	assert.True(t, store.IsIOError(err))
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, store.ErrCorrupt)

	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "save", storeErr.Operation)
	assert.Equal(t, store.EntityAddressBook, storeErr.Entity)
	assert.Contains(t, err.Error(), "save operation on address_book failed: failed to write file")

	plain := store.NewStoreError("contact", "load", "no rows", nil)
	assert.Equal(t, "load operation on contact failed: no rows", plain.Error())
	assert.Nil(t, plain.Unwrap())
}
