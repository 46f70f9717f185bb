package store

import (
	"context"

	"github.com/phrazzld/addressbook/internal/domain"
)

// EntityAddressBook is the entity name used in StoreError values.
const EntityAddressBook = "address_book"

// BookStore defines the interface for address book persistence.
type BookStore interface {
	// Load returns the previously saved address book. A missing, truncated,
	// corrupt or incompatible source yields a fresh empty address book;
	// Load never fails.
	Load(ctx context.Context) *domain.AddressBook

	// Save persists the full address book so that a later Load returns an
	// equivalent one. Returns a StoreError matching ErrIO on failure.
	Save(ctx context.Context, book *domain.AddressBook) error
}
