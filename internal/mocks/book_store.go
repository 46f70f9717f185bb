package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/store"
)

// MockBookStore implements store.BookStore for testing
type MockBookStore struct {
	// Function fields for customizable behavior
	LoadFn func(ctx context.Context) *domain.AddressBook
	SaveFn func(ctx context.Context, book *domain.AddressBook) error

	// Data for default implementation
	Snapshot  store.BookSnapshot
	SaveError error

	mu        sync.Mutex
	loadCalls int
	saveCalls int
}

// NewMockBookStore creates a new mock store holding an empty address book
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Snapshot: store.BookSnapshot{Version: store.SnapshotVersion, Contacts: []store.ContactSnapshot{}},
	}
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// Load implements the BookStore interface.
// The default rebuilds a fresh address book from Snapshot on every call.
func (m *MockBookStore) Load(ctx context.Context) *domain.AddressBook {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}

	book, err := store.Rehydrate(m.Snapshot)
	if err != nil {
		return domain.NewAddressBook()
	}
	return book
}

// Save implements the BookStore interface.
// The default records a snapshot of book unless SaveError is set.
func (m *MockBookStore) Save(ctx context.Context, book *domain.AddressBook) error {
	m.mu.Lock()
	m.saveCalls++
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, book)
	}

	if m.SaveError != nil {
		return m.SaveError
	}

	m.Snapshot = store.Snapshot(book)
	return nil
}

// LoadCalls returns how many times Load was called.
func (m *MockBookStore) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// SaveCalls returns how many times Save was called.
func (m *MockBookStore) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}
