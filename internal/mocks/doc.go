// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with a function field per interface method. A nil
// field falls back to a simple in-memory default, so tests only override
// the behavior they care about:
//
//	bookStore := mocks.NewMockBookStore()
//	bookStore.SaveFn = func(ctx context.Context, book *domain.AddressBook) error {
//	    return store.NewIOError(store.EntityAddressBook, "save", "disk full", nil)
//	}
package mocks
