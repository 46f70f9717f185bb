// Package store defines the persistence contract for the address book.
// The interface abstracts the underlying storage mechanism from the command
// loop, so the domain model never learns whether it lives in a JSON file or
// a database.
package store
