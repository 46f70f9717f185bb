// Package domain contains the contact model of the address book: validated
// Name, Phone and Birthday values, the Record that aggregates them, and the
// AddressBook that keys records by name. Everything here is pure in-memory
// logic with no knowledge of storage or the command loop.
//
// None of the types are safe for concurrent mutation. Callers sharing an
// AddressBook across goroutines must serialize access themselves.
package domain
