package store

import (
	"fmt"

	"github.com/phrazzld/addressbook/internal/domain"
)

// SnapshotVersion is the only format version Rehydrate accepts.
const SnapshotVersion = 1

// BookSnapshot is the plain, serializable form of an address book.
type BookSnapshot struct {
	Version  int               `json:"version"`
	Contacts []ContactSnapshot `json:"contacts"`
}

// ContactSnapshot is the plain, serializable form of a record.
type ContactSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Snapshot converts book to its serializable form. Contacts are ordered by
// name so the output is stable.
func Snapshot(book *domain.AddressBook) BookSnapshot {
	records := book.Records()
	snap := BookSnapshot{
		Version:  SnapshotVersion,
		Contacts: make([]ContactSnapshot, 0, len(records)),
	}
	for _, r := range records {
		snap.Contacts = append(snap.Contacts, SnapshotRecord(r))
	}
	return snap
}

// SnapshotRecord converts a single record to its serializable form.
func SnapshotRecord(r *domain.Record) ContactSnapshot {
	phones := r.Phones()
	c := ContactSnapshot{
		Name:   r.Name().String(),
		Phones: make([]string, len(phones)),
	}
	for i, p := range phones {
		c.Phones[i] = p.String()
	}
	if b, ok := r.Birthday(); ok {
		c.Birthday = b.String()
	}
	return c
}

// Rehydrate rebuilds an address book from a snapshot. Every value is
// validated again, so a tampered snapshot is rejected rather than loaded
// with broken invariants. Errors match ErrCorrupt.
func Rehydrate(snap BookSnapshot) (*domain.AddressBook, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, snap.Version, SnapshotVersion)
	}

	book := domain.NewAddressBook()
	for i, c := range snap.Contacts {
		r, err := RehydrateRecord(c)
		if err != nil {
			return nil, fmt.Errorf("%w: contact %d: %w", ErrCorrupt, i, err)
		}
		if _, exists := book.Find(r.Name().String()); exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateContact, r.Name().String())
		}
		book.AddRecord(r)
	}
	return book, nil
}

// RehydrateRecord rebuilds a single record, validating every field.
func RehydrateRecord(c ContactSnapshot) (*domain.Record, error) {
	r, err := domain.NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if _, err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if _, err := r.SetBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}
