package domain

import (
	"slices"
	"strings"
)

// EmptyAddressBookText is what an AddressBook with no records renders as.
const EmptyAddressBookText = "AddressBook is empty."

// AddressBook is the collection of all records, keyed by the exact
// normalized name. Adding a record whose name is already present replaces
// the existing entry.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r, overwriting any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	if b.records == nil {
		b.records = make(map[string]*Record)
	}
	b.records[r.name.value] = r
}

// Find returns the record stored under name. The lookup is case-sensitive.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Returns true if a record existed and was removed.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	return true
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records ordered by name, compared case-insensitively.
// Names that differ only in case are ordered by their exact value.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(x, y *Record) int {
		return CompareNames(x.name.value, y.name.value)
	})
	return out
}

// String renders one line per record in name order, or EmptyAddressBookText.
func (b *AddressBook) String() string {
	if len(b.records) == 0 {
		return EmptyAddressBookText
	}
	records := b.Records()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// CompareNames orders names case-insensitively, falling back to the exact
// value so the order is total.
func CompareNames(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
