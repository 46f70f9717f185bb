package domain

import (
	"fmt"
	"strings"
)

// birthdayPlaceholder is rendered in place of an unset birthday.
const birthdayPlaceholder = "—"

// Record represents one contact: exactly one name, an ordered list of
// phones (duplicates allowed) and at most one birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with the given name and no phones or birthday.
// Returns an error if the name fails validation.
func NewRecord(rawName string) (*Record, error) {
	name, err := ParseName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the record's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are not rejected.
func (r *Record) AddPhone(raw string) (Phone, error) {
	p, err := ParsePhone(raw)
	if err != nil {
		return Phone{}, err
	}
	r.phones = append(r.phones, p)
	return p, nil
}

// RemovePhone removes the first phone equal to value.
// Returns true if a phone was removed.
func (r *Record) RemovePhone(value string) bool {
	i := r.indexOfPhone(value)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone equal to oldValue with newValue,
// keeping its position. Returns ErrPhoneNotFound if oldValue is absent, or a
// ValidationError if newValue is not a valid phone. The phone list is left
// untouched on any error.
func (r *Record) EditPhone(oldValue, newValue string) error {
	i := r.indexOfPhone(oldValue)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldValue)
	}
	p, err := ParsePhone(newValue)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOfPhone(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

func (r *Record) indexOfPhone(value string) int {
	for i, p := range r.phones {
		if p.value == value {
			return i
		}
	}
	return -1
}

// SetBirthday validates raw and replaces any existing birthday.
// On error the previous birthday is kept.
func (r *Record) SetBirthday(raw string) (Birthday, error) {
	b, err := ParseBirthday(raw)
	if err != nil {
		return Birthday{}, err
	}
	r.birthday = &b
	return b, nil
}

// RemoveBirthday clears the birthday. Returns true if one was set.
func (r *Record) RemoveBirthday() bool {
	had := r.birthday != nil
	r.birthday = nil
	return had
}

// String renders the record on a single line.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	bday := birthdayPlaceholder
	if r.birthday != nil {
		bday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name.value, strings.Join(phones, "; "), bday)
}
