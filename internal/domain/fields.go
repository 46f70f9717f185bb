package domain

import (
	"strings"
	"time"
)

// BirthdayLayout is the textual layout birthdays are parsed from and rendered to.
// Day and month may be given without padding; rendering always pads them.
const (
	BirthdayLayout      = "02.01.2006"
	birthdayParseLayout = "2.1.2006"
	phoneDigits         = 10
)

// Name is a contact's non-empty, trimmed name.
type Name struct {
	value string
}

// ParseName trims raw and returns it as a Name.
// Returns a ValidationError wrapping ErrEmptyName if nothing is left.
func ParseName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Name{}, NewValidationError("name", "", "cannot be empty", ErrEmptyName)
	}
	return Name{value: v}, nil
}

// String returns the normalized name.
func (n Name) String() string { return n.value }

// IsZero reports whether n was never set.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a phone number of exactly ten decimal digits.
type Phone struct {
	value string
}

// ParsePhone trims raw and checks it is exactly ten ASCII digits,
// with no sign or separators.
func ParsePhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if !isPhoneDigits(v) {
		return Phone{}, NewValidationError("phone", v, "must contain exactly 10 digits", ErrInvalidPhoneFormat)
	}
	return Phone{value: v}, nil
}

func isPhoneDigits(s string) bool {
	if len(s) != phoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the ten digits.
func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY.
type Birthday struct {
	date time.Time
}

// ParseBirthday trims raw and parses it as day.month.year. Day and month
// may be one or two digits, the year must be four. Dates that do not exist
// on the calendar (31.04, 29.02 in a common year) are rejected.
func ParseBirthday(raw string) (Birthday, error) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse(birthdayParseLayout, v)
	if err != nil || t.Year() < 1 {
		return Birthday{}, NewValidationError("birthday", v, "must be a date in DD.MM.YYYY format", ErrInvalidDateFormat)
	}
	return Birthday{date: t}, nil
}

// String renders the birthday as zero padded DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Date returns the birthday as a UTC midnight time.
func (b Birthday) Date() time.Time { return b.date }

// Month returns the birthday's month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the birthday's day of month.
func (b Birthday) Day() int { return b.date.Day() }

// Equal reports whether b and o are the same calendar date.
func (b Birthday) Equal(o Birthday) bool { return b.date.Equal(o.date) }
