package birthdays

import (
	"errors"
	"time"

	"github.com/phrazzld/addressbook/internal/domain"
)

// ErrNilBook is returned when Upcoming is called without an address book.
var ErrNilBook = errors.New("address book cannot be nil")

// Congratulation is one entry of the upcoming-birthdays report.
type Congratulation struct {
	Name     string          // Contact name
	Date     time.Time       // Day to congratulate on, never a Saturday or Sunday
	Birthday domain.Birthday // The stored birthday the entry was computed from
}

// String renders the entry as "DD.MM.YYYY: Name".
func (c Congratulation) String() string {
	return c.Date.Format(domain.BirthdayLayout) + ": " + c.Name
}

// Service defines the interface for upcoming-birthday queries
type Service interface {
	// Upcoming returns the contacts whose birthdays occur within days of now,
	// inclusive, ordered by congratulation date and then by name. A negative
	// window matches nothing.
	Upcoming(book *domain.AddressBook, days int, now time.Time) ([]Congratulation, error)

	// DefaultWindow returns the configured look-ahead in days
	DefaultWindow() int
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new birthdays service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new birthdays service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// Upcoming implements Service.Upcoming
func (s *defaultService) Upcoming(book *domain.AddressBook, days int, now time.Time) ([]Congratulation, error) {
	if book == nil {
		return nil, ErrNilBook
	}
	if days < 0 {
		return []Congratulation{}, nil
	}
	return upcoming(book.Records(), now, days, s.params), nil
}

// DefaultWindow implements Service.DefaultWindow
func (s *defaultService) DefaultWindow() int {
	return s.params.WindowDays
}
