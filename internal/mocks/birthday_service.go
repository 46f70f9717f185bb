package mocks

import (
	"time"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/domain/birthdays"
)

// MockBirthdayService implements birthdays.Service for testing
type MockBirthdayService struct {
	UpcomingFn      func(book *domain.AddressBook, days int, now time.Time) ([]birthdays.Congratulation, error)
	DefaultWindowFn func() int

	// Window is returned by DefaultWindow when DefaultWindowFn is nil.
	Window int
}

// Ensure MockBirthdayService implements birthdays.Service interface
var _ birthdays.Service = (*MockBirthdayService)(nil)

// Upcoming implements the Service interface. The default returns no entries.
func (m *MockBirthdayService) Upcoming(
	book *domain.AddressBook,
	days int,
	now time.Time,
) ([]birthdays.Congratulation, error) {
	if m.UpcomingFn != nil {
		return m.UpcomingFn(book, days, now)
	}
	return nil, nil
}

// DefaultWindow implements the Service interface
func (m *MockBirthdayService) DefaultWindow() int {
	if m.DefaultWindowFn != nil {
		return m.DefaultWindowFn()
	}
	return m.Window
}
