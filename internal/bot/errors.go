package bot

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/store"
)

// Fixed user-facing replies for error kinds.
const (
	msgContactNotFound = "Contact not found."
	msgPhoneNotFound   = "Old phone not found."
	msgSaveFailed      = "Could not save the address book."
	msgInternal        = "Something went wrong."
)

var usages = map[string]string{
	cmdAdd:          "Give me name and phone please.",
	cmdChange:       "Give me name, old phone and new phone please.",
	cmdPhone:        "Enter user name.",
	cmdRemovePhone:  "Give me name and phone please.",
	cmdAddBirthday:  "Give me name and birthday in DD.MM.YYYY format.",
	cmdShowBirthday: "Enter user name.",
	cmdBirthdays:    "Give me the number of days, for example: birthdays 7.",
	cmdDelete:       "Enter user name.",
}

// UsageError reports a command invoked with missing or malformed arguments.
type UsageError struct {
	Command string
	Usage   string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return "usage of " + e.Command + ": " + e.Usage
}

func usageError(command string) error {
	return &UsageError{Command: command, Usage: usages[command]}
}

// ErrorMessage translates a handler error into the reply shown to the user.
func ErrorMessage(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr.Usage
	}

	switch {
	case errors.Is(err, domain.ErrContactNotFound):
		return msgContactNotFound
	case errors.Is(err, domain.ErrPhoneNotFound):
		return msgPhoneNotFound
	case store.IsIOError(err):
		return msgSaveFailed
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return sentence(validationErr.Error())
	}
	if domain.IsValidationError(err) {
		return sentence(err.Error())
	}

	return msgInternal
}

// isUserError reports whether err was caused by the input rather than the system.
func isUserError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr) || domain.IsValidationError(err) || domain.IsNotFoundError(err)
}

// sentence upper-cases the first letter of s and terminates it with a period.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
