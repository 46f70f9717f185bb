// Package redact removes credentials and personal data from strings before
// they are logged. Connection strings may carry passwords, and command
// errors echo the phone numbers users typed.
package redact

import (
	"net/url"
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPhonePlaceholder      = "[REDACTED_PHONE]"
	maskedPassword                = "REDACTED"
)

// Precompiled regex patterns
var (
	// Database connection strings with user info
	dbConnRegex = regexp.MustCompile(`(?i)(postgresql|postgres|pgx)://[^@/\s]+@`)

	// key=value passwords, as in keyword/value DSNs
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)\s*=\s*('[^']*'|[^\s&]+)`)

	// Ten-digit phone numbers
	phoneRegex = regexp.MustCompile(`\b\d{10}\b`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{phoneRegex, RedactedPhonePlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// URL masks the password of a connection URL, keeping the user, host and
// database visible. Unparseable input is redacted as a whole.
func URL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return String(raw)
	}
	if parsed.User == nil {
		return parsed.String()
	}
	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), maskedPassword)
	}
	return parsed.String()
}
