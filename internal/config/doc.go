// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Every key can be
// overridden with an ADDRESSBOOK_-prefixed variable, for example
// ADDRESSBOOK_STORAGE_DRIVER or ADDRESSBOOK_BIRTHDAYS_WINDOW_DAYS.
package config
