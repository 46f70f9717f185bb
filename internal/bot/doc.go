// Package bot implements the interactive assistant: a line-oriented command
// loop over an address book. Handlers return replies and errors as values;
// errors are turned into user-facing text in one place (ErrorMessage), so a
// failing command never ends the session.
package bot
