// Package filestore persists the address book as a single JSON document on
// the local filesystem. Writes go to a temporary file in the same directory
// and are renamed into place, so a crash mid-save leaves the previous
// document intact.
package filestore
