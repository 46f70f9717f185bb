// Package postgres provides a PostgreSQL implementation of the
// store.BookStore interface. It owns the database schema, applied through
// embedded goose migrations, and maps driver errors onto the store
// package's error values.
package postgres
