package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/platform/logger"
	"github.com/phrazzld/addressbook/internal/redact"
	"github.com/phrazzld/addressbook/internal/store"
)

const (
	loadQuery = `
		SELECT c.name, to_char(c.birthday, 'DD.MM.YYYY'), p.phone
		FROM contacts c
		LEFT JOIN contact_phones p ON p.contact_id = c.id
		ORDER BY c.position, p.position
	`

	deleteContactsQuery = `DELETE FROM contacts`

	insertContactQuery = `
		INSERT INTO contacts (id, name, birthday, position)
		VALUES ($1, $2, $3, $4)
	`

	insertPhoneQuery = `
		INSERT INTO contact_phones (contact_id, position, phone)
		VALUES ($1, $2, $3)
	`
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// The connection pool is owned by the caller. If logger is nil, a default logger will be used.
func NewPostgresBookStore(db *sql.DB, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Load implements store.BookStore.Load.
// Query failures and rows that no longer validate are logged and yield an
// empty address book.
func (s *PostgresBookStore) Load(ctx context.Context) *domain.AddressBook {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.load(ctx, s.db)
	if err != nil {
		log.Warn("could not load address book, starting empty",
			slog.String("error", redact.Error(err)))
		return domain.NewAddressBook()
	}

	log.Debug("address book loaded", slog.Int("contacts", book.Len()))
	return book
}

func (s *PostgresBookStore) load(ctx context.Context, db store.DBTX) (*domain.AddressBook, error) {
	rows, err := db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	snap := store.BookSnapshot{Version: store.SnapshotVersion}
	index := make(map[string]int)

	for rows.Next() {
		var (
			name     string
			birthday sql.NullString
			phone    sql.NullString
		)
		if err := rows.Scan(&name, &birthday, &phone); err != nil {
			return nil, MapError(err)
		}

		i, seen := index[name]
		if !seen {
			i = len(snap.Contacts)
			index[name] = i
			snap.Contacts = append(snap.Contacts, store.ContactSnapshot{
				Name:     name,
				Phones:   []string{},
				Birthday: birthday.String,
			})
		}
		if phone.Valid {
			snap.Contacts[i].Phones = append(snap.Contacts[i].Phones, phone.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return store.Rehydrate(snap)
}

// Save implements store.BookStore.Save.
// The stored contacts are replaced in a single transaction, so a failed save
// leaves the previous state untouched. Returns a StoreError matching store.ErrIO.
func (s *PostgresBookStore) Save(ctx context.Context, book *domain.AddressBook) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx = logger.WithLogger(ctx, log)

	if book == nil {
		book = domain.NewAddressBook()
	}
	records := book.Records()

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return replaceContacts(ctx, tx, records)
	})
	if err != nil {
		attrs := []any{
			slog.String("error", redact.Error(err)),
			slog.Int("contacts", len(records)),
		}
		if kind := ConstraintKind(err); kind != "" {
			attrs = append(attrs, slog.String("constraint", kind))
		}
		log.Error("failed to save address book", attrs...)
		return store.NewIOError(store.EntityAddressBook, "save", "failed to replace contacts", MapError(err))
	}

	log.Info("address book saved", slog.Int("contacts", len(records)))
	return nil
}

func replaceContacts(ctx context.Context, db store.DBTX, records []*domain.Record) error {
	if _, err := db.ExecContext(ctx, deleteContactsQuery); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for pos, r := range records {
		id := uuid.New()
		if _, err := db.ExecContext(ctx, insertContactQuery, id, r.Name().String(), birthdayValue(r), pos); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", r.Name().String(), err)
		}

		for i, p := range r.Phones() {
			if _, err := db.ExecContext(ctx, insertPhoneQuery, id, i, p.String()); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", r.Name().String(), err)
			}
		}
	}
	return nil
}

// birthdayValue returns the DATE literal for r's birthday, or nil.
func birthdayValue(r *domain.Record) any {
	if b, ok := r.Birthday(); ok {
		return b.Date().Format(time.DateOnly)
	}
	return nil
}
