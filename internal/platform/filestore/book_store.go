package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/platform/logger"
	"github.com/phrazzld/addressbook/internal/store"
)

// filePerm is the mode used for the saved document.
const filePerm = 0o600

// FileBookStore implements store.BookStore on top of a JSON file.
type FileBookStore struct {
	path   string
	logger *slog.Logger
}

// NewFileBookStore creates a store backed by the file at path.
// If logger is nil, a default logger will be used.
func NewFileBookStore(path string, logger *slog.Logger) *FileBookStore {
	if path == "" {
		panic("path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FileBookStore{
		path:   path,
		logger: logger.With(slog.String("component", "file_book_store")),
	}
}

// Ensure FileBookStore implements store.BookStore interface
var _ store.BookStore = (*FileBookStore)(nil)

// Path returns the location of the backing file.
func (s *FileBookStore) Path() string { return s.path }

// Load implements store.BookStore.Load.
// A missing file is the normal first-run case; any other failure is logged
// and an empty address book is returned.
func (s *FileBookStore) Load(ctx context.Context) *domain.AddressBook {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.read()
	switch {
	case err == nil:
		log.Debug("address book loaded",
			slog.String("path", s.path),
			slog.Int("contacts", book.Len()))
		return book
	case errors.Is(err, fs.ErrNotExist):
		log.Info("no saved address book, starting empty", slog.String("path", s.path))
	default:
		log.Warn("could not load address book, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
	}
	return domain.NewAddressBook()
}

func (s *FileBookStore) read() (*domain.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var snap store.BookSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrCorrupt, err)
	}

	return store.Rehydrate(snap)
}

// Save implements store.BookStore.Save.
// Returns a StoreError matching store.ErrIO if the document cannot be written.
func (s *FileBookStore) Save(ctx context.Context, book *domain.AddressBook) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if book == nil {
		book = domain.NewAddressBook()
	}

	data, err := json.MarshalIndent(store.Snapshot(book), "", "  ")
	if err != nil {
		return store.NewIOError(store.EntityAddressBook, "save", "failed to encode address book", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		log.Error("failed to save address book",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return store.NewIOError(store.EntityAddressBook, "save", "failed to write "+s.path, err)
	}

	log.Info("address book saved",
		slog.String("path", s.path),
		slog.Int("contacts", book.Len()))
	return nil
}

// writeFileAtomic replaces path with data via a synced temp file and rename.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
