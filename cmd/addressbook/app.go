package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/addressbook/internal/bot"
	"github.com/phrazzld/addressbook/internal/config"
	"github.com/phrazzld/addressbook/internal/domain/birthdays"
	"github.com/phrazzld/addressbook/internal/platform/filestore"
	"github.com/phrazzld/addressbook/internal/platform/logger"
	"github.com/phrazzld/addressbook/internal/platform/postgres"
	"github.com/phrazzld/addressbook/internal/redact"
	"github.com/phrazzld/addressbook/internal/store"
)

// application wires configuration, logging, storage and the bot for one session.
type application struct {
	cfg     *config.Config
	logger  *slog.Logger
	bot     *bot.Bot
	closers []io.Closer
}

// newApplication builds every component from cfg. The returned application
// must be closed by the caller.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	l, logCloser, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app := &application{
		cfg:     cfg,
		logger:  l.With(slog.String("session_id", uuid.NewString())),
		closers: []io.Closer{logCloser},
	}
	if err := app.wire(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// wire opens the store and builds the bot. Resources acquired here are
// registered in a.closers before any later step can fail.
func (a *application) wire(ctx context.Context) error {
	cfg := a.cfg
	a.logger.Info("configuration loaded",
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("birthday_window_days", cfg.Birthdays.WindowDays),
		slog.String("leap_day", cfg.Birthdays.LeapDay))
	if cfg.Storage.Driver == "postgres" {
		a.logger.Debug("database configured", slog.String("database", redact.URL(cfg.Storage.DatabaseURL)))
	}

	bookStore, storeCloser, err := openStore(ctx, cfg.Storage, a.logger)
	if err != nil {
		return err
	}
	if storeCloser != nil {
		a.closers = append(a.closers, storeCloser)
	}

	params, err := birthdays.NewParams(birthdays.ParamsConfig{
		WindowDays: cfg.Birthdays.WindowDays,
		LeapDay:    cfg.Birthdays.LeapDay,
	})
	if err != nil {
		return fmt.Errorf("invalid birthdays configuration: %w", err)
	}

	a.bot = bot.New(bookStore, birthdays.NewServiceWithParams(params), a.logger)
	return nil
}

// openStore selects the persistence backend. The closer is nil when the
// backend holds no resources.
func openStore(ctx context.Context, cfg config.StorageConfig, l *slog.Logger) (store.BookStore, io.Closer, error) {
	switch cfg.Driver {
	case "file":
		return filestore.NewFileBookStore(cfg.Path, l), nil, nil
	case "postgres":
		db, err := postgres.Open(ctx, cfg.DatabaseURL, l)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, db, l); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewPostgresBookStore(db, l), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// run executes the interactive session.
func (a *application) run(ctx context.Context, in io.Reader, out io.Writer) error {
	return a.bot.Run(logger.WithLogger(ctx, a.logger), in, out)
}

// shutdown saves the book when the session is interrupted.
func (a *application) shutdown(ctx context.Context) {
	if err := a.bot.Shutdown(ctx); err != nil {
		a.logger.Error("failed to save address book on shutdown", slog.String("error", err.Error()))
		return
	}
	a.logger.Info("address book saved on shutdown")
}

// Close releases resources in reverse order of acquisition.
func (a *application) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
