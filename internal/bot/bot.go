package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/addressbook/internal/domain"
	"github.com/phrazzld/addressbook/internal/domain/birthdays"
	"github.com/phrazzld/addressbook/internal/platform/logger"
	"github.com/phrazzld/addressbook/internal/redact"
	"github.com/phrazzld/addressbook/internal/store"
)

// Bot holds one interactive session over an address book. Commands are
// serialized, so Shutdown may be called from another goroutine.
type Bot struct {
	mu        sync.Mutex
	book      *domain.AddressBook
	store     store.BookStore
	birthdays birthdays.Service
	metrics   *Metrics
	now       func() time.Time
	logger    *slog.Logger
}

// Option customizes a Bot.
type Option func(*Bot)

// WithClock replaces time.Now as the source of "today" for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) { b.now = now }
}

// WithMetrics makes the bot count commands into m.
func WithMetrics(m *Metrics) Option {
	return func(b *Bot) { b.metrics = m }
}

// WithBook starts the session from book instead of loading it from the store.
func WithBook(book *domain.AddressBook) Option {
	return func(b *Bot) { b.book = book }
}

// New creates a bot persisting through st. If svc is nil the default
// birthdays service is used; if logger is nil, a default logger will be used.
func New(st store.BookStore, svc birthdays.Service, logger *slog.Logger, opts ...Option) *Bot {
	if st == nil {
		panic("store cannot be nil")
	}
	if svc == nil {
		svc = birthdays.NewDefaultService()
	}
	if logger == nil {
		logger = slog.Default()
	}

	b := &Bot{
		store:     st,
		birthdays: svc,
		now:       time.Now,
		logger:    logger.With(slog.String("component", "bot")),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = NewMetrics()
	}
	return b
}

// Book returns the address book the session operates on, or nil before Run.
func (b *Bot) Book() *domain.AddressBook {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.book
}

// Metrics returns the session's command counters.
func (b *Bot) Metrics() *Metrics { return b.metrics }

// Handle executes one input line and returns the reply. stop is true when
// the line ended the session.
func (b *Bot) Handle(ctx context.Context, line string) (reply string, stop bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.book == nil {
		b.book = domain.NewAddressBook()
	}
	log := logger.FromContextOrDefault(ctx, b.logger)

	command, args := ParseInput(line)
	b.metrics.observeCommand(command)

	if command == cmdClose || command == cmdExit {
		return b.farewell(ctx), true
	}

	handler, ok := handlers[command]
	if !ok {
		log.Debug("invalid command", slog.String("command", command))
		return msgInvalidCommand, false
	}

	reply, err := handler(b, ctx, args)
	if err != nil {
		b.metrics.observeError(command)
		if isUserError(err) {
			log.Debug("command rejected",
				slog.String("command", command),
				slog.String("error", redact.Error(err)))
		} else {
			log.Error("command failed",
				slog.String("command", command),
				slog.String("error", redact.Error(err)))
		}
		return ErrorMessage(err), false
	}

	log.Debug("command handled", slog.String("command", command))
	return reply, false
}

// Shutdown saves the book outside the command loop, for example when the
// process is interrupted while waiting for input.
func (b *Bot) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.book == nil {
		return nil
	}
	return b.store.Save(ctx, b.book)
}

// farewell saves the book and returns the closing reply. Callers hold b.mu.
func (b *Bot) farewell(ctx context.Context) string {
	if err := b.store.Save(ctx, b.book); err != nil {
		b.metrics.observeError(cmdExit)
		logger.FromContextOrDefault(ctx, b.logger).Error("failed to save address book on exit",
			slog.String("error", err.Error()))
		return ErrorMessage(err) + "\n" + msgGoodBye
	}
	return msgGoodBye
}

// Run drives the session: it loads the book (unless one was supplied), greets
// the user, and answers each line read from in until close/exit. End of input
// and context cancellation behave like exit. Only output failures are
// returned; an unreadable input is logged and ends the session.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := logger.FromContextOrDefault(ctx, b.logger)
	ctx = logger.WithLogger(ctx, log)

	b.mu.Lock()
	if b.book == nil {
		b.book = b.store.Load(ctx)
	}
	contacts := b.book.Len()
	b.mu.Unlock()
	log.Info("session started", slog.Int("contacts", contacts))

	if _, err := fmt.Fprintln(out, msgWelcome); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, msgPrompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if ctx.Err() != nil || !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				log.Error("failed to read input", slog.String("error", err.Error()))
			}
			// Close the prompt line before the farewell. The final save must
			// outlive a cancelled session context.
			_, err := fmt.Fprintln(out)
			if err == nil {
				b.mu.Lock()
				reply := b.farewell(context.WithoutCancel(ctx))
				b.mu.Unlock()
				_, err = fmt.Fprintln(out, reply)
			}
			log.Info("session ended", slog.String("reason", "end of input"))
			return err
		}

		reply, stop := b.Handle(ctx, scanner.Text())
		if _, err := fmt.Fprintln(out, reply); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
		if stop {
			log.Info("session ended", slog.String("reason", "exit command"))
			return nil
		}
	}
}
