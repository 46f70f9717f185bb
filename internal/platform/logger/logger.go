package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/addressbook/internal/config"
)

// Setup initializes the application's logging system based on the provided
// configuration and sets the result as the default slog logger.
//
// Logs are written to cfg.File when set, otherwise to stderr, so they never
// interleave with the command loop on stdout. The returned closer releases
// the log file and is a no-op for stderr.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch cfg.File {
	case "", "-":
	case os.DevNull:
		l := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(l)
		return l, closer, nil
	default:
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	l := New(cfg, out)
	slog.SetDefault(l)
	return l, closer, nil
}

// New builds a logger writing to w according to cfg, without touching the
// default logger.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	l := slog.New(handler)
	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return l
}

// ParseLevel maps a configured level name to a slog.Level (case-insensitive).
// Unknown names map to info and report false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
