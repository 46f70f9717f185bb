package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/phrazzld/addressbook/internal/redact"
)

// DriverName is the database/sql driver used for PostgreSQL connections.
const DriverName = "pgx"

// pingTimeout bounds the initial connectivity check in Open.
const pingTimeout = 5 * time.Second

// Open establishes a connection pool to databaseURL and verifies it with a ping.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open(DriverName, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// A single interactive session never needs a large pool.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", redact.URL(databaseURL), err)
	}

	logger.Info("database connection established", slog.String("database", redact.URL(databaseURL)))
	return db, nil
}
