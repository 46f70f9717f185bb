// Package main implements the entry point for the address book assistant,
// an interactive command loop for managing contacts, phones and birthdays.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"

	"github.com/phrazzld/addressbook/internal/config"
)

// shutdownTimeout bounds the save performed when the process is interrupted.
const shutdownTimeout = 5 * time.Second

// Options for the CLI. Pass `--config` or set the `SERVICE_CONFIG` env var.
type Options struct {
	Config string `doc:"path to a config file (yaml, json or toml)" short:"c"`
	Env    string `doc:"path to a dotenv file"                        default:".env"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		ctx, cancel := context.WithCancel(context.Background())

		var current atomic.Pointer[application]

		hooks.OnStart(func() {
			defer cancel()
			if code := runSession(ctx, options, &current); code != 0 {
				os.Exit(code)
			}
		})

		hooks.OnStop(func() {
			cancel()
			app := current.Load()
			if app == nil {
				return
			}
			stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stopCancel()
			app.shutdown(stopCtx)
		})
	})

	cli.Root().Use = "addressbook"
	cli.Root().Short = "Interactive address book assistant"
	cli.Run()
}

// runSession builds the application, publishes it for the stop hook and runs
// the command loop. It returns the process exit code.
func runSession(ctx context.Context, options *Options, current *atomic.Pointer[application]) int {
	app, err := initializeApp(ctx, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		return 1
	}
	defer func() {
		current.Store(nil)
		_ = app.Close()
	}()
	current.Store(app)

	if err := app.run(ctx, os.Stdin, os.Stdout); err != nil {
		app.logger.Error("session failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

// initializeApp loads the environment and configuration and builds the application.
func initializeApp(ctx context.Context, options *Options) (*application, error) {
	if err := loadDotEnv(options.Env); err != nil {
		return nil, err
	}

	cfg, err := config.Load(options.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return newApplication(ctx, cfg)
}

// loadDotEnv applies variables from path without overriding ones already
// set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
