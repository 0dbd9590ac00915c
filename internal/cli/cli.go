package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/focup/internal/app"
	"github.com/thenoetrevino/focup/internal/cli/styles"
	"github.com/thenoetrevino/focup/internal/config"
	"github.com/thenoetrevino/focup/internal/database"
	"github.com/thenoetrevino/focup/internal/logging"
)

// errorBuffer bounds how many background errors are kept before new ones
// are only logged
const errorBuffer = 32

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	db       *sql.DB
	closeLog func() error
	errs     chan error
	owned    bool
}

// NewCLI loads configuration, initializes logging, opens the database and
// builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WithExitCode(ExitDataErr, fmt.Errorf("failed to load configuration: %w", err))
	}

	logger, closeLog, err := logging.Init(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		if closeErr := closeLog(); closeErr != nil {
			slog.Error("failed to close log file", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.Theme)

	c := &CLI{
		Config:   cfg,
		db:       db,
		closeLog: closeLog,
		errs:     make(chan error, errorBuffer),
		owned:    true,
	}
	c.App = app.New(db,
		app.WithLogger(logger),
		app.WithGracePeriod(cfg.Feed.Grace()),
		app.WithPollInterval(cfg.Feed.Poll()),
		app.WithErrorHandler(c.collect),
	)

	return c, nil
}

// newCLIForApp wraps an existing application container. Close flushes the
// queue but leaves the container running.
func newCLIForApp(a *app.App) *CLI {
	return &CLI{
		App:    a,
		Config: config.Default(),
		errs:   make(chan error, errorBuffer),
	}
}

// Errors delivers failures of background mutations
func (c *CLI) Errors() <-chan error {
	return c.errs
}

// Flush waits for queued mutations and returns the first error they produced
func (c *CLI) Flush(ctx context.Context) error {
	if err := c.App.Flush(ctx); err != nil {
		return err
	}
	select {
	case err := <-c.errs:
		return err
	default:
		return nil
	}
}

// collect forwards a background error without ever blocking the queue
func (c *CLI) collect(err error) {
	select {
	case c.errs <- err:
	default:
		slog.Error("dropping background error, buffer full", "error", err)
	}
}

// Close drains queued mutations and releases resources
func (c *CLI) Close() error {
	if !c.owned {
		return c.App.Flush(context.Background())
	}

	if err := c.App.Close(); err != nil {
		slog.Error("error closing app", "error", err)
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	if c.closeLog != nil {
		return c.closeLog()
	}
	return nil
}
