package launcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/tui"
)

// Launch starts the TUI application and blocks until it exits.
// Queued writes are drained before returning.
func Launch(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	slog.Info("starting TUI", "database", cliInstance.Config.DatabasePath)

	if err := tui.Run(ctx, cliInstance.App, cliInstance.Config, cliInstance.Errors()); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if ctx.Err() != nil {
		slog.Info("shutdown signal received, draining queued writes")
	}
	return nil
}
