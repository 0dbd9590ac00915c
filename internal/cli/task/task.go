// Package task holds the task list subcommands
package task

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
)

// Commands returns every task subcommand for registration on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		DoneCmd(),
		UndoCmd(),
		RmCmd(),
		WatchCmd(),
	}
}

// withCLI resolves the CLI for ctx, runs fn and closes the CLI afterwards
func withCLI(ctx context.Context, fn func(*cli.CLI) (any, error)) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	return fn(cliInstance)
}
