package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
)

// RmCmd returns the rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE:    handler.SimpleCommand(handler.HandlerFunc(runRm)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runRm(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.ParseTaskID(args.Args[0])
	if err != nil {
		return nil, err
	}

	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		t, err := cli.FindTask(ctx, c, id)
		if err != nil {
			return nil, err
		}

		if err := c.App.DeleteTask(t); err != nil {
			return nil, err
		}
		if err := c.Flush(ctx); err != nil {
			return nil, err
		}

		return t, nil
	})
}
