package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	return completionCmd("done <id>", "Mark a task as completed", true)
}

// UndoCmd returns the undo subcommand
func UndoCmd() *cobra.Command {
	return completionCmd("undo <id>", "Mark a task as not completed", false)
}

func completionCmd(use, short string, completed bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			return runSetCompleted(ctx, args, completed)
		})),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runSetCompleted(ctx context.Context, args *handler.Arguments, completed bool) (any, error) {
	id, err := cli.ParseTaskID(args.Args[0])
	if err != nil {
		return nil, err
	}

	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		t, err := cli.FindTask(ctx, c, id)
		if err != nil {
			return nil, err
		}

		if err := c.App.SetCompleted(t, completed); err != nil {
			return nil, err
		}
		if err := c.Flush(ctx); err != nil {
			return nil, err
		}

		return t.WithCompleted(completed), nil
	})
}
