package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task",
		Long: `Add a new, incomplete task. All arguments are joined into the title.

Examples:
  focup add Buy milk
  focup add "Walk the dog" --quiet`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runAdd)),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, args *handler.Arguments) (any, error) {
	title := strings.Join(args.Args, " ")

	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		return c.App.AddTaskWait(ctx, title)
	})
}
