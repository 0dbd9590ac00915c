package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE:    handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd)
	cmd.Flags().Bool("pretty", false, "Render the list as a markdown checklist")
	cmd.MarkFlagsMutuallyExclusive("json", "pretty")

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		snap, err := c.App.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return snap.Tasks, nil
	})
}
