package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/setup"
	"github.com/thenoetrevino/focup/internal/cli/task"
	"github.com/thenoetrevino/focup/internal/config"
	"github.com/thenoetrevino/focup/internal/launcher"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focup",
		Short: "focup - a reactive terminal task list",
		Long: `focup keeps a single task list in a local SQLite database.
Run without a subcommand to open the interactive list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("db"); path != "" {
				return os.Setenv(config.DatabasePathEnv, path)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	cmd.PersistentFlags().String("db", "", "Path to the task database (overrides config)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	for _, sub := range append(task.Commands(), setup.InitCmd()) {
		if validate := sub.Args; validate != nil {
			sub.Args = func(c *cobra.Command, args []string) error {
				return cli.UsageError(validate(c, args))
			}
		}
		cmd.AddCommand(sub)
	}

	return cmd
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}
