// Package setup holds commands that prepare the local focup installation
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
	"github.com/thenoetrevino/focup/internal/config"
)

// InitResult reports where the config file was written
type InitResult struct {
	Path        string `json:"path"`
	Database    string `json:"database_path"`
	Overwritten bool   `json:"overwritten"`
}

func (r InitResult) String() string {
	verb := "Created"
	if r.Overwritten {
		verb = "Overwrote"
	}
	return fmt.Sprintf("%s %s (database: %s)", verb, r.Path, r.Database)
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file with every setting at its default value.

Examples:
  # Create ~/.config/focup/config.yaml
  focup init

  # Point the config at another database and replace an existing file
  focup init --database ~/notes/tasks.db --force`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runInit)),
	}

	cmd.Flags().String("database", "", "Database path to record in the config")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runInit(_ context.Context, args *handler.Arguments) (any, error) {
	path, err := config.Path()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to inspect %s: %w", path, statErr)
	}
	if exists && !args.GetBool("force") {
		return nil, cli.UsageError(fmt.Errorf("config file already exists at %s (use --force to overwrite)", path))
	}

	cfg := config.Default()
	if db := args.GetString("database", ""); db != "" {
		cfg.DatabasePath = db
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	slog.Info("config written", "path", path, "overwritten", exists)

	return InitResult{Path: path, Database: cfg.DatabasePath, Overwritten: exists}, nil
}
