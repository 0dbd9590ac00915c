package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focup/internal/cli"
	"github.com/thenoetrevino/focup/internal/cli/handler"
	"github.com/thenoetrevino/focup/internal/cli/styles"
	"github.com/thenoetrevino/focup/internal/events"
)

// WatchCmd returns the watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the task list every time it changes",
		Long: `Subscribe to the task list and print each new snapshot until interrupted.
With --json every snapshot is written as one JSON object per line.`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runWatch), parseWatchFlags),
	}

	cmd.Flags().Bool("json", false, "Output line-delimited JSON")
	cmd.Flags().Int("count", 0, "Exit after this many snapshots (0 = until interrupted)")

	return cmd
}

func parseWatchFlags(cmd *cobra.Command) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	return nil
}

// runWatch streams snapshots to stdout itself and returns no result
func runWatch(ctx context.Context, args *handler.Arguments) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	jsonOutput := args.GetBool("json")
	count := args.GetInt("count", 0)

	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		sub, err := c.App.Subscribe(ctx)
		if err != nil {
			return nil, err
		}
		defer sub.Close()

		enc := json.NewEncoder(os.Stdout)
		for seen := 0; count == 0 || seen < count; seen++ {
			snap, err := sub.Next(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, events.ErrSubscriptionClosed) {
					return nil, nil
				}
				return nil, err
			}

			if jsonOutput {
				if err := enc.Encode(snap); err != nil {
					return nil, err
				}
				continue
			}
			printSnapshot(snap)
		}
		return nil, nil
	})
}

func printSnapshot(snap events.Snapshot) {
	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("#%d  %s", snap.SequenceID, snap.Timestamp.Format("15:04:05"))))
	if snap.Len() == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No tasks yet."))
	}
	for _, t := range snap.Tasks {
		fmt.Println(styles.RenderTaskLine(t))
	}
	fmt.Println()
}
