package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/focup/internal/config"
)

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, taskApp TaskApp, cfg *config.Config, errs <-chan error) error {
	model := InitialModel(ctx, taskApp, cfg, errs)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.close()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
