package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/focup/internal/events"
)

// SnapshotMsg carries a new task list from the change feed
type SnapshotMsg struct {
	Snapshot events.Snapshot
}

// ErrorMsg carries an error from a background mutation or the subscription
type ErrorMsg struct {
	Err error
}

// subscribedMsg hands the live subscription to the model
type subscribedMsg struct {
	sub *events.Subscription
}

// feedClosedMsg reports that the subscription stopped delivering
type feedClosedMsg struct{}

// backgroundErrorMsg is an ErrorMsg read from the error channel; receiving
// one re-arms the wait
type backgroundErrorMsg struct {
	ErrorMsg
}

// subscribe opens the live query
func subscribe(ctx context.Context, app TaskApp) tea.Cmd {
	return func() tea.Msg {
		sub, err := app.Subscribe(ctx)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return subscribedMsg{sub: sub}
	}
}

// waitForSnapshot blocks on the subscription mailbox. It is re-armed after
// every SnapshotMsg.
func waitForSnapshot(sub *events.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-sub.C()
		if !ok {
			return feedClosedMsg{}
		}
		return SnapshotMsg{Snapshot: snap}
	}
}

// waitForError blocks on the background error channel
func waitForError(ctx context.Context, errs <-chan error) tea.Cmd {
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return backgroundErrorMsg{ErrorMsg{Err: err}}
		case <-ctx.Done():
			return nil
		}
	}
}
