package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/focup/internal/app"
	"github.com/thenoetrevino/focup/internal/config"
	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
)

// TaskApp is the part of the application the TUI drives
type TaskApp interface {
	Subscribe(ctx context.Context) (*events.Subscription, error)
	AddTask(title string) error
	SetCompleted(task models.Task, completed bool) error
	DeleteTask(task models.Task) error
}

var _ TaskApp = (*app.App)(nil)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    TaskApp
	keys   config.KeyMappings
	theme  config.Theme
	styles Styles
	errs   <-chan error

	sub      *events.Subscription
	tasks    []models.Task
	sequence int64
	loaded   bool

	cursor int
	mode   Mode
	form   *huh.Form
	draft  *string
	err    error

	width  int
	height int
}

// InitialModel creates the TUI model. errs delivers failures of background
// mutations and may be nil.
func InitialModel(ctx context.Context, taskApp TaskApp, cfg *config.Config, errs <-chan error) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		ctx:    ctx,
		app:    taskApp,
		keys:   cfg.KeyMappings,
		theme:  cfg.Theme,
		styles: NewStyles(cfg.Theme),
		errs:   errs,
		mode:   ListMode,
	}
}

// Init subscribes to the task list and starts listening for background errors
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		subscribe(m.ctx, m.app),
		waitForError(m.ctx, m.errs),
	)
}

// Tasks returns the task list currently displayed
func (m Model) Tasks() []models.Task {
	return m.tasks
}

// Cursor returns the index of the selected task
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Err returns the last error shown to the user
func (m Model) Err() error {
	return m.err
}

// selectedTask returns the task under the cursor
func (m Model) selectedTask() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// applySnapshot replaces the list and keeps the cursor in bounds
func (m *Model) applySnapshot(snap events.Snapshot) {
	m.tasks = snap.Tasks
	m.sequence = snap.SequenceID
	m.loaded = true
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// close releases the subscription
func (m *Model) close() {
	if m.sub != nil {
		m.sub.Close()
	}
}
