package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focup/internal/config"
	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type call struct {
	op    string
	title string
	task  models.Task
	value bool
}

// fakeApp records mutations and serves snapshots from an in-memory feed
type fakeApp struct {
	mu    sync.Mutex
	calls []call
	tasks []models.Task
	err   error
	feed  *events.Feed
}

func newFakeApp(tasks ...models.Task) *fakeApp {
	f := &fakeApp{tasks: tasks}
	f.feed = events.NewFeed(func(context.Context) ([]models.Task, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		return append([]models.Task(nil), f.tasks...), nil
	})
	return f
}

func (f *fakeApp) Subscribe(ctx context.Context) (*events.Subscription, error) {
	return f.feed.Subscribe(ctx)
}

func (f *fakeApp) record(c call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeApp) AddTask(title string) error {
	return f.record(call{op: "add", title: title})
}

func (f *fakeApp) SetCompleted(task models.Task, completed bool) error {
	return f.record(call{op: "complete", task: task, value: completed})
}

func (f *fakeApp) DeleteTask(task models.Task) error {
	return f.record(call{op: "delete", task: task})
}

func (f *fakeApp) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: ' ', Text: " "})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyPress(k))
		m = updated.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		m = updated.(Model)
	}
	return m
}

func withSnapshot(t *testing.T, m Model, tasks ...models.Task) Model {
	t.Helper()
	updated, _ := m.Update(SnapshotMsg{Snapshot: events.Snapshot{Tasks: tasks, SequenceID: m.sequence + 1}})
	return updated.(Model)
}

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 3, Title: "Write report"},
		{ID: 2, Title: "Walk the dog", IsCompleted: true},
		{ID: 1, Title: "Buy milk"},
	}
}

func newTestModel(t *testing.T, app *fakeApp) Model {
	t.Helper()
	return InitialModel(context.Background(), app, config.Default(), nil)
}

// ============================================================================
// Subscription flow
// ============================================================================

func TestModel_InitDeliversFirstSnapshot(t *testing.T) {
	app := newFakeApp(sampleTasks()...)
	defer app.feed.Close()
	m := newTestModel(t, app)

	msg := subscribe(m.ctx, app)()
	subscribed, ok := msg.(subscribedMsg)
	require.True(t, ok, "expected subscribedMsg, got %T", msg)

	updated, cmd := m.Update(subscribed)
	m = updated.(Model)
	require.NotNil(t, cmd)

	snapMsg, ok := cmd().(SnapshotMsg)
	require.True(t, ok)
	updated, next := m.Update(snapMsg)
	m = updated.(Model)

	assert.Equal(t, sampleTasks(), m.Tasks())
	assert.NotNil(t, next, "the snapshot wait is re-armed")
}

func TestModel_SubscribeFailureShowsError(t *testing.T) {
	app := newFakeApp()
	app.feed.Close()
	m := newTestModel(t, app)

	msg := subscribe(m.ctx, app)()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	assert.ErrorIs(t, m.Err(), events.ErrFeedClosed)
}

func TestModel_BackgroundErrorsRearm(t *testing.T) {
	errs := make(chan error, 1)
	m := InitialModel(context.Background(), newFakeApp(), nil, errs)

	errs <- errors.New("disk full")
	msg := waitForError(m.ctx, m.errs)()
	updated, cmd := m.Update(msg)
	m = updated.(Model)

	require.Error(t, m.Err())
	assert.Contains(t, m.Err().Error(), "disk full")
	assert.NotNil(t, cmd)
}

// ============================================================================
// List mode
// ============================================================================

func TestModel_Navigation(t *testing.T) {
	m := withSnapshot(t, newTestModel(t, newFakeApp()), sampleTasks()...)

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last task")

	m = press(t, m, "k", "up", "up")
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the first task")

	m = press(t, m, "down")
	assert.Equal(t, 1, m.Cursor())
}

func TestModel_CursorClampedWhenListShrinks(t *testing.T) {
	m := withSnapshot(t, newTestModel(t, newFakeApp()), sampleTasks()...)
	m = press(t, m, "j", "j")
	require.Equal(t, 2, m.Cursor())

	m = withSnapshot(t, m, sampleTasks()[0])
	assert.Equal(t, 0, m.Cursor())

	m = withSnapshot(t, m)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_ToggleAndDelete(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app), sampleTasks()...)

	m = press(t, m, "space")
	m = press(t, m, "j", "x")
	m = press(t, m, "d")

	calls := app.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, call{op: "complete", task: sampleTasks()[0], value: true}, calls[0])
	assert.Equal(t, call{op: "complete", task: sampleTasks()[1], value: false}, calls[1])
	assert.Equal(t, call{op: "delete", task: sampleTasks()[1]}, calls[2])
}

func TestModel_EmptyListIgnoresMutations(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app))

	press(t, m, "space", "x", "d")
	assert.Empty(t, app.recorded())
}

func TestModel_MutationErrorShown(t *testing.T) {
	app := newFakeApp()
	app.err = errors.New("work queue is closed")
	m := withSnapshot(t, newTestModel(t, app), sampleTasks()...)

	m = press(t, m, "d")
	require.Error(t, m.Err())

	m = press(t, m, "esc")
	assert.NoError(t, m.Err())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, newFakeApp())
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ============================================================================
// Input mode
// ============================================================================

func TestModel_AddTaskFlow(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app))

	m = press(t, m, "a")
	require.Equal(t, InputMode, m.Mode())

	m = typeText(t, m, "Buy milk")
	m = press(t, m, "enter")

	assert.Equal(t, ListMode, m.Mode())
	assert.Equal(t, []call{{op: "add", title: "Buy milk"}}, app.recorded())
}

func TestModel_BlankInputIgnored(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app))

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	assert.Equal(t, InputMode, m.Mode(), "prompt stays open on blank input")
	assert.Empty(t, app.recorded())

	m = press(t, m, "esc")
	assert.Equal(t, ListMode, m.Mode())
	assert.Empty(t, app.recorded())
}

func TestModel_InputModeSwallowsListKeys(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app), sampleTasks()...)

	m = press(t, m, "a")
	m = typeText(t, m, "dq")

	assert.Equal(t, InputMode, m.Mode())
	assert.Empty(t, app.recorded())
}

func TestModel_InputFormRendersAndAborts(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app))

	m = press(t, m, "a")
	require.NotNil(t, m.form)
	assert.Contains(t, m.render(), "New task")
	assert.Contains(t, m.help(), "esc: cancel")

	m = typeText(t, m, "half typed")
	m = press(t, m, "esc")

	assert.Equal(t, ListMode, m.Mode())
	assert.Nil(t, m.form)
	assert.NotContains(t, m.render(), "New task")
	assert.Empty(t, app.recorded())
}

func TestModel_EachPromptStartsEmpty(t *testing.T) {
	app := newFakeApp()
	m := withSnapshot(t, newTestModel(t, app))

	m = press(t, m, "a")
	m = typeText(t, m, "first")
	m = press(t, m, "enter")
	m = press(t, m, "a")
	m = typeText(t, m, "second")
	m = press(t, m, "enter")

	assert.Equal(t, []call{
		{op: "add", title: "first"},
		{op: "add", title: "second"},
	}, app.recorded())
}

// ============================================================================
// View
// ============================================================================

func TestView_RendersTasks(t *testing.T) {
	m := withSnapshot(t, newTestModel(t, newFakeApp()), sampleTasks()...)

	view := m.View()
	assert.True(t, view.AltScreen)

	content := m.render()
	assert.Contains(t, content, "1/3 done")
	assert.Contains(t, content, "Write report")
	assert.Contains(t, content, "[x]")
	assert.Equal(t, 1, strings.Count(content, "> "))
}

func TestView_EmptyAndLoading(t *testing.T) {
	m := newTestModel(t, newFakeApp())
	assert.Contains(t, m.render(), "Loading...")

	m = withSnapshot(t, m)
	assert.Contains(t, m.render(), "No tasks yet")
}
