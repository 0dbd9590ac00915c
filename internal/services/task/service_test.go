package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/focup/internal/database"
	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
	"github.com/thenoetrevino/focup/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) Service {
	t.Helper()
	store := database.NewTaskStore(testutil.SetupTestDB(t), nil)
	t.Cleanup(store.Close)
	return NewService(store)
}

// failingStore returns err from every call
type failingStore struct {
	err     error
	inserts int
}

func (s *failingStore) Insert(context.Context, string) (*models.Task, error) {
	s.inserts++
	return nil, s.err
}

func (s *failingStore) Update(context.Context, models.Task) error { return s.err }
func (s *failingStore) Delete(context.Context, models.Task) error { return s.err }
func (s *failingStore) QueryAll(context.Context) (*events.Subscription, error) {
	return nil, s.err
}

// ============================================================================
// AddTask
// ============================================================================

func TestAddTask_RejectsBlankTitles(t *testing.T) {
	store := &failingStore{}
	svc := NewService(store)

	for _, title := range []string{"", " ", "\t\n  "} {
		task, err := svc.AddTask(context.Background(), title)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, ErrEmptyTitle, "title %q", title)
	}
	assert.Zero(t, store.inserts, "blank titles never reach the store")
}

func TestAddTask_PreservesTitle(t *testing.T) {
	svc := setupService(t)

	task, err := svc.AddTask(context.Background(), " Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, " Buy milk ", task.Title)
	assert.False(t, task.IsCompleted)
}

// ============================================================================
// Scenario
// ============================================================================

func TestService_ReferenceScenario(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	sub, err := svc.SubscribeAll(ctx)
	require.NoError(t, err)
	defer sub.Close()

	milk, err := svc.AddTask(ctx, "Buy milk")
	require.NoError(t, err)
	dog, err := svc.AddTask(ctx, "Walk the dog")
	require.NoError(t, err)
	assert.Equal(t, int64(1), milk.ID)
	assert.Equal(t, int64(2), dog.ID)

	snap := testutil.WaitForSnapshot(t, sub, testutil.HasLen(2))
	assert.Equal(t, []models.Task{
		{ID: 2, Title: "Walk the dog"},
		{ID: 1, Title: "Buy milk"},
	}, snap.Tasks)

	require.NoError(t, svc.UpdateCompletion(ctx, *dog, true))
	snap = testutil.NextSnapshot(t, sub)
	assert.Equal(t, []models.Task{
		{ID: 2, Title: "Walk the dog", IsCompleted: true},
		{ID: 1, Title: "Buy milk"},
	}, snap.Tasks)

	require.NoError(t, svc.DeleteTask(ctx, *milk))
	snap = testutil.NextSnapshot(t, sub)
	assert.Equal(t, []models.Task{{ID: 2, Title: "Walk the dog", IsCompleted: true}}, snap.Tasks)
}

func TestUpdateCompletion_LeavesTitleUntouched(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	task, err := svc.AddTask(ctx, "Write report")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateCompletion(ctx, *task, true))
	require.NoError(t, svc.UpdateCompletion(ctx, *task, false))

	sub, err := svc.SubscribeAll(ctx)
	require.NoError(t, err)
	defer sub.Close()

	snap := testutil.NextSnapshot(t, sub)
	assert.Equal(t, []models.Task{{ID: task.ID, Title: "Write report"}}, snap.Tasks)
}

// ============================================================================
// Error propagation
// ============================================================================

func TestService_WrapsStoreErrors(t *testing.T) {
	cause := models.NewPersistenceError("insert", errors.New("disk I/O error"))
	svc := NewService(&failingStore{err: cause})
	ctx := context.Background()

	_, err := svc.AddTask(ctx, "x")
	assert.ErrorIs(t, err, cause)
	assert.True(t, models.IsPersistenceError(err))

	assert.ErrorIs(t, svc.UpdateCompletion(ctx, models.Task{ID: 1}, true), cause)
	assert.ErrorIs(t, svc.DeleteTask(ctx, models.Task{ID: 1}), cause)

	_, err = svc.SubscribeAll(ctx)
	assert.ErrorIs(t, err, cause)
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		title string
		want  error
	}{
		{"", ErrEmptyTitle},
		{"   ", ErrEmptyTitle},
		{"a", nil},
		{"  a  ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateTitle(tt.title), "title %q", tt.title)
	}
}
