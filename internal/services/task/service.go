package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/focup/internal/database"
	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
)

// Store is the persistence the service mediates. *database.TaskStore satisfies it.
type Store interface {
	Insert(ctx context.Context, title string) (*models.Task, error)
	Update(ctx context.Context, task models.Task) error
	Delete(ctx context.Context, task models.Task) error
	QueryAll(ctx context.Context) (*events.Subscription, error)
}

var _ Store = (*database.TaskStore)(nil)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	SubscribeAll(ctx context.Context) (*events.Subscription, error)

	// Write operations
	AddTask(ctx context.Context, title string) (*models.Task, error)
	UpdateCompletion(ctx context.Context, task models.Task, completed bool) error
	DeleteTask(ctx context.Context, task models.Task) error
}

// service implements Service interface
type service struct {
	store Store
}

// NewService creates a new task service
func NewService(store Store) Service {
	return &service{store: store}
}

// SubscribeAll returns the live list of all tasks, newest first
func (s *service) SubscribeAll(ctx context.Context) (*events.Subscription, error) {
	sub, err := s.store.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to tasks: %w", err)
	}
	return sub, nil
}

// AddTask validates the title and creates a task with it, unmodified
func (s *service) AddTask(ctx context.Context, title string) (*models.Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	task, err := s.store.Insert(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateCompletion stores a copy of task with IsCompleted set to completed
func (s *service) UpdateCompletion(ctx context.Context, task models.Task, completed bool) error {
	if err := s.store.Update(ctx, task.WithCompleted(completed)); err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return nil
}

// DeleteTask removes task
func (s *service) DeleteTask(ctx context.Context, task models.Task) error {
	if err := s.store.Delete(ctx, task); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", task.ID, err)
	}
	return nil
}

// ValidateTitle rejects titles that are empty after trimming whitespace
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
