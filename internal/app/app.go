package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/focup/internal/database"
	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
	taskservice "github.com/thenoetrevino/focup/internal/services/task"
	"github.com/thenoetrevino/focup/internal/worker"
)

// App holds all application services and provides dependency injection.
// Mutations are queued and run in order on a background worker; their
// effect is observed through the next snapshot of a subscription.
type App struct {
	store  *database.TaskStore
	tasks  taskservice.Service
	queue  *worker.Queue
	logger *slog.Logger

	closeOnce sync.Once
}

// New creates a new App with all services initialized and its queue running.
// The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	store := database.NewTaskStore(db, cfg.logger,
		events.WithGracePeriod(cfg.gracePeriod),
		events.WithPollInterval(cfg.pollInterval),
	)

	onError := func(job string, err error) {
		if cfg.onError != nil {
			cfg.onError(fmt.Errorf("%s: %w", job, err))
		}
	}

	a := &App{
		store:  store,
		tasks:  taskservice.NewService(store),
		queue:  worker.NewQueue(cfg.logger, onError),
		logger: cfg.logger,
	}
	a.queue.Start(context.Background())
	return a
}

// Subscribe returns the live task list
func (a *App) Subscribe(ctx context.Context) (*events.Subscription, error) {
	return a.tasks.SubscribeAll(ctx)
}

// Snapshot returns the current task list once
func (a *App) Snapshot(ctx context.Context) (events.Snapshot, error) {
	sub, err := a.Subscribe(ctx)
	if err != nil {
		return events.Snapshot{}, err
	}
	defer sub.Close()
	return sub.Next(ctx)
}

// AddTask queues creation of a task. Blank titles are rejected immediately.
func (a *App) AddTask(title string) error {
	if err := taskservice.ValidateTitle(title); err != nil {
		return err
	}
	return a.submit("add task", func(ctx context.Context) error {
		_, err := a.tasks.AddTask(ctx, title)
		return err
	})
}

// AddTaskWait queues creation of a task and waits for the result
func (a *App) AddTaskWait(ctx context.Context, title string) (*models.Task, error) {
	if err := taskservice.ValidateTitle(title); err != nil {
		return nil, err
	}

	type result struct {
		task *models.Task
		err  error
	}
	done := make(chan result, 1)

	err := a.submit("add task", func(ctx context.Context) error {
		task, err := a.tasks.AddTask(ctx, title)
		done <- result{task: task, err: err}
		return nil
	})
	if err != nil {
		return nil, err
	}

	select {
	case res := <-done:
		return res.task, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SetCompleted queues a completion change for task
func (a *App) SetCompleted(task models.Task, completed bool) error {
	return a.submit("update task", func(ctx context.Context) error {
		return a.tasks.UpdateCompletion(ctx, task, completed)
	})
}

// DeleteTask queues removal of task
func (a *App) DeleteTask(task models.Task) error {
	return a.submit("delete task", func(ctx context.Context) error {
		return a.tasks.DeleteTask(ctx, task)
	})
}

// Flush waits until every mutation queued so far has run
func (a *App) Flush(ctx context.Context) error {
	return a.queue.Flush(ctx)
}

// Metrics returns the change feed counters
func (a *App) Metrics() events.MetricsSnapshot {
	return a.store.Feed().Metrics()
}

// Close drains queued mutations, then closes the change feed.
// The database handle is not closed.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.queue.Stop()
		metrics := a.Metrics()
		a.store.Close()
		a.logger.Debug("app closed",
			"snapshots_published", metrics.SnapshotsPublished,
			"snapshots_delivered", metrics.SnapshotsDelivered,
			"snapshots_coalesced", metrics.SnapshotsCoalesced,
			"external_changes", metrics.ExternalChanges,
			"recompute_failures", metrics.RecomputeFailures,
			"uptime", metrics.Uptime,
		)
	})
	return nil
}

func (a *App) submit(name string, run func(context.Context) error) error {
	if err := a.queue.Submit(worker.Job{Name: name, Run: run}); err != nil {
		return fmt.Errorf("failed to queue %s: %w", name, err)
	}
	return nil
}
