package database

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
)

// ============================================================================
// Task Store
// ============================================================================

// TaskStore owns the tasks table. Every mutation commits and republishes the
// full task list through the change feed before the next mutation may start.
type TaskStore struct {
	db      *sql.DB
	feed    *events.Feed
	logger  *slog.Logger
	writeMu sync.Mutex
}

// NewTaskStore creates a store over an initialized database handle.
// The feed also republishes commits made through other handles on the same
// file, detected with PRAGMA data_version. A nil logger uses slog.Default.
func NewTaskStore(db *sql.DB, logger *slog.Logger, feedOpts ...events.Option) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TaskStore{db: db, logger: logger}

	opts := []events.Option{
		events.WithLogger(logger),
		events.WithVersionCheck(s.DataVersion),
	}
	s.feed = events.NewFeed(s.GetAll, append(opts, feedOpts...)...)
	return s
}

// Feed returns the change feed backed by this store
func (s *TaskStore) Feed() *events.Feed {
	return s.feed
}

// Insert creates a new incomplete task and returns it with its assigned id
func (s *TaskStore) Insert(ctx context.Context, title string) (*models.Task, error) {
	var task *models.Task
	err := s.mutate(ctx, "insert", func(ctx context.Context) error {
		result, err := s.db.ExecContext(ctx,
			`INSERT INTO tasks (title, isCompleted) VALUES (?, 0)`,
			title,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		task = &models.Task{ID: id, Title: title, IsCompleted: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update overwrites the row with task.ID. A missing row is a no-op.
func (s *TaskStore) Update(ctx context.Context, task models.Task) error {
	return s.mutate(ctx, "update", func(ctx context.Context) error {
		result, err := s.db.ExecContext(ctx,
			`UPDATE tasks SET title = ?, isCompleted = ? WHERE id = ?`,
			task.Title, task.IsCompleted, task.ID,
		)
		if err != nil {
			return err
		}
		if rowsAffected(result) == 0 {
			s.logger.Debug("update matched no task", "id", task.ID)
		}
		return nil
	})
}

// Delete removes the row with task.ID. A missing row is a no-op.
func (s *TaskStore) Delete(ctx context.Context, task models.Task) error {
	return s.mutate(ctx, "delete", func(ctx context.Context) error {
		result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, task.ID)
		if err != nil {
			return err
		}
		if rowsAffected(result) == 0 {
			s.logger.Debug("delete matched no task", "id", task.ID)
		}
		return nil
	})
}

// QueryAll subscribes to the live "all tasks, newest first" query
func (s *TaskStore) QueryAll(ctx context.Context) (*events.Subscription, error) {
	return s.feed.Subscribe(ctx)
}

// GetAll reads every task once, ordered by id descending
func (s *TaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, isCompleted
		 FROM tasks
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, models.NewPersistenceError("query", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.IsCompleted); err != nil {
			return nil, models.NewPersistenceError("query", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("query", err)
	}

	return tasks, nil
}

// DataVersion returns SQLite's data_version for this handle's connection.
// It changes only when another connection commits to the file.
func (s *TaskStore) DataVersion(ctx context.Context) (int64, error) {
	var version int64
	if err := s.db.QueryRowContext(ctx, "PRAGMA data_version").Scan(&version); err != nil {
		return 0, models.NewPersistenceError("query", err)
	}
	return version, nil
}

// Close shuts down the change feed. The database handle is left open.
func (s *TaskStore) Close() {
	s.feed.Close()
}

// mutate runs fn under the writer lock and republishes on success
func (s *TaskStore) mutate(ctx context.Context, op string, fn func(context.Context) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := fn(ctx); err != nil {
		s.logger.Error("task mutation failed", "op", op, "error", err)
		return models.NewPersistenceError(op, err)
	}

	s.feed.Publish(context.WithoutCancel(ctx))
	return nil
}
