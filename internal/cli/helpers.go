package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/focup/internal/models"
	"github.com/thenoetrevino/focup/internal/services/task"
)

// ParseTaskID parses a task id argument. A leading '#' is accepted.
func ParseTaskID(arg string) (int64, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, UsageError(fmt.Errorf("invalid task id '%s' (must be a positive integer)", arg))
	}
	return id, nil
}

// FindTask looks id up in the current snapshot
func FindTask(ctx context.Context, cliInstance *CLI, id int64) (models.Task, error) {
	snap, err := cliInstance.App.Snapshot(ctx)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	t, ok := models.FindTask(snap.Tasks, id)
	if !ok {
		return models.Task{}, fmt.Errorf("task %d: %w", id, task.ErrTaskNotFound)
	}
	return t, nil
}

// reportedError marks an error that has already been printed
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// IsReported reports whether err was already printed by ReportError
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// ReportError prints err through the formatter with a code and suggestion
// matching its exit code, and returns it marked as reported
func ReportError(formatter *OutputFormatter, err error) error {
	var suggestion string
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		suggestion = "Run 'focup list' to see task ids"
	case errors.Is(err, task.ErrEmptyTitle):
		suggestion = "Provide a title, e.g. focup add \"Buy milk\""
	case models.IsPersistenceError(err):
		suggestion = "Check that the database path is writable"
	}
	_ = formatter.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
	return reportedError{err}
}
