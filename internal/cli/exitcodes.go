package cli

import (
	"errors"

	"github.com/thenoetrevino/focup/internal/models"
	"github.com/thenoetrevino/focup/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed background mutations,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, unparseable task ids, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested task id does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Corrupted config or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank task titles.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an explicit exit code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError marks err as a usage mistake
func UsageError(err error) error {
	return WithExitCode(ExitUsage, err)
}

// ExitCode maps a command error onto a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, task.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, task.ErrEmptyTitle):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "TASK_NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	if models.IsPersistenceError(err) {
		return "PERSISTENCE_ERROR"
	}
	return "ERROR"
}
