package task

import "errors"

// Task-related errors
var (
	// ErrEmptyTitle is returned when a title is empty or only whitespace
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrTaskNotFound is returned when an id is not in the current task list
	ErrTaskNotFound = errors.New("task not found")
)
