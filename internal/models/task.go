package models

// Task is a single entry in the task list.
// ID is assigned by the store on insert and never reused.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t Task) GetID() int64 {
	return t.ID
}

// WithCompleted returns a copy of the task with IsCompleted set to completed
func (t Task) WithCompleted(completed bool) Task {
	t.IsCompleted = completed
	return t
}

// FindTask returns the task with the given ID from a snapshot list
func FindTask(tasks []Task, id int64) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
