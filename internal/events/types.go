package events

import (
	"time"

	"github.com/thenoetrevino/focup/internal/models"
)

// Snapshot is the complete, ordered task list at one point in logical time
type Snapshot struct {
	Tasks      []models.Task `json:"tasks"`
	SequenceID int64         `json:"sequence_id"` // Strictly increasing per feed
	Timestamp  time.Time     `json:"timestamp"`
}

// Len returns the number of tasks in the snapshot
func (s Snapshot) Len() int {
	return len(s.Tasks)
}
