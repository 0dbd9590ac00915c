package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/focup/internal/events"
	"github.com/thenoetrevino/focup/internal/models"
)

// DefaultWait bounds how long helpers wait for a snapshot
const DefaultWait = 3 * time.Second

// NextSnapshot receives one snapshot or fails the test
func NextSnapshot(t *testing.T, sub *events.Subscription) events.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultWait)
	defer cancel()

	snap, err := sub.Next(ctx)
	if err != nil {
		t.Fatalf("Failed to receive snapshot: %v", err)
	}
	return snap
}

// WaitForSnapshot receives snapshots until match returns true and returns
// the matching one
func WaitForSnapshot(t *testing.T, sub *events.Subscription, match func([]models.Task) bool) events.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultWait)
	defer cancel()

	for {
		snap, err := sub.Next(ctx)
		if err != nil {
			t.Fatalf("Snapshot never matched: %v", err)
		}
		if match(snap.Tasks) {
			return snap
		}
	}
}

// HasLen matches task lists of length n
func HasLen(n int) func([]models.Task) bool {
	return func(tasks []models.Task) bool {
		return len(tasks) == n
	}
}
