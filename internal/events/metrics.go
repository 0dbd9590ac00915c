package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks feed statistics using atomic operations for thread-safety
type Metrics struct {
	SnapshotsPublished atomic.Int64
	SnapshotsDelivered atomic.Int64
	SnapshotsCoalesced atomic.Int64
	RecomputeFailures  atomic.Int64
	Suspensions        atomic.Int64
	ExternalChanges    atomic.Int64
	Subscribers        atomic.Int32
	StartTime          time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncPublished increments the published snapshot counter
func (m *Metrics) IncPublished() {
	m.SnapshotsPublished.Add(1)
}

// IncDelivered increments the delivered snapshot counter
func (m *Metrics) IncDelivered() {
	m.SnapshotsDelivered.Add(1)
}

// IncCoalesced counts a snapshot that replaced an unread one in a subscriber mailbox
func (m *Metrics) IncCoalesced() {
	m.SnapshotsCoalesced.Add(1)
}

// IncRecomputeFailures increments the failed recompute counter
func (m *Metrics) IncRecomputeFailures() {
	m.RecomputeFailures.Add(1)
}

// IncSuspensions increments the idle suspension counter
func (m *Metrics) IncSuspensions() {
	m.Suspensions.Add(1)
}

// IncExternalChanges counts commits detected from other connections
func (m *Metrics) IncExternalChanges() {
	m.ExternalChanges.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	SnapshotsPublished int64     `json:"snapshots_published"`
	SnapshotsDelivered int64     `json:"snapshots_delivered"`
	SnapshotsCoalesced int64     `json:"snapshots_coalesced"`
	RecomputeFailures  int64     `json:"recompute_failures"`
	Suspensions        int64     `json:"suspensions"`
	ExternalChanges    int64     `json:"external_changes"`
	Subscribers        int32     `json:"subscribers"`
	StartTime          time.Time `json:"start_time"`
	Uptime             string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		SnapshotsPublished: m.SnapshotsPublished.Load(),
		SnapshotsDelivered: m.SnapshotsDelivered.Load(),
		SnapshotsCoalesced: m.SnapshotsCoalesced.Load(),
		RecomputeFailures:  m.RecomputeFailures.Load(),
		Suspensions:        m.Suspensions.Load(),
		ExternalChanges:    m.ExternalChanges.Load(),
		Subscribers:        m.Subscribers.Load(),
		StartTime:          m.StartTime,
		Uptime:             time.Since(m.StartTime).String(),
	}
}
