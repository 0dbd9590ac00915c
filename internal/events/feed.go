package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/focup/internal/models"
)

// DefaultGracePeriod is how long a feed with no subscribers keeps its cached snapshot
const DefaultGracePeriod = 5 * time.Second

// DefaultPollInterval is how often a feed with a VersionCheck looks for
// commits made outside this process
const DefaultPollInterval = 500 * time.Millisecond

// SnapshotSource computes the full, ordered task list
type SnapshotSource func(ctx context.Context) ([]models.Task, error)

// VersionCheck reports a counter that changes whenever another connection
// commits to the underlying table
type VersionCheck func(ctx context.Context) (int64, error)

// Option configures a Feed
type Option func(*Feed)

// WithGracePeriod sets how long the feed stays warm after the last subscriber leaves.
// Zero suspends immediately, a negative value never suspends.
func WithGracePeriod(d time.Duration) Option {
	return func(f *Feed) {
		f.grace = d
	}
}

// WithVersionCheck makes the feed call check while it has subscribers and
// republish when the value changes
func WithVersionCheck(check VersionCheck) Option {
	return func(f *Feed) {
		f.versionOf = check
	}
}

// WithPollInterval sets how often the version check runs.
// A non-positive interval uses DefaultPollInterval.
func WithPollInterval(d time.Duration) Option {
	return func(f *Feed) {
		f.pollInterval = d
	}
}

// WithLogger sets the logger used for recompute failures and lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feed) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Feed re-emits the full task list to every subscriber after each mutation.
// Each subscriber owns a one-slot mailbox; an unread snapshot is replaced by
// the newer one, so a slow reader only ever skips intermediate states.
type Feed struct {
	source       SnapshotSource
	versionOf    VersionCheck
	pollInterval time.Duration
	logger       *slog.Logger
	grace        time.Duration
	done         chan struct{}
	watchWG      sync.WaitGroup

	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	current     *Snapshot // nil while suspended
	sequence    int64
	idleGen     uint64
	idleTimer   *time.Timer
	closed      bool
	version     int64
	versionOK   bool

	metrics *Metrics
}

// NewFeed creates a suspended feed; the first Subscribe computes the initial snapshot
func NewFeed(source SnapshotSource, opts ...Option) *Feed {
	f := &Feed{
		source:      source,
		logger:      slog.Default(),
		grace:       DefaultGracePeriod,
		subscribers: make(map[*Subscription]struct{}),
		metrics:     NewMetrics(),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.pollInterval <= 0 {
		f.pollInterval = DefaultPollInterval
	}
	if f.versionOf != nil {
		f.watchWG.Add(1)
		go f.watch()
	}
	return f
}

// Subscribe registers a subscriber whose mailbox already holds the current snapshot.
// Cancelling ctx closes the subscription.
func (f *Feed) Subscribe(ctx context.Context) (*Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrFeedClosed
	}

	f.cancelIdleLocked()

	if f.current == nil {
		if err := f.recomputeLocked(ctx); err != nil {
			f.scheduleSuspendLocked()
			return nil, models.NewPersistenceError("subscribe", err)
		}
	}

	sub := &Subscription{
		feed: f,
		ch:   make(chan Snapshot, 1),
	}
	sub.ch <- *f.current
	f.metrics.IncDelivered()

	f.subscribers[sub] = struct{}{}
	f.metrics.SetSubscribers(int32(len(f.subscribers)))
	sub.stop = context.AfterFunc(ctx, sub.Close)

	f.logger.Debug("feed subscriber added", "subscribers", len(f.subscribers), "sequence", f.current.SequenceID)
	return sub, nil
}

// Publish recomputes the snapshot and offers it to every subscriber.
// A suspended feed with nobody listening skips the work entirely.
func (f *Feed) Publish(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.publishLocked(ctx)
}

func (f *Feed) publishLocked(ctx context.Context) {
	if f.closed {
		return
	}
	if f.current == nil && len(f.subscribers) == 0 {
		return
	}

	if err := f.recomputeLocked(ctx); err != nil {
		f.metrics.IncRecomputeFailures()
		f.logger.Warn("feed recompute failed, keeping last snapshot", "error", err)
		return
	}

	f.metrics.IncPublished()
	for sub := range f.subscribers {
		f.offerLocked(sub, *f.current)
	}
}

// watch polls the version check and republishes on external commits
func (f *Feed) watch() {
	defer f.watchWG.Done()

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-f.done:
			return
		case <-ticker.C:
			f.checkExternal()
		}
	}
}

func (f *Feed) checkExternal() {
	f.mu.Lock()
	idle := f.closed || len(f.subscribers) == 0
	f.mu.Unlock()
	if idle {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.pollInterval*4)
	defer cancel()

	version, err := f.versionOf(ctx)
	if err != nil {
		f.logger.Debug("feed version check failed", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.versionOK && version == f.version {
		return
	}
	f.logger.Debug("external commit detected", "version", version)
	f.metrics.IncExternalChanges()
	f.publishLocked(ctx)
}

// Close closes every subscription and stops the version watcher; later
// Subscribe calls return ErrFeedClosed
func (f *Feed) Close() {
	f.shutdown()
	f.watchWG.Wait()
}

func (f *Feed) shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	close(f.done)
	f.cancelIdleLocked()

	for sub := range f.subscribers {
		f.detachLocked(sub)
	}
	f.current = nil
	f.metrics.SetSubscribers(0)
}

// Metrics returns a point-in-time copy of the feed counters
func (f *Feed) Metrics() MetricsSnapshot {
	return f.metrics.GetSnapshot()
}

// recomputeLocked must be called with f.mu held. The version is read before
// the tasks so a commit landing in between triggers one more publish.
func (f *Feed) recomputeLocked(ctx context.Context) error {
	if f.versionOf != nil {
		if version, err := f.versionOf(ctx); err == nil {
			f.version, f.versionOK = version, true
		}
	}

	tasks, err := f.source(ctx)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	f.sequence++
	f.current = &Snapshot{
		Tasks:      tasks,
		SequenceID: f.sequence,
		Timestamp:  time.Now(),
	}
	return nil
}

// offerLocked places snap in the subscriber mailbox, replacing an unread one.
// f.mu is the only sender, so the drain-then-send never races another writer.
func (f *Feed) offerLocked(sub *Subscription, snap Snapshot) {
	select {
	case sub.ch <- snap:
		f.metrics.IncDelivered()
		return
	default:
	}

	select {
	case <-sub.ch:
		f.metrics.IncCoalesced()
	default:
	}

	select {
	case sub.ch <- snap:
		f.metrics.IncDelivered()
	default:
	}
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subscribers[sub]; !ok {
		return
	}
	f.detachLocked(sub)
	f.metrics.SetSubscribers(int32(len(f.subscribers)))
	f.logger.Debug("feed subscriber removed", "subscribers", len(f.subscribers))

	if len(f.subscribers) == 0 && !f.closed {
		f.scheduleSuspendLocked()
	}
}

func (f *Feed) detachLocked(sub *Subscription) {
	delete(f.subscribers, sub)
	if sub.stop != nil {
		sub.stop()
	}
	sub.closeOnce.Do(func() {
		close(sub.ch)
	})
}

func (f *Feed) scheduleSuspendLocked() {
	switch {
	case f.grace < 0:
		return
	case f.grace == 0:
		f.suspendLocked()
		return
	}

	f.idleGen++
	gen := f.idleGen
	f.idleTimer = time.AfterFunc(f.grace, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.idleGen || f.closed || len(f.subscribers) > 0 {
			return
		}
		f.suspendLocked()
	})
}

func (f *Feed) cancelIdleLocked() {
	f.idleGen++
	if f.idleTimer != nil {
		f.idleTimer.Stop()
		f.idleTimer = nil
	}
}

func (f *Feed) suspendLocked() {
	if f.current == nil {
		return
	}
	f.current = nil
	f.metrics.IncSuspensions()
	f.logger.Debug("feed suspended, no subscribers")
}

// Subscription is one subscriber's view of the feed
type Subscription struct {
	feed      *Feed
	ch        chan Snapshot
	closeOnce sync.Once
	stop      func() bool // guarded by feed.mu
}

// C returns the mailbox channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

// Next blocks until a snapshot is available, the subscription closes, or ctx is done
func (s *Subscription) Next(ctx context.Context) (Snapshot, error) {
	select {
	case snap, ok := <-s.ch:
		if !ok {
			return Snapshot{}, ErrSubscriptionClosed
		}
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Close stops delivery and closes the channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.feed.unsubscribe(s)
}
