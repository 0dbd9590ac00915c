// Package worker runs mutations in the background, one at a time, in the order
// they were submitted.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrQueueClosed is returned by Submit after Stop has been called
var ErrQueueClosed = errors.New("work queue is closed")

// Job is a named unit of work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// ErrorHandler receives the error of a failed or panicking job
type ErrorHandler func(job string, err error)

// Queue is a single-goroutine FIFO executor. Submit never blocks and never
// drops a job; Stop refuses new work and waits for everything already queued.
type Queue struct {
	logger  *slog.Logger
	onError ErrorHandler

	mu      sync.Mutex
	pending []Job
	closed  bool
	started bool

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewQueue creates a queue. A nil logger falls back to slog.Default().
func NewQueue(logger *slog.Logger, onError ErrorHandler) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		logger:  logger,
		onError: onError,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

// Start launches the executor goroutine. Jobs run on a context detached from
// ctx cancellation; cancelling ctx behaves like Stop.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.mu.Unlock()

	q.logger.Debug("starting work queue")
	q.wg.Add(1)
	go q.loop(ctx)
}

// Submit appends a job to the queue
func (q *Queue) Submit(job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.pending = append(q.pending, job)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// Flush blocks until every job submitted before the call has run
func (q *Queue) Flush(ctx context.Context) error {
	done := make(chan struct{})
	err := q.Submit(Job{
		Name: "flush",
		Run: func(context.Context) error {
			close(done)
			return nil
		},
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len returns the number of jobs waiting to run
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Stop refuses new jobs, runs everything already queued, then returns
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.logger.Debug("stopping work queue", "pending", q.Len())

		q.mu.Lock()
		q.closed = true
		started := q.started
		q.mu.Unlock()

		close(q.stop)
		if !started {
			q.drain(context.Background())
		}
	})
	q.wg.Wait()
}

func (q *Queue) loop(ctx context.Context) {
	defer q.wg.Done()
	runCtx := context.WithoutCancel(ctx)

	for {
		if job, ok := q.next(); ok {
			q.run(runCtx, job)
			continue
		}

		select {
		case <-q.wake:
		case <-q.stop:
			q.drain(runCtx)
			return
		case <-ctx.Done():
			q.mu.Lock()
			q.closed = true
			q.mu.Unlock()
			q.drain(runCtx)
			return
		}
	}
}

func (q *Queue) next() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return Job{}, false
	}
	job := q.pending[0]
	q.pending[0] = Job{}
	q.pending = q.pending[1:]
	return job, true
}

func (q *Queue) drain(ctx context.Context) {
	for {
		job, ok := q.next()
		if !ok {
			return
		}
		q.run(ctx, job)
	}
}

func (q *Queue) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			q.report(job.Name, fmt.Errorf("job %s panicked: %v", job.Name, r))
		}
	}()

	if err := job.Run(ctx); err != nil {
		q.report(job.Name, err)
	}
}

func (q *Queue) report(job string, err error) {
	q.logger.Error("job failed", "job", job, "error", err)
	if q.onError != nil {
		q.onError(job, err)
	}
}
