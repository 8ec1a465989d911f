// Package queue provides a single-worker job queue that enforces a minimum
// spacing between job completions. It is the serialization point in front of
// quota-limited backends: producers may burst, the downstream call rate stays
// bounded.
package queue

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned to callers awaiting a job after the queue shut down.
var ErrClosed = errors.New("queue: closed")

// Handler processes a single job.
type Handler[T, R any] func(ctx context.Context, job T) (R, error)

type result[R any] struct {
	val R
	err error
}

type task[T, R any] struct {
	payload  T
	enqueued time.Time
	res      chan result[R]
}

// Throttled is a single-consumer job queue with an unbounded backlog.
// Exactly one job is in flight at a time; after a job completes the worker
// waits at least minInterval before dequeuing the next one.
type Throttled[T, R any] struct {
	minInterval time.Duration
	handler     Handler[T, R]

	mu      sync.Mutex
	backlog []*task[T, R]
	closed  bool

	wake chan struct{}
	done chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once

	onDepth func(int)
	onWait  func(seconds float64)
}

// Option configures a Throttled queue.
type Option[T, R any] func(*Throttled[T, R])

// WithDepthGauge reports the backlog depth after every enqueue/dequeue.
func WithDepthGauge[T, R any](fn func(int)) Option[T, R] {
	return func(q *Throttled[T, R]) { q.onDepth = fn }
}

// WithWaitObserver reports how long each job waited before its handler ran.
func WithWaitObserver[T, R any](fn func(float64)) Option[T, R] {
	return func(q *Throttled[T, R]) { q.onWait = fn }
}

// NewThrottled creates a queue and starts its worker.
func NewThrottled[T, R any](minInterval time.Duration, handler Handler[T, R], opts ...Option[T, R]) *Throttled[T, R] {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Throttled[T, R]{
		minInterval: minInterval,
		handler:     handler,
		wake:        make(chan struct{}, 1),
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Do enqueues a job and blocks until its handler resolves it, the caller's
// context is cancelled, or the queue shuts down. Jobs still in the backlog
// when the queue closes are dropped; their callers get ErrClosed.
func (q *Throttled[T, R]) Do(ctx context.Context, payload T) (R, error) {
	var zero R

	t := &task[T, R]{
		payload:  payload,
		enqueued: time.Now(),
		res:      make(chan result[R], 1),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return zero, ErrClosed
	}
	q.backlog = append(q.backlog, t)
	depth := len(q.backlog)
	q.mu.Unlock()

	if q.onDepth != nil {
		q.onDepth(depth)
	}
	select {
	case q.wake <- struct{}{}:
	default:
	}

	select {
	case r := <-t.res:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-q.done:
		// The handler may have resolved the job right as the queue closed.
		select {
		case r := <-t.res:
			return r.val, r.err
		default:
			return zero, ErrClosed
		}
	}
}

// Close stops the worker after the in-flight job finishes or observes
// cancellation. Pending jobs are never completed.
func (q *Throttled[T, R]) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		q.cancel()
		close(q.done)
	})
}

func (q *Throttled[T, R]) run() {
	for {
		t, ok := q.pop()
		if !ok {
			select {
			case <-q.ctx.Done():
				return
			case <-q.wake:
				continue
			}
		}

		if q.onWait != nil {
			q.onWait(time.Since(t.enqueued).Seconds())
		}

		val, err := q.handler(q.ctx, t.payload)
		t.res <- result[R]{val: val, err: err}

		if q.minInterval > 0 {
			timer := time.NewTimer(q.minInterval)
			select {
			case <-timer.C:
			case <-q.ctx.Done():
				timer.Stop()
				return
			}
		}

		select {
		case <-q.ctx.Done():
			return
		default:
		}
	}
}

func (q *Throttled[T, R]) pop() (*task[T, R], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.backlog) == 0 {
		return nil, false
	}
	t := q.backlog[0]
	q.backlog = q.backlog[1:]
	if q.onDepth != nil {
		q.onDepth(len(q.backlog))
	}
	return t, true
}

// Len reports the current backlog depth.
func (q *Throttled[T, R]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}
