// Package eventloop implements the shared cooperative scheduler: a single
// runner goroutine draining a task queue, with an interrupt-aware idle wait.
//
// The process owns at most one Handle, created lazily through a Provider
// and closed exactly once by the lifecycle guard. The loop is the only
// deliberate suspension point in the front-end: Wait blocks while tasks
// are in flight, and an arriving termination signal unwinds that wait with
// the InterruptSignal carried by the interrupt context.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"pkgup/core"
)

// ErrLoopClosed is returned when submitting to a closed loop.
var ErrLoopClosed = errors.New("event loop is closed")

// DefaultQueueSize is the task queue capacity. Submit blocks once the
// queue is full, which is the cooperative backpressure this design wants.
const DefaultQueueSize = 64

// Handle is the shared event loop. A single runner goroutine executes
// submitted tasks in FIFO order; Wait suspends until the queue drains or
// an interrupt arrives.
//
// The handle is created on first demand (see Provider) and must be closed
// exactly once. Once closed it must never be used again: Submit returns
// ErrLoopClosed and further Close calls are no-ops.
type Handle struct {
	logger    *zap.Logger
	interrupt context.Context

	mu     sync.Mutex
	closed bool

	tasks   chan func()
	pending int64
	drained sync.WaitGroup

	closeOnce  sync.Once
	runnerDone chan struct{}
}

// New creates a Handle and starts its runner goroutine.
//
// The interrupt context is the bridge's cancellation source: its cause is
// the InterruptSignal that Wait surfaces when a termination signal arrives
// mid-suspension.
func New(interrupt context.Context, logger *zap.Logger) *Handle {
	h := &Handle{
		logger:     logger,
		interrupt:  interrupt,
		tasks:      make(chan func(), DefaultQueueSize),
		runnerDone: make(chan struct{}),
	}
	go h.run()
	return h
}

// run is the single runner goroutine. It exits when the task channel is
// closed, after executing everything still queued.
func (h *Handle) run() {
	defer close(h.runnerDone)
	for task := range h.tasks {
		task()
		atomic.AddInt64(&h.pending, -1)
		h.drained.Done()
	}
}

// Submit enqueues a task for execution on the runner goroutine.
// Returns ErrLoopClosed if the loop has been closed.
func (h *Handle) Submit(task func()) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrLoopClosed
	}
	atomic.AddInt64(&h.pending, 1)
	h.drained.Add(1)
	h.tasks <- task
	return nil
}

// Pending returns the number of tasks submitted but not yet finished.
func (h *Handle) Pending() int64 {
	return atomic.LoadInt64(&h.pending)
}

// Wait suspends until every submitted task has finished. This is the
// loop's idle point and the place a termination signal is expected to
// surface: if the interrupt context is cancelled while Wait is suspended,
// Wait unwinds immediately with the InterruptSignal that cancelled it.
//
// The caller's own ctx bounds the wait independently of interrupts.
func (h *Handle) Wait(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		h.drained.Wait()
		close(idle)
	}()

	select {
	case <-idle:
		return nil
	case <-h.interrupt.Done():
		return InterruptCause(h.interrupt)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the loop down: no new tasks are accepted, everything still
// queued is executed, and the runner goroutine exits. Only the first call
// does anything; calling Close again is a safe no-op.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.tasks)
		h.mu.Unlock()

		<-h.runnerDone
		h.logger.Debug("event loop closed")
	})
	return nil
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// InterruptCause extracts the InterruptSignal that cancelled an interrupt
// context. If the context was cancelled by something other than the signal
// bridge, the raw cause is returned instead.
func InterruptCause(ctx context.Context) error {
	cause := context.Cause(ctx)
	if intr, ok := core.IsInterrupt(cause); ok {
		return intr
	}
	return cause
}
