package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pkgup/core"
	"pkgup/eventloop"
)

// ErrGuardReleased is returned when acquiring the event loop after the
// guard has already torn it down.
var ErrGuardReleased = errors.New("lifecycle guard already released")

// releaseEntry is one registered teardown hook.
type releaseEntry struct {
	name     string
	priority int // lower runs first
	fn       core.ReleaseFunc
}

// Guard owns the lazily-created shared event loop and guarantees its
// release happens exactly once per process, on every exit path.
//
// The event loop is created on the first Acquire and closed by Release.
// Release also drains any other registered teardown hooks in priority
// order; Release on a guard whose loop was never acquired is a safe
// no-op for the loop and still runs the other hooks.
//
// Ordinary function-return cleanup does not cover the signal path, which
// is why the guard wraps the whole top-level control flow: main hands
// Guard.Release to the exit resolver, which runs it after diagnostics on
// every outcome.
type Guard struct {
	logger   *zap.Logger
	provider *eventloop.Provider

	mu       sync.Mutex
	entries  []releaseEntry
	released bool
}

// NewGuard creates a Guard around the given event loop provider.
func NewGuard(provider *eventloop.Provider, logger *zap.Logger) *Guard {
	return &Guard{
		logger:   logger,
		provider: provider,
	}
}

// Acquire returns the shared event loop, creating it on first call. Once
// the guard has released, the loop must never come back: Acquire returns
// ErrGuardReleased.
func (g *Guard) Acquire() (*eventloop.Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return nil, ErrGuardReleased
	}

	first := g.provider.Current() == nil
	handle := g.provider.GetOrCreate()
	if first {
		g.entries = append(g.entries, releaseEntry{
			name:     "event-loop",
			priority: 30,
			fn: func(ctx context.Context) error {
				return handle.Close()
			},
		})
	}
	return handle, nil
}

// RegisterRelease adds a teardown hook run by Release. Lower priority
// values run earlier. Registration after Release is a no-op.
func (g *Guard) RegisterRelease(name string, priority int, fn core.ReleaseFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return
	}
	g.entries = append(g.entries, releaseEntry{name: name, priority: priority, fn: fn})
}

// Release runs every registered teardown hook in priority order. Only the
// first call does anything; later calls return nil without side effects.
// Hook errors do not stop the remaining hooks; they are aggregated into
// the returned error.
func (g *Guard) Release(ctx context.Context) error {
	g.mu.Lock()
	if g.released {
		g.mu.Unlock()
		return nil
	}
	g.released = true
	entries := make([]releaseEntry, len(g.entries))
	copy(entries, g.entries)
	g.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})

	var errs error
	for _, entry := range entries {
		if err := entry.fn(ctx); err != nil {
			g.logger.Error("release hook failed",
				zap.String("name", entry.name),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", entry.name, err))
			continue
		}
		g.logger.Debug("release hook finished", zap.String("name", entry.name))
	}
	return errs
}

// Released reports whether Release has run.
func (g *Guard) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}
