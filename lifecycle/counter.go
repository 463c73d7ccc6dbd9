package lifecycle

import (
	"sync"
)

// SignalCounter tracks repeated termination signals. The bridge uses it
// to implement "first signal = graceful unwinding, second = immediate
// signal death": the first increment converts the signal into an
// interrupt, any later one bypasses teardown entirely.
//
// The counter is its own type (rather than a bare int in the bridge) so
// the repeat policy can be tested without delivering real signals.
type SignalCounter struct {
	mu    sync.Mutex
	count int
}

// NewSignalCounter creates a counter at zero.
func NewSignalCounter() *SignalCounter {
	return &SignalCounter{}
}

// Increment increases the signal count by one and returns the new count.
func (c *SignalCounter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// Count returns the current signal count.
func (c *SignalCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset resets the count to zero. Useful in tests.
func (c *SignalCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
}
