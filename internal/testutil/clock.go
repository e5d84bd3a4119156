package testutil

import (
	"sync"
	"time"
)

// Clock is a deterministic time source for tests. Every call to Now
// advances a fixed base instant by one step, so timestamps recorded
// through it are stable across runs.
//
// Thread-safety: Now and Reset are safe for concurrent use.
type Clock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	ticks int64
}

// NewClock creates a clock whose first Now call returns start.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{start: start, step: step}
}

// Now returns the current instant and advances the clock by one step.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.ticks) * c.step)
	c.ticks++
	return t
}

// Reset rewinds the clock so the next Now call returns start again.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}
