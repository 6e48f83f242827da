// Package clock provides the time source for combat log timestamps and encounter starts
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/spellforge/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a clock that only moves when told to
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock stopped at now
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now returns the stopped time
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
