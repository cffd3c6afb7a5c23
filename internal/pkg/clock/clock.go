// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-chargen/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock that returns a settable instant
type Fixed struct {
	T time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}

// Now returns the stored instant
func (c *Fixed) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
