// Package clock lets stores stamp imports with a time tests can control
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dominions-mapgen/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real reads the system clock. Times are UTC and truncated to whole seconds,
// the precision the catalog stores keep.
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
