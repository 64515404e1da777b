// Package clock provides an injectable time source. The customer cancellation
// window is computed from wall-clock time, so handlers take a Clock instead of
// calling time.Now directly and tests substitute a fixed instant.
package clock

import "time"

// Clock supplies the current time to application code.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always reports the same instant.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
