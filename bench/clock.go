package bench

import "time"

// Clock is a monotonic duration source. Only differences between two Now
// values are meaningful.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration { return f() }

// SystemClock returns a Clock backed by the runtime's monotonic clock.
func SystemClock() Clock {
	start := time.Now()
	return ClockFunc(func() time.Duration {
		return time.Since(start)
	})
}
