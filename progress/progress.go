// Package progress defines the event shape and cooperative cancellation
// primitive threaded through the annealer and driver, decoupled from any
// particular delivery mechanism (direct callback, channel, or logger).
package progress

import "sync/atomic"

// Event is emitted on a fixed iteration stride during a run.
type Event struct {
	Restart     int
	Iteration   int
	Temperature float64
	BestScore   float64
}

// Reporter receives Event values. Implementations must not block for long:
// the annealer calls it synchronously on its own goroutine between
// iterations. A nil Reporter is valid and simply drops events.
type Reporter func(Event)

// Flag is a cooperative, concurrency-safe cancellation signal. The zero
// value is unset. A single Flag may be shared across a driver's restarts;
// setting it once cancels all of them.
type Flag struct {
	set atomic.Bool
}

// Cancel marks the flag set. Safe to call from any goroutine, any number of
// times.
func (f *Flag) Cancel() {
	if f != nil {
		f.set.Store(true)
	}
}

// Cancelled reports whether the flag has been set. A nil Flag is never
// cancelled.
func (f *Flag) Cancelled() bool {
	return f != nil && f.set.Load()
}
