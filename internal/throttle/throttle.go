// Package throttle limits how often a unit of work runs.
//
// A Throttle runs the first call of a quiet period immediately. Calls that
// arrive within the interval after a run collapse into a single trailing
// run, scheduled for the end of the interval, which receives the value of
// the most recent call. Every call cancels and replaces the pending run.
package throttle

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// Clock supplies time and deferred execution. The callback passed to
// AfterFunc must run on the same logical thread as Call.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Throttle is a leading+trailing rate limiter around fn.
type Throttle[T any] struct {
	interval time.Duration
	clock    Clock
	fn       func(T)

	lastRun time.Time
	ran     bool
	pending Timer
	latest  T
	runs    int
}

// New returns a throttle that runs fn at most once per interval.
func New[T any](interval time.Duration, clock Clock, fn func(T)) *Throttle[T] {
	return &Throttle[T]{
		interval: interval,
		clock:    clock,
		fn:       fn,
	}
}

// Call requests a run with v.
func (t *Throttle[T]) Call(v T) {
	now := t.clock.Now()
	t.latest = v
	if !t.ran || now.Sub(t.lastRun) >= t.interval {
		t.Cancel()
		t.run(now, v)
		return
	}

	t.Cancel()
	wait := t.interval - now.Sub(t.lastRun)
	t.pending = t.clock.AfterFunc(wait, t.trailing)
}

func (t *Throttle[T]) trailing() {
	t.pending = nil
	now := t.clock.Now()
	// сработавший раньше срока таймер вызов не выполняет
	if now.Sub(t.lastRun) < t.interval {
		return
	}
	t.run(now, t.latest)
}

func (t *Throttle[T]) run(now time.Time, v T) {
	t.lastRun = now
	t.ran = true
	t.runs++
	t.fn(v)
}

// Cancel drops the pending trailing run, if any.
func (t *Throttle[T]) Cancel() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// Pending reports whether a trailing run is scheduled.
func (t *Throttle[T]) Pending() bool { return t.pending != nil }

// Runs returns how many times fn has been executed.
func (t *Throttle[T]) Runs() int { return t.runs }

// Interval returns the minimum spacing between runs.
func (t *Throttle[T]) Interval() time.Duration { return t.interval }
