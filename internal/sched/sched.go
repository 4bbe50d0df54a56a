// Package sched is a single-threaded timer queue pumped by the UI loop.
//
// Callbacks never run on their own goroutine: they run inside Advance,
// which the frame loop calls once per tick.
package sched

import (
	"container/heap"
	"time"

	"go-shape-outline/internal/throttle"
)

type timer struct {
	loop     *Loop
	deadline time.Time
	seq      uint64
	f        func()
	index    int // позиция в куче, -1 если таймер уже не в очереди
}

// Stop removes the timer from the queue.
func (t *timer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.loop.queue, t.index)
	return true
}

type queue []*timer

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}
func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *queue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Loop is a throttle.Clock whose timers fire from Advance.
type Loop struct {
	now   func() time.Time
	queue queue
	seq   uint64
}

var _ throttle.Clock = (*Loop)(nil)

// NewLoop returns a loop backed by the wall clock.
func NewLoop() *Loop {
	return &Loop{now: time.Now}
}

func (l *Loop) Now() time.Time { return l.now() }

// AfterFunc schedules f to run from the first Advance at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, f func()) throttle.Timer {
	l.seq++
	t := &timer{
		loop:     l,
		deadline: l.now().Add(d),
		seq:      l.seq,
		f:        f,
	}
	heap.Push(&l.queue, t)
	return t
}

// Advance runs every due timer in deadline order and returns how many ran.
// Timers scheduled by a callback run in the same pass if they are already due.
func (l *Loop) Advance() int {
	ran := 0
	now := l.now()
	for len(l.queue) > 0 && !l.queue[0].deadline.After(now) {
		t := heap.Pop(&l.queue).(*timer)
		t.f()
		ran++
	}
	return ran
}

// Len returns the number of pending timers.
func (l *Loop) Len() int { return len(l.queue) }

// Manual is a Loop with a hand-driven clock, for tests and headless runs.
type Manual struct {
	Loop
	current time.Time
}

// NewManual returns a manual loop starting at start.
func NewManual(start time.Time) *Manual {
	m := &Manual{current: start}
	m.Loop.now = func() time.Time { return m.current }
	return m
}

// Add moves the clock forward by d and runs the timers that became due.
func (m *Manual) Add(d time.Duration) int {
	return m.Set(m.current.Add(d))
}

// Set moves the clock to t and runs the timers that became due.
func (m *Manual) Set(t time.Time) int {
	m.current = t
	return m.Advance()
}
