package sched

import (
	"testing"
	"time"

	"github.com/tdewolff/test"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []int
	m.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, 2) })
	test.T(t, m.Len(), 3)

	test.T(t, m.Add(5*time.Millisecond), 0)
	test.T(t, m.Add(5*time.Millisecond), 2)
	test.T(t, order, []int{1, 2})
	test.T(t, m.Add(time.Second), 1)
	test.T(t, order, []int{1, 2, 3})
	test.T(t, m.Len(), 0)
}

func TestStop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	timer := m.AfterFunc(10*time.Millisecond, func() { fired = true })
	other := m.AfterFunc(20*time.Millisecond, func() {})

	test.That(t, timer.Stop())
	test.That(t, !timer.Stop())
	m.Add(time.Second)
	test.That(t, !fired)
	test.That(t, !other.Stop(), "fired timer cannot be stopped")
}

func TestScheduleFromCallback(t *testing.T) {
	m := NewManual(epoch)
	calls := 0
	m.AfterFunc(0, func() {
		calls++
		m.AfterFunc(0, func() { calls++ })
		m.AfterFunc(time.Minute, func() { calls++ })
	})
	m.Add(0)
	test.T(t, calls, 2)
	test.T(t, m.Len(), 1)
}

func TestWallLoop(t *testing.T) {
	l := NewLoop()
	fired := false
	l.AfterFunc(-time.Second, func() { fired = true })
	test.T(t, l.Advance(), 1)
	test.That(t, fired)
}
