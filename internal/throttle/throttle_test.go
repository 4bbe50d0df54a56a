package throttle_test

import (
	"testing"
	"time"

	"go-shape-outline/internal/sched"
	"go-shape-outline/internal/throttle"

	"github.com/tdewolff/test"
)

const interval = 100 * time.Millisecond

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newThrottle(clock throttle.Clock) (*throttle.Throttle[int], *[]int) {
	var got []int
	th := throttle.New(interval, clock, func(v int) { got = append(got, v) })
	return th, &got
}

func TestLeadingRunsImmediately(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	th.Call(1)
	test.T(t, *got, []int{1})
	test.That(t, !th.Pending())
}

func TestBurstCollapsesToTrailing(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	for i := 1; i <= 10; i++ {
		th.Call(i)
		clock.Add(5 * time.Millisecond)
	}
	test.T(t, *got, []int{1})
	test.That(t, th.Pending())
	test.T(t, clock.Len(), 1, "each call replaces the pending timer")

	clock.Add(interval)
	test.T(t, *got, []int{1, 10})
	test.T(t, th.Runs(), 2)
	test.That(t, !th.Pending())
}

func TestTrailingFiresAtEndOfInterval(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	th.Call(1)
	clock.Add(30 * time.Millisecond)
	th.Call(2)
	clock.Add(69 * time.Millisecond)
	test.T(t, len(*got), 1)
	clock.Add(time.Millisecond)
	test.T(t, *got, []int{1, 2})
}

func TestQuietPeriodRunsImmediately(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	th.Call(1)
	clock.Add(250 * time.Millisecond)
	th.Call(2)
	test.T(t, *got, []int{1, 2})

	clock.Add(50 * time.Millisecond)
	th.Call(3)
	test.T(t, len(*got), 2)
	clock.Add(50 * time.Millisecond)
	test.T(t, *got, []int{1, 2, 3})
}

func TestRateBound(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	// N событий внутри одного интервала дают не больше двух запусков
	for i := 0; i < 50; i++ {
		th.Call(i)
		clock.Add(time.Millisecond)
	}
	clock.Add(time.Second)
	test.T(t, *got, []int{0, 49})
}

func TestCancel(t *testing.T) {
	clock := sched.NewManual(epoch)
	th, got := newThrottle(clock)

	th.Call(1)
	th.Call(2)
	th.Cancel()
	clock.Add(time.Second)
	test.T(t, *got, []int{1})
	test.T(t, th.Interval(), interval)
}

type earlyClock struct {
	*sched.Manual
}

// AfterFunc fires right away, before the interval has elapsed.
func (c earlyClock) AfterFunc(_ time.Duration, f func()) throttle.Timer {
	return c.Manual.AfterFunc(0, f)
}

func TestEarlyTimerIsDropped(t *testing.T) {
	clock := earlyClock{sched.NewManual(epoch)}
	th, got := newThrottle(clock)

	th.Call(1)
	th.Call(2)
	clock.Add(0)
	test.T(t, *got, []int{1})
	test.That(t, !th.Pending())
}
