package event

import (
	"testing"

	"github.com/tdewolff/test"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ShapeMoving, r)

	d.Dispatch(Event{Type: ShapeMoving, Data: 1})
	d.Dispatch(Event{Type: ShapeRotating, Data: 2})
	test.T(t, len(r.events), 1)
	test.T(t, r.events[0].Data, 1)
}

func TestUnsubscribeFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	sub := d.Subscribe(ShapeModified, f)
	other := d.Subscribe(ShapeModified, f)

	d.Dispatch(Event{Type: ShapeModified})
	test.T(t, calls, 2)

	d.Unsubscribe(sub)
	d.Dispatch(Event{Type: ShapeModified})
	test.T(t, calls, 3)
	test.T(t, d.Count(ShapeModified), 1)

	d.Unsubscribe(other)
	d.Unsubscribe(other)
	test.T(t, d.Count(ShapeModified), 0)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	subs := d.SubscribeAll(r, TransformEvents...)
	test.T(t, len(subs), 3)
	for _, typ := range TransformEvents {
		d.Dispatch(Event{Type: typ})
	}
	test.T(t, len(r.events), 3)
	test.T(t, r.events[2].Type, ShapeModified)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var sub Subscription
	sub = d.Subscribe(ShapeMoving, ListenerFunc(func(Event) {
		calls++
		d.Unsubscribe(sub)
	}))
	d.Subscribe(ShapeMoving, ListenerFunc(func(Event) { calls++ }))

	d.Dispatch(Event{Type: ShapeMoving})
	d.Dispatch(Event{Type: ShapeMoving})
	test.T(t, calls, 3)
}
