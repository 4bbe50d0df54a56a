// Package outline keeps a four-segment highlight in step with a shape's
// live corners.
package outline

import (
	"image/color"
	"time"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/event"
	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/logging"
	"go-shape-outline/internal/surface"
	"go-shape-outline/internal/throttle"
)

// Shape is what the synchronizer reads: corners after the latest transform,
// or false when they have not been computed yet.
type Shape interface {
	Corners() (geom.Corners, bool)
}

// Canvas is the part of the surface the synchronizer writes to.
type Canvas interface {
	Add(ds ...surface.Drawable)
	Remove(ds ...surface.Drawable) int
	RequestRenderAll()
}

// Style of the outline segments.
type Style struct {
	Color color.Color
	Width float64
}

// DefaultStyle: красная линия толщиной 5
func DefaultStyle() Style {
	return Style{Color: config.OutlineColor, Width: config.OutlineWidth}
}

type Option func(*Synchronizer)

func WithStyle(st Style) Option {
	return func(s *Synchronizer) { s.style = st }
}

// WithInterval overrides the minimum spacing of throttled passes.
func WithInterval(d time.Duration) Option {
	return func(s *Synchronizer) { s.interval = d }
}

// Synchronizer owns the outline segments of one shape.
type Synchronizer struct {
	shape    Shape
	canvas   Canvas
	style    Style
	interval time.Duration

	segments []*surface.Line
	corners  geom.Corners
	passes   int
	skipped  int

	throttle *throttle.Throttle[event.Event]
}

func New(shape Shape, canvas Canvas, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		shape:    shape,
		canvas:   canvas,
		style:    DefaultStyle(),
		interval: config.ThrottleInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync replaces the outline with one matching the shape's current corners
// and requests a redraw. When the corners are unavailable it changes nothing
// and returns false.
func (s *Synchronizer) Sync() bool {
	corners, ok := s.shape.Corners()
	if !ok {
		s.skipped++
		logging.Logger().Debug("outline skipped, corners not computed")
		return false
	}

	s.clear()

	logging.Logger().Debug("corner coordinates",
		"topLeft", corners.TL,
		"topRight", corners.TR,
		"bottomRight", corners.BR,
		"bottomLeft", corners.BL,
	)

	edges := corners.Edges()
	segments := make([]*surface.Line, 0, len(edges))
	drawables := make([]surface.Drawable, 0, len(edges))
	for _, e := range edges {
		l := surface.NewLine(e.A, e.B, s.style.Color, s.style.Width)
		l.SetSelectable(false)
		l.SetEvented(false)
		segments = append(segments, l)
		drawables = append(drawables, l)
	}
	s.canvas.Add(drawables...)
	s.segments = segments
	s.corners = corners
	s.passes++

	s.canvas.RequestRenderAll()
	return true
}

func (s *Synchronizer) clear() {
	if len(s.segments) == 0 {
		return
	}
	old := make([]surface.Drawable, len(s.segments))
	for i, l := range s.segments {
		old[i] = l
	}
	s.canvas.Remove(old...)
	s.segments = nil
}

// Clear removes the outline from the surface.
func (s *Synchronizer) Clear() {
	s.clear()
	s.canvas.RequestRenderAll()
}

// Segments returns the current outline segments in corner order.
func (s *Synchronizer) Segments() []*surface.Line {
	return append([]*surface.Line(nil), s.segments...)
}

// Corners returns the corners the current outline was built from.
func (s *Synchronizer) Corners() (geom.Corners, bool) {
	return s.corners, len(s.segments) > 0
}

// Passes counts successful Sync calls; Skipped counts the ones without corners.
func (s *Synchronizer) Passes() int  { return s.passes }
func (s *Synchronizer) Skipped() int { return s.skipped }

// OnEvent feeds a transform notification through the throttle. Without
// Attach it syncs directly.
func (s *Synchronizer) OnEvent(e event.Event) {
	if s.throttle == nil {
		s.Sync()
		return
	}
	s.throttle.Call(e)
}

// Attach subscribes the synchronizer to the transform events of d, rate
// limited on clock. The returned function undoes the subscription and drops
// a pending trailing pass.
func (s *Synchronizer) Attach(d *event.Dispatcher, clock throttle.Clock) (detach func()) {
	s.throttle = throttle.New(s.interval, clock, func(e event.Event) {
		logging.Logger().Debug("outline pass", "event", string(e.Type))
		s.Sync()
	})
	subs := d.SubscribeAll(s, event.TransformEvents...)
	th := s.throttle
	return func() {
		for _, sub := range subs {
			d.Unsubscribe(sub)
		}
		th.Cancel()
		if s.throttle == th {
			s.throttle = nil
		}
	}
}
