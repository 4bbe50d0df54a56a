// Package surface is the retained drawing surface: an ordered set of
// drawables rendered back to front through a Renderer backend.
package surface

import (
	"image/color"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/geom"
)

// ID identifies a drawable while it is attached to a surface.
type ID uint64

// Renderer is the drawing backend (ebiten window or headless raster).
type Renderer interface {
	Clear(c color.Color)
	FillPolygon(pts []geom.Point, c color.Color)
	StrokeLine(a, b geom.Point, width float64, c color.Color)
}

// Drawable is anything that can be placed on a Surface.
type Drawable interface {
	ID() ID
	Selectable() bool
	Evented() bool
	Draw(r Renderer)
	Hit(p geom.Point) bool
	base() *Object
}

// Object holds the state every drawable shares. Embed it.
type Object struct {
	id         ID
	selectable bool
	evented    bool
}

func newObject() Object {
	return Object{selectable: true, evented: true}
}

func (o *Object) ID() ID          { return o.id }
func (o *Object) Selectable() bool { return o.selectable }

// Evented reports whether pointer gestures can target the object.
func (o *Object) Evented() bool        { return o.evented }
func (o *Object) SetSelectable(v bool) { o.selectable = v }
func (o *Object) SetEvented(v bool)    { o.evented = v }
func (o *Object) base() *Object        { return o }

type coordsSetter interface {
	SetCoords()
}

type controlsDrawer interface {
	DrawControls(r Renderer)
}

// Surface is a fixed-size drawing surface.
type Surface struct {
	width, height int
	background    color.Color
	objects       []Drawable
	nextID        ID
	active        Drawable
	renders       int
	dirty         bool
}

// New returns an empty surface of the given pixel size.
func New(width, height int) *Surface {
	return &Surface{
		width:      width,
		height:     height,
		background: config.BackgroundColor,
		nextID:     1,
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// SetBackground changes the clear color used by Render.
func (s *Surface) SetBackground(c color.Color) { s.background = c }

// Add appends drawables on top of the stack. Drawables already on the
// surface are left where they are. Adding a shape computes its coordinates.
func (s *Surface) Add(ds ...Drawable) {
	for _, d := range ds {
		if s.index(d) >= 0 {
			continue
		}
		d.base().id = s.nextID
		s.nextID++
		s.objects = append(s.objects, d)
		if cs, ok := d.(coordsSetter); ok {
			cs.SetCoords()
		}
	}
}

// Remove detaches drawables and returns how many were on the surface.
func (s *Surface) Remove(ds ...Drawable) int {
	removed := 0
	for _, d := range ds {
		i := s.index(d)
		if i < 0 {
			continue
		}
		s.objects = append(s.objects[:i], s.objects[i+1:]...)
		if s.active == d {
			s.active = nil
		}
		removed++
	}
	return removed
}

func (s *Surface) index(d Drawable) int {
	for i, o := range s.objects {
		if o == d {
			return i
		}
	}
	return -1
}

// Contains reports whether d is on the surface.
func (s *Surface) Contains(d Drawable) bool { return s.index(d) >= 0 }

// Objects returns the drawables bottom to top. The slice is a copy.
func (s *Surface) Objects() []Drawable {
	return append([]Drawable(nil), s.objects...)
}

func (s *Surface) Len() int { return len(s.objects) }

// FindTarget returns the topmost evented drawable under p, or nil.
func (s *Surface) FindTarget(p geom.Point) Drawable {
	for i := len(s.objects) - 1; i >= 0; i-- {
		d := s.objects[i]
		if d.Evented() && d.Hit(p) {
			return d
		}
	}
	return nil
}

// SetActive selects d. Pass nil, or an unselectable or detached drawable,
// to clear the selection.
func (s *Surface) SetActive(d Drawable) {
	if d == nil || !d.Selectable() || !s.Contains(d) {
		s.active = nil
		return
	}
	s.active = d
}

func (s *Surface) Active() Drawable { return s.active }

// RequestRenderAll marks the whole surface for redraw.
func (s *Surface) RequestRenderAll() {
	s.renders++
	s.dirty = true
}

// Dirty reports whether a redraw was requested since the last Render.
func (s *Surface) Dirty() bool { return s.dirty }

// RenderCount returns how many redraws have been requested.
func (s *Surface) RenderCount() int { return s.renders }

// Render draws every object bottom to top, then the selection controls.
func (s *Surface) Render(r Renderer) {
	r.Clear(s.background)
	for _, d := range s.objects {
		d.Draw(r)
	}
	if cd, ok := s.active.(controlsDrawer); ok {
		cd.DrawControls(r)
	}
	s.dirty = false
}
