// internal/surface/rect.go
package surface

import (
	"image/color"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/event"
	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/utils"
)

// Rect is the interactive rectangle. Left/Top is the top-left corner before
// rotation, which is also the pivot of Angle (degrees, clockwise).
type Rect struct {
	Object
	Left, Top     float64
	Width, Height float64
	Angle         float64
	StrokeWidth   float64
	Fill          color.Color
	Stroke        color.Color

	// HandleOffset is the distance of the rotation control above the top edge.
	HandleOffset float64

	corners     geom.Corners
	coordsValid bool
	events      *event.Dispatcher
}

// NewRect builds a rectangle from its configuration. Its corner cache stays
// empty until SetCoords runs, which Surface.Add does.
func NewRect(cfg config.RectConfig) *Rect {
	return &Rect{
		Object:       newObject(),
		Left:         cfg.Left,
		Top:          cfg.Top,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Angle:        cfg.Angle,
		StrokeWidth:  cfg.StrokeWidth,
		Fill:         cfg.Fill,
		Stroke:       config.RectStrokeColor,
		HandleOffset: config.RotateHandleOffset,
		events:       event.NewDispatcher(),
	}
}

// Events carries the transform notifications of this shape.
func (r *Rect) Events() *event.Dispatcher { return r.events }

// outer size includes the stroke, as the hit box and corners do
func (r *Rect) outerSize() (float64, float64) {
	return r.Width + r.StrokeWidth, r.Height + r.StrokeWidth
}

func (r *Rect) geometry() geom.Corners {
	w, h := r.outerSize()
	return geom.RectCorners(geom.Point{X: r.Left, Y: r.Top}, w, h, r.Angle)
}

// SetCoords recomputes the corner cache from the current transform.
func (r *Rect) SetCoords() {
	r.corners = r.geometry()
	r.coordsValid = true
}

// Invalidate drops the corner cache; Corners reports false until SetCoords.
func (r *Rect) Invalidate() {
	r.coordsValid = false
}

// Corners returns the cached corners and whether the cache is computed.
func (r *Rect) Corners() (geom.Corners, bool) {
	return r.corners, r.coordsValid
}

// Center is the rotation-invariant middle of the rectangle.
func (r *Rect) Center() geom.Point {
	return r.geometry().Center()
}

// MoveTo places the top-left corner at (left, top).
func (r *Rect) MoveTo(left, top float64) {
	r.Left, r.Top = left, top
	r.SetCoords()
}

func (r *Rect) MoveBy(dx, dy float64) {
	r.MoveTo(r.Left+dx, r.Top+dy)
}

// SetAngle rotates the rectangle around its center.
func (r *Rect) SetAngle(angle float64) {
	center := r.Center()
	w, h := r.outerSize()
	r.Angle = utils.NormalizeDegrees(angle)
	origin := center.Sub(geom.Point{X: w / 2, Y: h / 2}.Rotate(r.Angle))
	r.Left, r.Top = origin.X, origin.Y
	r.SetCoords()
}

// Transform snapshots the state carried by transform events.
func (r *Rect) Transform() event.TransformData {
	corners, _ := r.Corners()
	return event.TransformData{
		Target:  uint64(r.ID()),
		Left:    r.Left,
		Top:     r.Top,
		Angle:   r.Angle,
		Corners: corners,
	}
}

// Hit uses the cached corners, so a shape without coordinates can't be hit.
func (r *Rect) Hit(p geom.Point) bool {
	if !r.coordsValid {
		return false
	}
	return r.corners.Contains(p)
}

// topMiddle is the middle of the top edge.
func (r *Rect) topMiddle() geom.Point {
	w, _ := r.outerSize()
	return geom.Point{X: r.Left, Y: r.Top}.Add(geom.Point{X: w / 2}.Rotate(r.Angle))
}

// RotateHandle returns the position of the rotation control.
func (r *Rect) RotateHandle() geom.Point {
	w, _ := r.outerSize()
	return geom.Point{X: r.Left, Y: r.Top}.Add(geom.Point{X: w / 2, Y: -r.HandleOffset}.Rotate(r.Angle))
}

// HitRotateHandle reports whether p is on the rotation control.
func (r *Rect) HitRotateHandle(p geom.Point) bool {
	return p.Dist(r.RotateHandle()) <= config.ControlSize/2
}

func (r *Rect) Draw(rd Renderer) {
	half := r.StrokeWidth / 2
	body := geom.RectCorners(
		geom.Point{X: r.Left, Y: r.Top}.Add(geom.Point{X: half, Y: half}.Rotate(r.Angle)),
		r.Width, r.Height, r.Angle,
	)
	pts := body.Ordered()
	if r.Fill != nil {
		rd.FillPolygon(pts[:], r.Fill)
	}
	if r.StrokeWidth > 0 && r.Stroke != nil {
		for _, e := range body.Edges() {
			rd.StrokeLine(e.A, e.B, r.StrokeWidth, r.Stroke)
		}
	}
}

// DrawControls draws the selection border, corner squares and the
// rotation control.
func (r *Rect) DrawControls(rd Renderer) {
	c := r.geometry()
	for _, e := range c.Edges() {
		rd.StrokeLine(e.A, e.B, config.BorderWidth, config.BorderColor)
	}
	rd.StrokeLine(r.topMiddle(), r.RotateHandle(), config.BorderWidth, config.BorderColor)
	pts := c.Ordered()
	for _, p := range append(pts[:], r.RotateHandle()) {
		sq := controlSquare(p, r.Angle)
		rd.FillPolygon(sq[:], config.ControlColor)
	}
}

func controlSquare(center geom.Point, angle float64) [4]geom.Point {
	s := config.ControlSize
	origin := center.Sub(geom.Point{X: s / 2, Y: s / 2}.Rotate(angle))
	return geom.RectCorners(origin, s, s, angle).Ordered()
}
