// internal/surface/line.go
package surface

import (
	"image/color"
	"math"

	"go-shape-outline/internal/geom"
)

// Line is a straight stroked segment.
type Line struct {
	Object
	A, B        geom.Point
	Stroke      color.Color
	StrokeWidth float64
}

// NewLine returns a selectable, evented line; decorations switch both off.
func NewLine(a, b geom.Point, stroke color.Color, width float64) *Line {
	return &Line{
		Object:      newObject(),
		A:           a,
		B:           b,
		Stroke:      stroke,
		StrokeWidth: width,
	}
}

func (l *Line) Segment() geom.Segment { return geom.Segment{A: l.A, B: l.B} }

func (l *Line) Draw(r Renderer) {
	if l.StrokeWidth <= 0 || l.Stroke == nil {
		return
	}
	r.StrokeLine(l.A, l.B, l.StrokeWidth, l.Stroke)
}

func (l *Line) Hit(p geom.Point) bool {
	return l.Segment().DistanceTo(p) <= math.Max(l.StrokeWidth/2, 1)
}
