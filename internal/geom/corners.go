// internal/geom/corners.go
package geom

import "fmt"

// Corners of a rotated rectangle.
type Corners struct {
	TL, TR, BR, BL Point
}

// RectCorners computes the corners of a w×h rectangle whose top-left corner
// sits at origin and which is rotated by angle degrees around that corner.
func RectCorners(origin Point, w, h, angle float64) Corners {
	return Corners{
		TL: origin,
		TR: origin.Add(Point{w, 0}.Rotate(angle)),
		BR: origin.Add(Point{w, h}.Rotate(angle)),
		BL: origin.Add(Point{0, h}.Rotate(angle)),
	}
}

// Ordered returns the corners clockwise starting at the top-left one.
func (c Corners) Ordered() [4]Point {
	return [4]Point{c.TL, c.TR, c.BR, c.BL}
}

// Edges returns the closed loop TL→TR→BR→BL→TL.
func (c Corners) Edges() [4]Segment {
	pts := c.Ordered()
	var edges [4]Segment
	for i, p := range pts {
		edges[i] = Segment{A: p, B: pts[(i+1)%len(pts)]}
	}
	return edges
}

// Center is the intersection of the diagonals.
func (c Corners) Center() Point {
	return c.TL.Add(c.BR).Scale(0.5)
}

// Contains reports whether p lies inside the quadrilateral.
func (c Corners) Contains(p Point) bool {
	pts := c.Ordered()
	return PolygonContains(pts[:], p)
}

func (c Corners) String() string {
	return fmt.Sprintf("tl=%v tr=%v br=%v bl=%v", c.TL, c.TR, c.BR, c.BL)
}
