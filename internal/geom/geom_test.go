package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func pointNear(t *testing.T, got, want Point) {
	t.Helper()
	test.That(t, math.Abs(got.X-want.X) < 1e-9 && math.Abs(got.Y-want.Y) < 1e-9, "got", got, "want", want)
}

func TestRotate(t *testing.T) {
	pointNear(t, Point{10, 0}.Rotate(90), Point{0, 10})
	pointNear(t, Point{10, 0}.Rotate(180), Point{-10, 0})
	pointNear(t, Point{0, 10}.Rotate(-90), Point{10, 0})
	pointNear(t, Point{20, 10}.RotateAround(Point{10, 10}, 90), Point{10, 20})
}

func TestRectCorners(t *testing.T) {
	c := RectCorners(Point{0, 0}, 60, 30, 0)
	pointNear(t, c.TL, Point{0, 0})
	pointNear(t, c.TR, Point{60, 0})
	pointNear(t, c.BR, Point{60, 30})
	pointNear(t, c.BL, Point{0, 30})
	pointNear(t, c.Center(), Point{30, 15})

	c = RectCorners(Point{100, 100}, 60, 30, 90)
	pointNear(t, c.TR, Point{100, 160})
	pointNear(t, c.BR, Point{70, 160})
	pointNear(t, c.BL, Point{70, 100})
}

func TestEdges(t *testing.T) {
	c := RectCorners(Point{0, 0}, 60, 30, 0)
	edges := c.Edges()
	want := [4]Segment{
		{Point{0, 0}, Point{60, 0}},
		{Point{60, 0}, Point{60, 30}},
		{Point{60, 30}, Point{0, 30}},
		{Point{0, 30}, Point{0, 0}},
	}
	for i := range edges {
		pointNear(t, edges[i].A, want[i].A)
		pointNear(t, edges[i].B, want[i].B)
	}
	test.T(t, edges[3].B, edges[0].A)
}

func TestContains(t *testing.T) {
	c := RectCorners(Point{0, 0}, 60, 30, 0)
	test.That(t, c.Contains(Point{30, 15}))
	test.That(t, c.Contains(Point{0, 0}))
	test.That(t, !c.Contains(Point{61, 15}))

	r := RectCorners(Point{0, 0}, 10, 10, 45)
	test.That(t, r.Contains(Point{0, 7}))
	test.That(t, !r.Contains(Point{7, 0}))
	test.That(t, !PolygonContains([]Point{{0, 0}, {1, 1}}, Point{0, 0}))
}

func TestSegmentDistance(t *testing.T) {
	s := Segment{Point{0, 0}, Point{10, 0}}
	test.Float(t, s.DistanceTo(Point{5, 3}), 3)
	test.Float(t, s.DistanceTo(Point{-4, 3}), 5)
	test.Float(t, s.DistanceTo(Point{13, 4}), 5)
	test.Float(t, Segment{Point{1, 1}, Point{1, 1}}.DistanceTo(Point{4, 5}), 5)
}

func TestAngles(t *testing.T) {
	test.That(t, math.Abs(DegToRad(180)-math.Pi) < 1e-12)
	test.That(t, math.Abs(RadToDeg(math.Pi/2)-90) < 1e-12)
}
