// internal/event/types.go
package event

import "go-shape-outline/internal/geom"

const (
	ShapeMoving   EventType = "ShapeMoving"   // фигуру тащат
	ShapeRotating EventType = "ShapeRotating" // фигуру вращают
	ShapeModified EventType = "ShapeModified" // жест завершён (drag, rotate, nudge)
)

// TransformEvents lists every notification that changes a shape's geometry.
var TransformEvents = []EventType{ShapeMoving, ShapeRotating, ShapeModified}

// TransformData is the payload of the transform events.
type TransformData struct {
	Target  uint64
	Left    float64
	Top     float64
	Angle   float64
	Corners geom.Corners
}
