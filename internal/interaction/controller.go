// Package interaction turns pointer and keyboard input into drag and
// rotate gestures on the rectangle, and fires its transform events.
package interaction

import (
	"math"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/event"
	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/logging"
	"go-shape-outline/internal/surface"
	"go-shape-outline/internal/utils"
)

// Mode is the gesture in progress.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Rotating
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Rotating:
		return "rotating"
	default:
		return "idle"
	}
}

// Controller обрабатывает жесты над одной фигурой
type Controller struct {
	surface *surface.Surface
	shape   *surface.Rect

	// SnapAngle snaps rotation to multiples of this many degrees when the
	// angle is within SnapThreshold of one. Zero disables snapping.
	SnapAngle     float64
	SnapThreshold float64

	mode    Mode
	changed bool

	dragOffset   geom.Point // указатель минус левый верхний угол
	pivot        geom.Point // центр фигуры в начале вращения
	startAngle   float64
	startPointer float64 // угол указателя относительно центра, в градусах
}

func NewController(s *surface.Surface, shape *surface.Rect) *Controller {
	return &Controller{
		surface:       s,
		shape:         shape,
		SnapThreshold: config.SnapThreshold,
	}
}

func (c *Controller) Mode() Mode { return c.mode }

// fire redraws the moved shape and notifies its listeners.
func (c *Controller) fire(t event.EventType) {
	c.surface.RequestRenderAll()
	c.shape.Events().Dispatch(event.Event{Type: t, Data: c.shape.Transform()})
}

// PointerDown starts a gesture. On the active shape's rotation control it
// starts rotating; on the shape body it selects the shape and starts
// dragging; elsewhere it clears the selection.
func (c *Controller) PointerDown(p geom.Point) {
	c.changed = false
	if c.surface.Active() == surface.Drawable(c.shape) && c.shape.HitRotateHandle(p) {
		c.mode = Rotating
		c.pivot = c.shape.Center()
		c.startAngle = c.shape.Angle
		c.startPointer = pointerAngle(c.pivot, p)
		return
	}

	target := c.surface.FindTarget(p)
	if target != surface.Drawable(c.shape) {
		c.surface.SetActive(nil)
		c.mode = Idle
		c.surface.RequestRenderAll()
		return
	}
	c.surface.SetActive(c.shape)
	c.mode = Dragging
	c.dragOffset = p.Sub(geom.Point{X: c.shape.Left, Y: c.shape.Top})
	c.surface.RequestRenderAll()
}

// PointerMove continues the current gesture.
func (c *Controller) PointerMove(p geom.Point) {
	switch c.mode {
	case Dragging:
		left, top := p.X-c.dragOffset.X, p.Y-c.dragOffset.Y
		if left == c.shape.Left && top == c.shape.Top {
			return
		}
		c.shape.MoveTo(left, top)
		c.changed = true
		c.fire(event.ShapeMoving)
	case Rotating:
		angle := c.startAngle + pointerAngle(c.pivot, p) - c.startPointer
		angle = utils.NormalizeDegrees(utils.SnapAngle(angle, c.SnapAngle, c.SnapThreshold))
		if angle == c.shape.Angle {
			return
		}
		c.shape.SetAngle(angle)
		c.changed = true
		c.fire(event.ShapeRotating)
	}
}

// PointerUp ends the gesture; a gesture that changed the shape fires
// ShapeModified.
func (c *Controller) PointerUp(p geom.Point) {
	if c.mode == Idle {
		return
	}
	c.PointerMove(p)
	mode := c.mode
	c.mode = Idle
	if c.changed {
		logging.Logger().Debug("gesture finished", "mode", mode.String(), "left", c.shape.Left, "top", c.shape.Top, "angle", c.shape.Angle)
		c.fire(event.ShapeModified)
	}
	c.changed = false
}

// Nudge moves the shape by (dx, dy) as one complete gesture.
func (c *Controller) Nudge(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.shape.MoveBy(dx, dy)
	c.fire(event.ShapeMoving)
	c.fire(event.ShapeModified)
}

// RotateBy rotates the shape around its center as one complete gesture.
func (c *Controller) RotateBy(deg float64) {
	if deg == 0 {
		return
	}
	c.shape.SetAngle(c.shape.Angle + deg)
	c.fire(event.ShapeRotating)
	c.fire(event.ShapeModified)
}

// pointerAngle is the screen-space angle of p around center, in degrees.
// Zero points up, matching the rotation control's rest position.
func pointerAngle(center, p geom.Point) float64 {
	return geom.RadToDeg(math.Atan2(p.Y-center.Y, p.X-center.X)) + 90
}
