// internal/app/scene.go
package app

import (
	"go-shape-outline/internal/config"
	"go-shape-outline/internal/interaction"
	"go-shape-outline/internal/logging"
	"go-shape-outline/internal/outline"
	"go-shape-outline/internal/surface"
	"go-shape-outline/internal/throttle"
)

// Scene связывает поверхность, прямоугольник, его контур и обработчик жестов
type Scene struct {
	Surface    *surface.Surface
	Shape      *surface.Rect
	Outline    *outline.Synchronizer
	Controller *interaction.Controller

	detach func()
}

// NewScene builds the surface from cfg, draws the initial outline without
// throttling, and routes later transform events through clock.
func NewScene(cfg config.Config, clock throttle.Clock) *Scene {
	s := surface.New(cfg.Width, cfg.Height)
	rect := surface.NewRect(cfg.Rect)
	s.Add(rect)

	sync := outline.New(rect, s,
		outline.WithStyle(outline.Style{Color: cfg.OutlineColor, Width: cfg.OutlineWidth}),
		outline.WithInterval(cfg.ThrottleInterval),
	)
	detach := sync.Attach(rect.Events(), clock)
	sync.Sync()

	ctrl := interaction.NewController(s, rect)
	ctrl.SnapAngle = cfg.SnapAngle
	ctrl.SnapThreshold = cfg.SnapThreshold

	logging.Logger().Info("scene ready",
		"width", cfg.Width,
		"height", cfg.Height,
		"rect", rect.Transform().Corners.String(),
		"throttle", cfg.ThrottleInterval,
	)
	return &Scene{
		Surface:    s,
		Shape:      rect,
		Outline:    sync,
		Controller: ctrl,
		detach:     detach,
	}
}

// Close unsubscribes the outline from the shape.
func (sc *Scene) Close() {
	if sc.detach != nil {
		sc.detach()
		sc.detach = nil
	}
}
