// internal/state/canvas_state.go
package state

import (
	"go-shape-outline/internal/app"
	"go-shape-outline/internal/config"
	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/logging"
	"go-shape-outline/internal/sched"
	"go-shape-outline/internal/ui"
	"go-shape-outline/pkg/render/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*CanvasState)(nil)

// CanvasState is the main state: the surface with its rectangle.
type CanvasState struct {
	sm       *StateMachine
	scene    *app.Scene
	loop     *sched.Loop
	renderer *screen.Renderer
	panel    *ui.CornerPanel
	lastPos  geom.Point
}

// NewCanvasState wires window input to scene. loop must be the clock the
// scene was built with; its timers fire from Update.
func NewCanvasState(sm *StateMachine, scene *app.Scene, loop *sched.Loop) *CanvasState {
	return &CanvasState{
		sm:       sm,
		scene:    scene,
		loop:     loop,
		renderer: screen.New(),
		panel:    ui.NewCornerPanel(config.PanelX, config.PanelY, config.PanelWidth),
	}
}

func (s *CanvasState) Enter() {
	// экран не очищается между кадрами, поэтому после возврата перерисовываем всё
	s.scene.Surface.RequestRenderAll()
}

func (s *CanvasState) Exit() {}

func (s *CanvasState) Update(deltaTime float64) {
	s.loop.Advance()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.sm.SetState(NewHelpState(s.sm, s))
		return
	}

	s.handlePointer()
	s.handleKeys()
}

func (s *CanvasState) handlePointer() {
	x, y := ebiten.CursorPosition()
	p := geom.Point{X: float64(x), Y: float64(y)}
	ctrl := s.scene.Controller

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ctrl.PointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ctrl.PointerUp(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && p != s.lastPos:
		ctrl.PointerMove(p)
	}
	s.lastPos = p
}

func (s *CanvasState) handleKeys() {
	ctrl := s.scene.Controller
	step := config.NudgeStep
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = config.NudgeStepFast
	}

	var dx, dy float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	ctrl.Nudge(dx, dy)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		ctrl.RotateBy(-config.RotateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		ctrl.RotateBy(config.RotateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.panel.Toggle()
		s.scene.Surface.RequestRenderAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		// ручная синхронизация, в обход throttle
		if !s.scene.Outline.Sync() {
			logging.Logger().Warn("outline sync skipped")
		}
	}
}

// Draw repaints only after a redraw request; the window keeps the previous
// frame otherwise.
func (s *CanvasState) Draw(target *ebiten.Image) {
	if !s.scene.Surface.Dirty() {
		return
	}
	s.renderer.SetTarget(target)
	s.scene.Surface.Render(s.renderer)
	corners, ok := s.scene.Outline.Corners()
	s.panel.Draw(target, corners, ok, s.scene.Outline.Passes())
}
