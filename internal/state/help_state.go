// internal/state/help_state.go
package state

import (
	"go-shape-outline/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что HelpState соответствует интерфейсу State
var _ State = (*HelpState)(nil)

var helpLines = []string{
	"drag shape        move",
	"drag top handle   rotate",
	"arrows            nudge (shift: x10)",
	"Q / E             rotate -15 / +15",
	"O                 force outline sync",
	"H                 toggle corner panel",
	"F1 / Esc          close help",
}

// HelpState shows the key bindings over the frozen canvas.
type HelpState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewHelpState(sm *StateMachine, prevState State) *HelpState {
	return &HelpState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *HelpState) Enter() {}
func (s *HelpState) Exit()  {}

func (s *HelpState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *HelpState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	const (
		width  = 320
		margin = 12
	)
	height := float32(len(helpLines)*config.PanelLineGap + margin*2)
	x := float32(screen.Bounds().Dx()-width) / 2
	y := float32(config.PanelY)

	vector.DrawFilledRect(screen, x, y, width, height, config.OutlineColor, false)
	vector.DrawFilledRect(screen, x+2, y+2, width-4, height-4, config.TextDarkColor, false)
	ty := int(y) + margin + 11
	for _, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, int(x)+margin, ty, config.PanelTextColor)
		ty += config.PanelLineGap
	}
}
