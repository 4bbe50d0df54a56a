// internal/ui/corner_panel.go
package ui

import (
	"fmt"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/geom"
	"go-shape-outline/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const panelPadding = 8

// CornerPanel shows the corners the outline was last built from.
type CornerPanel struct {
	X, Y      float32
	Width     float32
	IsVisible bool
	fontFace  font.Face
}

func NewCornerPanel(x, y, width float32) *CornerPanel {
	return &CornerPanel{
		X:         x,
		Y:         y,
		Width:     width,
		IsVisible: true,
		fontFace:  basicfont.Face7x13,
	}
}

// Toggle shows or hides the panel.
func (p *CornerPanel) Toggle() { p.IsVisible = !p.IsVisible }

func formatCorner(name string, pt geom.Point) string {
	return fmt.Sprintf("%-12s %8.1f %8.1f", name, pt.X, pt.Y)
}

func (p *CornerPanel) lines(corners geom.Corners, ok bool, passes int) []string {
	if !ok {
		return []string{"corners: n/a", fmt.Sprintf("passes: %d", passes)}
	}
	return []string{
		formatCorner("topLeft", corners.TL),
		formatCorner("topRight", corners.TR),
		formatCorner("bottomRight", corners.BR),
		formatCorner("bottomLeft", corners.BL),
		fmt.Sprintf("passes: %d", passes),
	}
}

func (p *CornerPanel) Draw(screen *ebiten.Image, corners geom.Corners, ok bool, passes int) {
	if !p.IsVisible {
		return
	}
	lines := p.lines(corners, ok, passes)
	height := float32(len(lines)*config.PanelLineGap + panelPadding*2)

	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, height, config.PanelBgColor, true)
	vector.StrokeRect(screen, p.X, p.Y, p.Width, height, 1, render.DarkenColor(config.BorderColor), true)

	x := int(p.X) + panelPadding
	y := int(p.Y) + panelPadding + 11 // базовая линия шрифта 7x13
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, x, y, config.PanelTextColor)
		y += config.PanelLineGap
	}
}
