// pkg/render/screen/screen.go

// Package screen draws surface primitives into the ebiten window.
package screen

import (
	"image/color"

	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/surface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws surface primitives onto an ebiten image.
type Renderer struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

var _ surface.Renderer = (*Renderer)(nil)

func New() *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 12),
	}
}

// SetTarget selects the image the next calls draw on. Call it every frame.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

func (r *Renderer) Clear(c color.Color) {
	r.target.Fill(c)
}

func (r *Renderer) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := vertexColor(c)
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	r.target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *Renderer) StrokeLine(a, b geom.Point, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(r.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

// vertexColor converts c to the premultiplied components ebiten vertices use.
func vertexColor(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
