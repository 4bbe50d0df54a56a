// pkg/render/raster.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/surface"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// RasterRenderer renders the surface offscreen into an RGBA image.
type RasterRenderer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

var _ surface.Renderer = (*RasterRenderer)(nil)

func NewRasterRenderer(width, height int) *RasterRenderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// отдельные сканеры, чтобы заливка и обводка не делили состояние
	return &RasterRenderer{
		img:    img,
		filler: rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		dasher: rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
	}
}

// Image returns the rendered picture.
func (r *RasterRenderer) Image() *image.RGBA { return r.img }

func (r *RasterRenderer) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}

func (r *RasterRenderer) FillPolygon(pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r.filler.Clear()
	r.filler.SetColor(c)
	r.filler.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		r.filler.Line(toFixed(p))
	}
	r.filler.Stop(true)
	r.filler.Draw()
}

func (r *RasterRenderer) StrokeLine(a, b geom.Point, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	r.dasher.SetColor(c)
	r.dasher.Start(toFixed(a))
	r.dasher.Line(toFixed(b))
	r.dasher.Stop(false)
	r.dasher.Draw()
}

// EncodePNG writes the rendered image as PNG.
func (r *RasterRenderer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
