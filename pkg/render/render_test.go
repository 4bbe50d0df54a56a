package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"go-shape-outline/internal/config"
	"go-shape-outline/internal/geom"
	"go-shape-outline/internal/outline"
	"go-shape-outline/internal/surface"

	"github.com/tdewolff/test"
)

func TestRasterStrokeLine(t *testing.T) {
	r := NewRasterRenderer(100, 50)
	r.Clear(color.White)
	r.StrokeLine(geom.Point{X: 10, Y: 10}, geom.Point{X: 60, Y: 10}, 5, config.OutlineColor)
	r.StrokeLine(geom.Point{X: 10, Y: 40}, geom.Point{X: 60, Y: 40}, 0, config.OutlineColor)

	img := r.Image()
	test.T(t, img.RGBAAt(35, 10), config.OutlineColor)
	test.T(t, img.RGBAAt(35, 30), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(35, 40), color.RGBA{255, 255, 255, 255}, "zero width draws nothing")
}

func TestRasterFillPolygon(t *testing.T) {
	r := NewRasterRenderer(50, 50)
	r.Clear(color.White)
	r.FillPolygon([]geom.Point{{X: 10, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: 40}, {X: 10, Y: 40}}, color.Black)
	r.FillPolygon([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, color.Black)

	img := r.Image()
	test.T(t, img.RGBAAt(25, 25), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(5, 45), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(2, 2), color.RGBA{255, 255, 255, 255})
}

func TestRasterSurface(t *testing.T) {
	s := surface.New(200, 200)
	rect := surface.NewRect(config.Default().Rect)
	s.Add(rect)
	outline.New(rect, s).Sync()

	r := NewRasterRenderer(s.Width(), s.Height())
	s.Render(r)
	img := r.Image()
	test.T(t, img.RGBAAt(130, 115), config.RectFillColor, "rectangle body")
	test.T(t, img.RGBAAt(130, 100), config.OutlineColor, "top outline segment")
	test.T(t, img.RGBAAt(160, 115), config.OutlineColor, "right outline segment")
	test.T(t, img.RGBAAt(20, 20), config.BackgroundColor)

	var buf bytes.Buffer
	test.Error(t, r.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	test.Error(t, err)
	test.T(t, decoded.Bounds().Dx(), 200)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	test.Error(t, err)
	test.T(t, c, color.RGBA{255, 0, 0, 255})

	c, err = ParseHex("#b2ccff80")
	test.Error(t, err)
	test.T(t, c, color.RGBA{178, 204, 255, 128})

	_, err = ParseHex("red")
	test.That(t, err != nil)
	_, err = ParseHex("#gg0000")
	test.That(t, err != nil)
}

func TestDarkenColor(t *testing.T) {
	test.T(t, DarkenColor(color.RGBA{200, 100, 50, 255}), color.RGBA{100, 50, 25, 255})
}
