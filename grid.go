package squishy

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Grid colors, matching the translucent green of the original mockups.
var (
	layerGridColor = ColorGreen.WithAlpha(0.2)
	viewFillColor  = ColorGreen.WithAlpha(0.2)
	viewGridColor  = ColorGreen.WithAlpha(0.6)
)

// drawGrid adds 1-unit grid lines for a rows x cols grid covering the
// rectangle (x, y, w, h), including the outer edges, and fills them with c.
// The right and bottom edge lines are kept inside the rectangle.
func drawGrid(dc *gg.Context, x, y, w, h float64, rows, cols int, c Color) {
	if rows <= 0 || cols <= 0 || w <= 0 || h <= 0 {
		return
	}
	for i := 0; i <= cols; i++ {
		lx := x + w*float64(i)/float64(cols)
		dc.DrawRectangle(min(lx, x+w-1), y, 1, h)
	}
	for i := 0; i <= rows; i++ {
		ly := y + h*float64(i)/float64(rows)
		dc.DrawRectangle(x, min(ly, y+h-1), w, 1)
	}
	dc.SetColor(c.NRGBA())
	dc.Fill()
}

// viewOrigin returns the top-left of the view inside the layer.
func viewOrigin(m Metrics) Vec2 {
	ls := m.LayerSize()
	vs := m.Size()
	return Vec2{(ls.X - vs.X) / 2, (ls.Y - vs.Y) / 2}
}

// RenderLayer rasterizes the undistorted layer: the background layer grid
// with the filled view grid centered on it. The result is LayerSize pixels.
func RenderLayer(m Metrics) image.Image {
	ls := m.LayerSize()
	vs := m.Size()
	dc := gg.NewContext(int(ls.X), int(ls.Y))

	drawGrid(dc, 0, 0, ls.X, ls.Y, m.LayerRows, m.LayerColumns, layerGridColor)

	o := viewOrigin(m)
	dc.DrawRectangle(o.X, o.Y, vs.X, vs.Y)
	dc.SetColor(viewFillColor.NRGBA())
	dc.Fill()
	drawGrid(dc, o.X, o.Y, vs.X, vs.Y, m.Rows, m.Columns, viewGridColor)

	return dc.Image()
}

// NewLayerImage rasterizes the layer and uploads it as an ebiten image.
func NewLayerImage(m Metrics) *ebiten.Image {
	return ebiten.NewImageFromImage(RenderLayer(m))
}
