package squishy

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// blendMultiply is source * destination; it only darkens.
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

const (
	centerMarkDiameter = 10
	dotDiameter        = 5
	dragDash           = 5
)

// strokeRect strokes a 1-unit rectangle with its outer edge on the image
// bounds.
func strokeRect(dc *gg.Context, w, h float64, c Color) {
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	dc.SetLineWidth(1)
	dc.SetColor(c.NRGBA())
	dc.Stroke()
}

// RenderLayerBorder draws the outline around the distorted layer.
func RenderLayerBorder(m Metrics) image.Image {
	ls := m.LayerSize()
	dc := gg.NewContext(int(ls.X), int(ls.Y))
	strokeRect(dc, ls.X, ls.Y, ColorGreen.WithAlpha(0.2))
	return dc.Image()
}

// RenderViewGuide draws the undistorted view outline with its grid and a
// small circle marking the center.
func RenderViewGuide(m Metrics) image.Image {
	vs := m.Size()
	dc := gg.NewContext(int(vs.X), int(vs.Y))
	drawGrid(dc, 0, 0, vs.X, vs.Y, m.Rows, m.Columns, ColorGray.WithAlpha(0.2))
	strokeRect(dc, vs.X, vs.Y, ColorGray.WithAlpha(0.5))

	dc.DrawCircle(vs.X/2, vs.Y/2, centerMarkDiameter/2)
	dc.SetLineWidth(1)
	dc.SetColor(ColorGray.NRGBA())
	dc.Stroke()
	return dc.Image()
}

// RenderTargetFrame draws the view-sized outline that follows the control
// point.
func RenderTargetFrame(m Metrics) image.Image {
	vs := m.Size()
	dc := gg.NewContext(int(vs.X), int(vs.Y))
	strokeRect(dc, vs.X, vs.Y, ColorBlue.WithAlpha(0.5))
	return dc.Image()
}

// RenderDragPoint draws the drag handle: a dashed circle of the given radius
// with a faint fill and a solid dot in the middle. The image is 2*radius+2
// pixels square so the stroke is not clipped.
func RenderDragPoint(radius float64) image.Image {
	size := int(2*radius) + 2
	c := float64(size) / 2
	dc := gg.NewContext(size, size)

	dc.DrawCircle(c, c, radius)
	dc.SetColor(ColorBlue.WithAlpha(0.02).NRGBA())
	dc.Fill()

	dc.DrawCircle(c, c, radius)
	dc.SetDash(dragDash)
	dc.SetLineCapRound()
	dc.SetLineWidth(1)
	dc.SetColor(ColorBlue.WithAlpha(0.5).NRGBA())
	dc.Stroke()
	dc.SetDash()

	dc.DrawCircle(c, c, dotDiameter/2.0)
	dc.SetColor(ColorBlue.WithAlpha(0.8).NRGBA())
	dc.Fill()
	return dc.Image()
}

// Overlay holds the pre-rendered guides drawn above the distorted layer.
type Overlay struct {
	border *ebiten.Image
	guide  *ebiten.Image
	target *ebiten.Image
	handle *ebiten.Image

	op ebiten.DrawImageOptions
}

// NewOverlay rasterizes all guides for the given metrics and handle radius.
func NewOverlay(m Metrics, radius float64) *Overlay {
	return &Overlay{
		border: ebiten.NewImageFromImage(RenderLayerBorder(m)),
		guide:  ebiten.NewImageFromImage(RenderViewGuide(m)),
		target: ebiten.NewImageFromImage(RenderTargetFrame(m)),
		handle: ebiten.NewImageFromImage(RenderDragPoint(radius)),
	}
}

// Draw renders the guides. center is the container center and pos the
// control point, both in screen coordinates.
func (o *Overlay) Draw(screen *ebiten.Image, center, pos Vec2) {
	o.drawCentered(screen, o.border, center, ebiten.BlendSourceOver)
	o.drawCentered(screen, o.guide, center, blendMultiply)
	o.drawCentered(screen, o.target, pos, blendMultiply)
	o.drawCentered(screen, o.handle, pos, blendMultiply)
}

func (o *Overlay) drawCentered(screen, img *ebiten.Image, at Vec2, blend ebiten.Blend) {
	b := img.Bounds()
	o.op.GeoM.Reset()
	o.op.GeoM.Translate(at.X-float64(b.Dx())/2, at.Y-float64(b.Dy())/2)
	o.op.Blend = blend
	screen.DrawImage(img, &o.op)
}
