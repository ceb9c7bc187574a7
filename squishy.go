package squishy

import (
	"fmt"
	"image/color"
	"strings"
)

// Vec2 is a 2D vector used for pointer locations, tracked positions and
// control vectors throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// NRGBA converts the color to a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
		A: unitToByte(c.A),
	}
}

// WithAlpha returns a copy of c with A replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Palette colors used by the grid and overlay.
var (
	ColorGreen = Color{R: 0.20, G: 0.78, B: 0.35, A: 1}
	ColorBlue  = Color{R: 0.0, G: 0.48, B: 1.0, A: 1}
	ColorGray  = Color{R: 0.56, G: 0.56, B: 0.58, A: 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// Metrics describes the static grid layout: a view of Rows x Columns cells
// nested in the middle of a larger layer of LayerRows x LayerColumns cells.
// All cells share the same size.
type Metrics struct {
	Rows, Columns           int
	CellW, CellH            float64
	LayerRows, LayerColumns int
}

// DefaultMetrics is an 8x12 cell view at 20x20 units inside a 24x18 cell layer.
var DefaultMetrics = Metrics{
	Rows:         8,
	Columns:      12,
	CellW:        20,
	CellH:        20,
	LayerRows:    24,
	LayerColumns: 18,
}

// Size returns the width and height of the inner view.
func (m Metrics) Size() Vec2 {
	return Vec2{float64(m.Columns) * m.CellW, float64(m.Rows) * m.CellH}
}

// LayerSize returns the width and height of the background layer.
func (m Metrics) LayerSize() Vec2 {
	return Vec2{float64(m.LayerColumns) * m.CellW, float64(m.LayerRows) * m.CellH}
}

// LayerCenter returns the center of the layer in layer-local coordinates.
func (m Metrics) LayerCenter() Vec2 {
	s := m.LayerSize()
	return Vec2{s.X / 2, s.Y / 2}
}

// Curve selects the falloff variant of the squish shader. The value is
// forwarded to the renderer as-is; only the shader interprets it.
type Curve uint8

const (
	CurveLinear   Curve = iota // falloff decreases linearly with distance
	CurveCubic                 // smooth cubic falloff
	CurveGaussian              // bell-shaped falloff
	curveCount
)

var curveNames = [curveCount]string{"linear", "cubic", "gaussian"}

// String returns the lowercase name of the curve.
func (c Curve) String() string {
	if c < curveCount {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", uint8(c))
}

// Next returns the curve after c, wrapping around.
func (c Curve) Next() Curve {
	return (c + 1) % curveCount
}

// ParseCurve returns the curve with the given name (case-insensitive).
func ParseCurve(name string) (Curve, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return CurveLinear, fmt.Errorf("unknown curve %q", name)
}
