package squishy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultRadius is the distance from the anchor at which the squish falls
// off completely. It matches the radius of the drag circle.
const DefaultRadius = 180

// --- Kage shader sources ---
// Each curve compiles to its own program: the shared head and body are
// joined around a curve-specific falloff function.

const squishShaderHead = `//kage:unit pixels
package main

var LayerCenter vec2
var AnchorPoint vec2
var Control vec2
var Multiplier float
var Radius float
`

const squishShaderBody = `
func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	p := src - origin

	// Weight by distance from the anchor, then pin the layer edges so the
	// border stays in place.
	w := falloff(distance(p, AnchorPoint) / Radius)
	edge := abs(p-LayerCenter) / LayerCenter
	w *= clamp(1-max(edge.x, edge.y), 0, 1)

	s := p - Control*w*Multiplier
	if s.x < 0 || s.y < 0 || s.x >= size.x || s.y >= size.y {
		return vec4(0)
	}
	return imageSrc0At(s + origin)
}
`

var falloffSources = [curveCount]string{
	CurveLinear: `
func falloff(t float) float {
	return clamp(1-t, 0, 1)
}
`,
	CurveCubic: `
func falloff(t float) float {
	s := clamp(1-t, 0, 1)
	return s * s * (3 - 2*s)
}
`,
	CurveGaussian: `
func falloff(t float) float {
	return exp(-4 * t * t)
}
`,
}

// squishShaderSource returns the Kage source for the given curve. Unknown
// curves fall back to linear.
func squishShaderSource(c Curve) string {
	if c >= curveCount {
		c = CurveLinear
	}
	return squishShaderHead + falloffSources[c] + squishShaderBody
}

// --- Lazy shader compilation (single-threaded, no sync.Once) ---

var squishShaders [curveCount]*ebiten.Shader

func ensureSquishShader(c Curve) *ebiten.Shader {
	if c >= curveCount {
		c = CurveLinear
	}
	if squishShaders[c] == nil {
		s, err := ebiten.NewShader([]byte(squishShaderSource(c)))
		if err != nil {
			panic("squishy: failed to compile " + c.String() + " squish shader: " + err.Error())
		}
		squishShaders[c] = s
	}
	return squishShaders[c]
}

// SquishFilter renders a layer through the squish shader selected by
// Params.Curve. Set Params each frame before Apply.
type SquishFilter struct {
	Params Params
	Radius float64

	uniforms    map[string]any
	layerCenter []float32
	anchorPoint []float32
	control     []float32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewSquishFilter creates a squish filter with the given falloff radius.
func NewSquishFilter(radius float64) *SquishFilter {
	return &SquishFilter{
		Radius:      radius,
		uniforms:    make(map[string]any, 5),
		layerCenter: make([]float32, 2),
		anchorPoint: make([]float32, 2),
		control:     make([]float32, 2),
	}
}

// updateUniforms copies Params into the persistent uniform buffers.
func (f *SquishFilter) updateUniforms() map[string]any {
	p := f.Params
	f.layerCenter[0], f.layerCenter[1] = float32(p.LayerCenter.X), float32(p.LayerCenter.Y)
	f.anchorPoint[0], f.anchorPoint[1] = float32(p.AnchorPoint.X), float32(p.AnchorPoint.Y)
	f.control[0], f.control[1] = float32(p.Control.X), float32(p.Control.Y)
	f.uniforms["LayerCenter"] = f.layerCenter
	f.uniforms["AnchorPoint"] = f.anchorPoint
	f.uniforms["Control"] = f.control
	f.uniforms["Multiplier"] = float32(p.Multiplier)
	f.uniforms["Radius"] = float32(f.Radius)
	return f.uniforms
}

// Apply renders src into dst through the squish shader.
func (f *SquishFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureSquishShader(f.Params.Curve)
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.updateUniforms()
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}
