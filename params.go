package squishy

// Anchors holds the fixed points of the distortion, in layer coordinates.
type Anchors struct {
	LayerCenter Vec2
	AnchorPoint Vec2
}

// DefaultAnchors places both the layer center and the anchor point at the
// center of the layer.
func DefaultAnchors(m Metrics) Anchors {
	c := m.LayerCenter()
	return Anchors{LayerCenter: c, AnchorPoint: c}
}

// Tuning holds the user-adjustable shader inputs.
type Tuning struct {
	Multiplier float64
	Curve      Curve
}

// DefaultTuning is a linear curve at full strength.
var DefaultTuning = Tuning{Multiplier: 1, Curve: CurveLinear}

// Params is the argument set of one squish shader invocation.
type Params struct {
	LayerCenter Vec2
	AnchorPoint Vec2
	// Control is the control point relative to the container center.
	Control    Vec2
	Multiplier float64
	Curve      Curve
}

// MapParams computes the shader arguments for the control point at pos in a
// container centered at containerCenter. Anchors and tuning pass through
// unchanged; the multiplier is not clamped here.
func MapParams(pos, containerCenter Vec2, anchors Anchors, tuning Tuning) Params {
	return Params{
		LayerCenter: anchors.LayerCenter,
		AnchorPoint: anchors.AnchorPoint,
		Control:     pos.Sub(containerCenter),
		Multiplier:  tuning.Multiplier,
		Curve:       tuning.Curve,
	}
}
