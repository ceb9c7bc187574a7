package squishy

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// The multiplier range offered by the keyboard controls. The mapper itself
// accepts any value.
const (
	MinMultiplier  = 0.0
	MaxMultiplier  = 1.5
	multiplierStep = 0.1
)

// Control is a keyboard tuning action.
type Control uint8

const (
	ControlCycleCurve     Control = iota // select the next falloff curve
	ControlMultiplierUp                  // raise the multiplier one step
	ControlMultiplierDown                // lower the multiplier one step
	ControlToggleBounce                  // toggle bounce-back on release
	ControlRecenter                      // snap the control point to the center
)

var controlKeys = [...]struct {
	key     ebiten.Key
	control Control
}{
	{ebiten.KeyC, ControlCycleCurve},
	{ebiten.KeyArrowUp, ControlMultiplierUp},
	{ebiten.KeyArrowDown, ControlMultiplierDown},
	{ebiten.KeyB, ControlToggleBounce},
	{ebiten.KeyR, ControlRecenter},
}

// appendControls appends the controls whose keys were pressed this frame.
func appendControls(buf []Control) []Control {
	for _, ck := range controlKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			buf = append(buf, ck.control)
		}
	}
	return buf
}

// stepMultiplier moves m by delta steps, rounded to the step grid and kept
// within [MinMultiplier, MaxMultiplier].
func stepMultiplier(m float64, delta int) float64 {
	m = math.Round((m+float64(delta)*multiplierStep)/multiplierStep) * multiplierStep
	return math.Max(MinMultiplier, math.Min(MaxMultiplier, m))
}

// ApplyControl performs c on sq.
func ApplyControl(sq *Squisher, c Control) {
	switch c {
	case ControlCycleCurve:
		sq.SetCurve(sq.Settings.Tuning.Curve.Next())
	case ControlMultiplierUp:
		sq.SetMultiplier(stepMultiplier(sq.Settings.Tuning.Multiplier, 1))
	case ControlMultiplierDown:
		sq.SetMultiplier(stepMultiplier(sq.Settings.Tuning.Multiplier, -1))
	case ControlToggleBounce:
		sq.SetBounceBack(!sq.Settings.BounceBack)
	case ControlRecenter:
		sq.Recenter()
	}
}
