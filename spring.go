package squishy

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringProfile describes the return-to-center spring. Response is the
// period of the undamped oscillation in seconds; DampingFraction is the
// damping ratio (1 is critically damped, below 1 overshoots).
type SpringProfile struct {
	Response        float64
	DampingFraction float64
}

// DefaultSpring is a quick, bouncy return.
var DefaultSpring = SpringProfile{Response: 0.3, DampingFraction: 0.5}

// AngularFrequency returns the undamped angular frequency in radians per second.
func (p SpringProfile) AngularFrequency() float64 {
	if p.Response <= 0 {
		return 0
	}
	return 2 * math.Pi / p.Response
}

// Settling thresholds, in layout units and units per second.
const (
	settleDistance = 0.05
	settleSpeed    = 0.5
)

// SpringAnimation is a damped spring pulling the tracked position toward
// Target, integrated per axis with harmonica.
type SpringAnimation struct {
	Target  Vec2
	Profile SpringProfile

	vel    Vec2
	spring harmonica.Spring
	dt     float64
}

// NewSpringAnimation creates a spring animation at rest toward target.
func NewSpringAnimation(target Vec2, profile SpringProfile) *SpringAnimation {
	return &SpringAnimation{Target: target, Profile: profile}
}

// Velocity returns the current velocity in units per second.
func (a *SpringAnimation) Velocity() Vec2 {
	return a.vel
}

// Step advances the spring by dt seconds. A profile with no response jumps
// straight to the target.
func (a *SpringAnimation) Step(pos Vec2, dt float64) (Vec2, bool) {
	if a.Profile.Response <= 0 {
		a.vel = Vec2{}
		return a.Target, true
	}
	if dt <= 0 {
		return pos, false
	}
	// harmonica bakes the time step into its coefficients.
	if dt != a.dt {
		a.spring = harmonica.NewSpring(dt, a.Profile.AngularFrequency(), a.Profile.DampingFraction)
		a.dt = dt
	}

	x, vx := a.spring.Update(pos.X, a.vel.X, a.Target.X)
	y, vy := a.spring.Update(pos.Y, a.vel.Y, a.Target.Y)
	a.vel = Vec2{vx, vy}

	if math.Abs(x-a.Target.X) < settleDistance && math.Abs(y-a.Target.Y) < settleDistance &&
		math.Abs(vx) < settleSpeed && math.Abs(vy) < settleSpeed {
		a.vel = Vec2{}
		return a.Target, true
	}
	return Vec2{x, y}, false
}
