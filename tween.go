package squishy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenAnimation moves the tracked position from a fixed start to a target
// over a fixed duration using a gween easing function. Unlike
// SpringAnimation it ignores the position it is handed each step.
type TweenAnimation struct {
	tweens [2]*gween.Tween
	Target Vec2
}

// NewTweenAnimation creates a tween from from to to lasting duration seconds.
func NewTweenAnimation(from, to Vec2, duration float32, fn ease.TweenFunc) *TweenAnimation {
	a := &TweenAnimation{Target: to}
	a.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	a.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return a
}

// TweenDuration derives a tween length from a spring profile: four periods,
// roughly how long the spring takes to settle visually.
func TweenDuration(p SpringProfile) float32 {
	if p.Response <= 0 {
		return 0
	}
	return float32(4 * p.Response)
}

// Step advances both axes by dt seconds. The final step lands exactly on
// the target.
func (a *TweenAnimation) Step(_ Vec2, dt float64) (Vec2, bool) {
	x, xDone := a.tweens[0].Update(float32(dt))
	y, yDone := a.tweens[1].Update(float32(dt))
	if xDone && yDone {
		return a.Target, true
	}
	return Vec2{float64(x), float64(y)}, false
}

// ReturnStyle selects how the control point travels back to the center.
type ReturnStyle uint8

const (
	ReturnSpring ReturnStyle = iota // damped spring (default)
	ReturnTween                     // eased tween of fixed duration
)

// Animator receives spring-back requests. Implementations own the
// interpolation; the requester does not track progress.
type Animator interface {
	Animate(target Vec2, profile SpringProfile)
}

// TrackerAnimator is the default Animator. It installs a SpringAnimation or
// TweenAnimation into Tracker, which the game loop advances with Tick.
type TrackerAnimator struct {
	Tracker *DragTracker
	Style   ReturnStyle
	// Ease is used by ReturnTween. Nil means ease.OutElastic.
	Ease ease.TweenFunc
}

// Animate starts an animation of the tracked position toward target.
func (a *TrackerAnimator) Animate(target Vec2, profile SpringProfile) {
	if a.Tracker == nil {
		return
	}
	switch a.Style {
	case ReturnTween:
		fn := a.Ease
		if fn == nil {
			fn = ease.OutElastic
		}
		a.Tracker.Animate(NewTweenAnimation(a.Tracker.Position(), target, TweenDuration(profile), fn))
	default:
		a.Tracker.Animate(NewSpringAnimation(target, profile))
	}
}
