package squishy

// Settings configures a Squisher. The zero value has no bounce-back and a
// zero multiplier; start from DefaultSettings instead.
type Settings struct {
	Metrics Metrics
	Anchors Anchors
	Tuning  Tuning
	// BounceBack animates the control point back to the container center
	// when a gesture ends.
	BounceBack bool
	Spring     SpringProfile
	Return     ReturnStyle
}

// DefaultSettings returns the settings of the plain demo: default metrics,
// centered anchors, linear curve at full strength, bouncing back on a
// default spring.
func DefaultSettings() Settings {
	return Settings{
		Metrics:    DefaultMetrics,
		Anchors:    DefaultAnchors(DefaultMetrics),
		Tuning:     DefaultTuning,
		BounceBack: true,
		Spring:     DefaultSpring,
		Return:     ReturnSpring,
	}
}

// Squisher ties the drag tracker to the container layout and the
// spring-back behavior, and produces the shader parameters each frame.
type Squisher struct {
	Settings Settings
	Tracker  DragTracker
	// Animator receives spring-back requests. NewSquisher sets it to a
	// TrackerAnimator bound to Tracker.
	Animator Animator

	center    Vec2
	laidOut   bool
	tuneDirty bool
}

// NewSquisher creates a Squisher whose spring-back animates its own tracker.
func NewSquisher(settings Settings) *Squisher {
	s := &Squisher{Settings: settings}
	s.Animator = &TrackerAnimator{Tracker: &s.Tracker, Style: settings.Return}
	s.Tracker.OnEnded = s.dragEnded
	return s
}

// Layout records the container size for this layout pass. The first pass
// centers the control point. A moved center changes the control vector, so
// it requests a redraw.
func (s *Squisher) Layout(width, height float64) {
	center := Vec2{width / 2, height / 2}
	if center != s.center {
		s.center = center
		s.tuneDirty = true
	}
	if !s.laidOut {
		s.laidOut = true
		s.Tracker.Reset(s.center)
	}
}

// Center returns the container center from the last layout pass.
func (s *Squisher) Center() Vec2 {
	return s.center
}

// DragUpdate forwards a drag update to the tracker.
func (s *Squisher) DragUpdate(location, translation Vec2) {
	s.Tracker.Update(location, translation)
}

// DragEnd ends the current gesture.
func (s *Squisher) DragEnd() {
	s.Tracker.End()
}

// Recenter moves the control point to the container center immediately.
func (s *Squisher) Recenter() {
	s.Tracker.Reset(s.center)
}

// Tick advances any spring-back animation by dt seconds.
func (s *Squisher) Tick(dt float64) {
	s.Tracker.Tick(dt)
}

// Params returns the shader arguments for the current control point.
func (s *Squisher) Params() Params {
	return MapParams(s.Tracker.Position(), s.center, s.Settings.Anchors, s.Settings.Tuning)
}

// SetCurve selects the shader falloff curve.
func (s *Squisher) SetCurve(c Curve) {
	if s.Settings.Tuning.Curve != c {
		s.Settings.Tuning.Curve = c
		s.tuneDirty = true
	}
}

// SetMultiplier sets the distortion strength. No range is enforced.
func (s *Squisher) SetMultiplier(m float64) {
	if s.Settings.Tuning.Multiplier != m {
		s.Settings.Tuning.Multiplier = m
		s.tuneDirty = true
	}
}

// SetBounceBack enables or disables the spring-back on release.
func (s *Squisher) SetBounceBack(on bool) {
	if s.Settings.BounceBack != on {
		s.Settings.BounceBack = on
		s.tuneDirty = true
	}
}

// NeedsRedraw reports whether the control point, the container center or the
// tuning changed since the last MarkDrawn.
func (s *Squisher) NeedsRedraw() bool {
	return s.tuneDirty || s.Tracker.Dirty() || s.Tracker.Animating()
}

// MarkDrawn clears the redraw flags after a frame has been rendered.
func (s *Squisher) MarkDrawn() {
	s.tuneDirty = false
	s.Tracker.ClearDirty()
}

func (s *Squisher) dragEnded() {
	if !s.Settings.BounceBack || s.Animator == nil {
		return
	}
	s.Animator.Animate(s.center, s.Settings.Spring)
}
