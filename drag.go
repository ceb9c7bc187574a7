package squishy

// Animation moves the tracked position over successive frames. It is driven
// by DragTracker.Tick and never writes the position itself.
type Animation interface {
	// Step advances the animation by dt seconds starting from pos and
	// returns the next position and whether the animation has settled.
	Step(pos Vec2, dt float64) (next Vec2, done bool)
}

// DragTracker turns a stream of drag updates into an absolute position for
// the control point. The first update of a gesture only records the grab
// offset; later updates move the point by the gesture translation.
//
// The tracker owns the position. An installed Animation may write to it only
// through Tick, and only while no gesture is active.
type DragTracker struct {
	dragging   bool
	dragStart  Vec2
	dragOffset Vec2
	pos        Vec2
	dirty      bool
	anim       Animation

	// OnEnded is called at the end of every gesture, after the tracker has
	// left the dragging state.
	OnEnded func()
}

// Update handles one drag update. location is the pointer position and
// translation is the pointer movement since the gesture started.
func (t *DragTracker) Update(location, translation Vec2) {
	if !t.dragging {
		// Gesture start: any in-flight animation stops here and its current
		// value becomes the baseline.
		t.anim = nil
		t.dragStart = t.pos
		t.dragOffset = t.pos.Sub(location)
		t.dragging = true
		return
	}
	t.setPos(t.dragStart.Add(t.dragOffset).Add(translation))
}

// End finishes the current gesture and calls OnEnded. Calling End without an
// active gesture leaves the state unchanged but still calls OnEnded.
func (t *DragTracker) End() {
	t.dragging = false
	if t.OnEnded != nil {
		t.OnEnded()
	}
}

// Reset moves the tracked position to p and drops any animation.
func (t *DragTracker) Reset(p Vec2) {
	t.anim = nil
	t.setPos(p)
}

// Position returns the tracked position.
func (t *DragTracker) Position() Vec2 {
	return t.pos
}

// Dragging reports whether a gesture is in progress.
func (t *DragTracker) Dragging() bool {
	return t.dragging
}

// DragStart returns the position recorded at the start of the current or
// last gesture.
func (t *DragTracker) DragStart() Vec2 {
	return t.dragStart
}

// DragOffset returns the grab offset recorded at the start of the current or
// last gesture.
func (t *DragTracker) DragOffset() Vec2 {
	return t.dragOffset
}

// Animate installs a as the in-flight animation, replacing any previous one.
// It is ignored while a gesture is active.
func (t *DragTracker) Animate(a Animation) {
	if t.dragging {
		return
	}
	t.anim = a
}

// Animating reports whether an animation is installed.
func (t *DragTracker) Animating() bool {
	return t.anim != nil
}

// Tick advances the in-flight animation by dt seconds and writes the result
// into the tracked position. It does nothing during a gesture.
func (t *DragTracker) Tick(dt float64) {
	if t.anim == nil || t.dragging {
		return
	}
	next, done := t.anim.Step(t.pos, dt)
	t.setPos(next)
	if done {
		t.anim = nil
	}
}

// Dirty reports whether the position changed since the last ClearDirty.
func (t *DragTracker) Dirty() bool {
	return t.dirty
}

// ClearDirty resets the redraw flag. Called by the render loop after drawing.
func (t *DragTracker) ClearDirty() {
	t.dirty = false
}

func (t *DragTracker) setPos(p Vec2) {
	if p != t.pos {
		t.dirty = true
	}
	t.pos = p
}
