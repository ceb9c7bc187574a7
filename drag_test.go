package squishy

import "testing"

func TestDragFirstUpdateDoesNotMove(t *testing.T) {
	var tr DragTracker
	tr.Reset(Vec2{100, 100})
	tr.ClearDirty()

	tr.Update(Vec2{140, 130}, Vec2{})

	if got := tr.Position(); got != (Vec2{100, 100}) {
		t.Errorf("Position = %v, want (100, 100)", got)
	}
	if !tr.Dragging() {
		t.Error("expected Dragging after first update")
	}
	if tr.Dirty() {
		t.Error("first update should not mark the tracker dirty")
	}
}

func TestDragOffsetAndTranslation(t *testing.T) {
	var tr DragTracker
	tr.Reset(Vec2{100, 100})

	tr.Update(Vec2{140, 130}, Vec2{})
	if got := tr.DragStart(); got != (Vec2{100, 100}) {
		t.Errorf("DragStart = %v, want (100, 100)", got)
	}
	if got := tr.DragOffset(); got != (Vec2{-40, -30}) {
		t.Errorf("DragOffset = %v, want (-40, -30)", got)
	}

	tr.Update(Vec2{150, 135}, Vec2{10, 5})
	if got := tr.Position(); got != (Vec2{70, 75}) {
		t.Errorf("Position = %v, want (70, 75)", got)
	}
	if !tr.Dirty() {
		t.Error("expected Dirty after a moving update")
	}
}

func TestDragInvariantHoldsForWholeGesture(t *testing.T) {
	var tr DragTracker
	tr.Reset(Vec2{50, 80})
	tr.Update(Vec2{60, 70}, Vec2{})

	translations := []Vec2{{1, 1}, {-20, 5}, {0, 0}, {300, -120}, {7.5, 2.25}}
	for _, tl := range translations {
		tr.Update(Vec2{}, tl)
		want := tr.DragStart().Add(tr.DragOffset()).Add(tl)
		if got := tr.Position(); got != want {
			t.Errorf("translation %v: Position = %v, want %v", tl, got, want)
		}
	}
}

func TestDragEndCallsOnEnded(t *testing.T) {
	var tr DragTracker
	calls := 0
	tr.OnEnded = func() {
		if tr.Dragging() {
			t.Error("OnEnded called while still dragging")
		}
		calls++
	}

	tr.Update(Vec2{10, 10}, Vec2{})
	tr.End()

	if tr.Dragging() {
		t.Error("expected not Dragging after End")
	}
	if calls != 1 {
		t.Errorf("OnEnded calls = %d, want 1", calls)
	}
}

func TestDragEndTwice(t *testing.T) {
	var tr DragTracker
	calls := 0
	tr.OnEnded = func() { calls++ }
	tr.Reset(Vec2{5, 5})
	tr.Update(Vec2{10, 10}, Vec2{})
	tr.Update(Vec2{12, 10}, Vec2{2, 0})

	tr.End()
	pos := tr.Position()
	tr.End()

	if tr.Dragging() {
		t.Error("expected not Dragging")
	}
	if tr.Position() != pos {
		t.Errorf("Position changed on second End: %v -> %v", pos, tr.Position())
	}
	// The callback fires on every End, including one with no gesture.
	if calls != 2 {
		t.Errorf("OnEnded calls = %d, want 2", calls)
	}
}

func TestDragEndWithoutGesture(t *testing.T) {
	var tr DragTracker
	tr.End() // nil OnEnded must not panic
	if tr.Dragging() {
		t.Error("expected not Dragging")
	}
}

func TestDragNextGestureReestablishesOffset(t *testing.T) {
	var tr DragTracker
	tr.Update(Vec2{10, 10}, Vec2{})
	tr.Update(Vec2{30, 10}, Vec2{20, 0})
	tr.End()

	if got := tr.Position(); got != (Vec2{10, -10}) {
		t.Fatalf("Position = %v, want (10, -10)", got)
	}

	tr.Update(Vec2{100, 100}, Vec2{})
	if got := tr.DragStart(); got != (Vec2{10, -10}) {
		t.Errorf("DragStart = %v, want (10, -10)", got)
	}
	if got := tr.DragOffset(); got != (Vec2{-90, -110}) {
		t.Errorf("DragOffset = %v, want (-90, -110)", got)
	}
}

// stepAnim moves a fixed distance each step and finishes after n steps.
type stepAnim struct {
	delta Vec2
	n     int
	steps int
}

func (a *stepAnim) Step(pos Vec2, _ float64) (Vec2, bool) {
	a.steps++
	return pos.Add(a.delta), a.steps >= a.n
}

func TestDragTickAdvancesAnimation(t *testing.T) {
	var tr DragTracker
	a := &stepAnim{delta: Vec2{1, 2}, n: 3}
	tr.Animate(a)

	for i := 0; i < 5; i++ {
		tr.Tick(1.0 / 60)
	}
	if a.steps != 3 {
		t.Errorf("steps = %d, want 3", a.steps)
	}
	if got := tr.Position(); got != (Vec2{3, 6}) {
		t.Errorf("Position = %v, want (3, 6)", got)
	}
	if tr.Animating() {
		t.Error("animation should be dropped once done")
	}
}

func TestDragGestureStartHaltsAnimation(t *testing.T) {
	var tr DragTracker
	a := &stepAnim{delta: Vec2{10, 0}, n: 100}
	tr.Animate(a)
	tr.Tick(1.0 / 60)
	tr.Tick(1.0 / 60)

	tr.Update(Vec2{50, 50}, Vec2{})
	if tr.Animating() {
		t.Fatal("gesture start should halt the animation")
	}
	if got := tr.DragStart(); got != (Vec2{20, 0}) {
		t.Errorf("DragStart = %v, want interpolated (20, 0)", got)
	}

	tr.Tick(1.0 / 60)
	if a.steps != 2 {
		t.Errorf("animation stepped after gesture start: steps = %d", a.steps)
	}
}

func TestDragAnimateIgnoredWhileDragging(t *testing.T) {
	var tr DragTracker
	tr.Update(Vec2{}, Vec2{})
	tr.Animate(&stepAnim{delta: Vec2{1, 1}, n: 1})
	if tr.Animating() {
		t.Error("Animate should be ignored during a gesture")
	}
}

func TestDragResetDropsAnimation(t *testing.T) {
	var tr DragTracker
	tr.Animate(&stepAnim{delta: Vec2{1, 1}, n: 10})
	tr.Reset(Vec2{180, 240})
	if tr.Animating() {
		t.Error("Reset should drop the animation")
	}
	if got := tr.Position(); got != (Vec2{180, 240}) {
		t.Errorf("Position = %v, want (180, 240)", got)
	}
	if !tr.Dirty() {
		t.Error("expected Dirty after Reset")
	}
	tr.ClearDirty()
	if tr.Dirty() {
		t.Error("expected clean after ClearDirty")
	}
}
