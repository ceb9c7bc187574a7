package squishy

import "testing"

// scriptedPointer replays one sample per call.
type scriptedPointer struct {
	samples []pointerSample
	i       int
}

type pointerSample struct {
	x, y    float64
	pressed bool
}

func (p *scriptedPointer) Pointer() (float64, float64, bool) {
	if p.i >= len(p.samples) {
		last := p.samples[len(p.samples)-1]
		return last.x, last.y, false
	}
	s := p.samples[p.i]
	p.i++
	return s.x, s.y, s.pressed
}

func TestInputDragGesture(t *testing.T) {
	sq, rec := newTestSquisher(true)
	in := &Input{Source: &scriptedPointer{samples: []pointerSample{
		{100, 100, false}, // hover
		{200, 250, true},  // press: grab offset only
		{210, 250, true},
		{230, 270, true},
		{230, 270, true}, // no movement
		{230, 270, false},
	}}}

	in.Process(sq) // hover
	if sq.Tracker.Dragging() {
		t.Fatal("hover should not start a gesture")
	}

	in.Process(sq) // press
	if !sq.Tracker.Dragging() {
		t.Fatal("press should start a gesture")
	}
	if got := sq.Tracker.Position(); got != (Vec2{180, 240}) {
		t.Errorf("press moved the point to %v", got)
	}
	if got := sq.Tracker.DragOffset(); got != (Vec2{-20, -10}) {
		t.Errorf("DragOffset = %v, want (-20, -10)", got)
	}

	in.Process(sq)
	// dragStart + offset + translation = (180,240) + (-20,-10) + (10,0)
	if got := sq.Tracker.Position(); got != (Vec2{170, 230}) {
		t.Errorf("Position = %v, want (170, 230)", got)
	}

	in.Process(sq)
	if got := sq.Tracker.Position(); got != (Vec2{190, 250}) {
		t.Errorf("Position = %v, want (190, 250)", got)
	}

	in.Process(sq)
	if got := sq.Tracker.Position(); got != (Vec2{190, 250}) {
		t.Errorf("unmoved sample changed Position to %v", got)
	}

	in.Process(sq) // release
	if sq.Tracker.Dragging() || in.Dragging() {
		t.Error("release should end the gesture")
	}
	if len(rec.targets) != 1 {
		t.Errorf("animation requests = %d, want 1", len(rec.targets))
	}
}

func TestInputNilSource(t *testing.T) {
	sq, _ := newTestSquisher(true)
	in := &Input{}
	in.Process(sq) // must not panic
	if sq.Tracker.Dragging() {
		t.Error("nil source should not start a gesture")
	}
}

func TestInputReleaseWithoutPressIgnored(t *testing.T) {
	sq, rec := newTestSquisher(true)
	in := &Input{Source: &scriptedPointer{samples: []pointerSample{{5, 5, false}, {6, 6, false}}}}
	in.Process(sq)
	in.Process(sq)
	if len(rec.targets) != 0 {
		t.Errorf("animation requests = %d, want 0", len(rec.targets))
	}
}
