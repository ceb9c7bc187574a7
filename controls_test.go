package squishy

import (
	"math"
	"testing"
)

func TestStepMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		m     float64
		delta int
		want  float64
	}{
		{"up", 1.0, 1, 1.1},
		{"down", 1.0, -1, 0.9},
		{"clamp high", 1.5, 1, 1.5},
		{"clamp low", 0, -1, 0},
		{"snap to grid", 0.33, 1, 0.4},
		{"above range", 3, -1, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepMultiplier(tt.m, tt.delta); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("stepMultiplier(%v, %d) = %v, want %v", tt.m, tt.delta, got, tt.want)
			}
		})
	}
}

func TestApplyControl(t *testing.T) {
	sq, _ := newTestSquisher(true)

	ApplyControl(sq, ControlCycleCurve)
	if sq.Settings.Tuning.Curve != CurveCubic {
		t.Errorf("Curve = %v, want cubic", sq.Settings.Tuning.Curve)
	}

	for i := 0; i < 10; i++ {
		ApplyControl(sq, ControlMultiplierUp)
	}
	if math.Abs(sq.Settings.Tuning.Multiplier-MaxMultiplier) > 1e-9 {
		t.Errorf("Multiplier = %v, want %v", sq.Settings.Tuning.Multiplier, MaxMultiplier)
	}
	ApplyControl(sq, ControlMultiplierDown)
	if math.Abs(sq.Settings.Tuning.Multiplier-1.4) > 1e-9 {
		t.Errorf("Multiplier = %v, want 1.4", sq.Settings.Tuning.Multiplier)
	}

	ApplyControl(sq, ControlToggleBounce)
	if sq.Settings.BounceBack {
		t.Error("expected bounce-back off")
	}

	sq.DragUpdate(Vec2{180, 240}, Vec2{})
	sq.DragUpdate(Vec2{200, 200}, Vec2{20, -40})
	sq.DragEnd()
	ApplyControl(sq, ControlRecenter)
	if got := sq.Params().Control; got != (Vec2{}) {
		t.Errorf("Control = %v, want (0, 0)", got)
	}
}
