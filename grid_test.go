package squishy

import (
	"image"
	"testing"
)

// alphaAt returns the 8-bit alpha of img at (x, y).
func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestRenderLayerSize(t *testing.T) {
	img := RenderLayer(DefaultMetrics)
	b := img.Bounds()
	if b.Dx() != 360 || b.Dy() != 480 {
		t.Errorf("bounds = %v, want 360x480", b)
	}
}

func TestRenderLayerPixels(t *testing.T) {
	img := RenderLayer(DefaultMetrics)

	tests := []struct {
		name     string
		x, y     int
		min, max uint32
	}{
		{"layer cell interior", 10, 10, 0, 0},
		{"layer left edge", 0, 10, 40, 60},
		{"layer right edge", 359, 10, 40, 60},
		{"layer bottom edge", 10, 479, 40, 60},
		{"view cell interior", 70, 170, 40, 60},
		{"view grid line", 60, 170, 150, 230},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alphaAt(img, tt.x, tt.y)
			if a < tt.min || a > tt.max {
				t.Errorf("alpha at (%d, %d) = %d, want in [%d, %d]", tt.x, tt.y, a, tt.min, tt.max)
			}
		})
	}
}

func TestViewOrigin(t *testing.T) {
	if got := viewOrigin(DefaultMetrics); got != (Vec2{60, 160}) {
		t.Errorf("viewOrigin = %v, want (60, 160)", got)
	}
}
