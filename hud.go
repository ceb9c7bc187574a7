package squishy

import (
	"fmt"
	"image"
	"slices"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	hudFontSize = 12
	hudPadding  = 6
	hudWidth    = 180
)

// hudLines returns the text shown for the current tuning.
func hudLines(s Settings) []string {
	bounce := "off"
	if s.BounceBack {
		bounce = "on"
	}
	return []string{
		fmt.Sprintf("curve       %s  [C]", s.Tuning.Curve),
		fmt.Sprintf("multiplier  %.2f  [Up/Down]", s.Tuning.Multiplier),
		fmt.Sprintf("bounce      %s  [B]", bounce),
		"recenter    [R]",
	}
}

// loadHUDFace parses the embedded Go Mono font.
func loadHUDFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// renderHUD draws lines on a translucent panel.
func renderHUD(face font.Face, lines []string) image.Image {
	lineH := float64(face.Metrics().Height.Ceil())
	h := int(lineH*float64(len(lines))) + 2*hudPadding
	dc := gg.NewContext(hudWidth, h)
	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRoundedRectangle(0, 0, hudWidth, float64(h), 4)
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetColor(ColorWhite.NRGBA())
	for i, line := range lines {
		dc.DrawStringAnchored(line, hudPadding, hudPadding+lineH*float64(i), 0, 1)
	}
	return dc.Image()
}

// HUD shows the tuning state. The panel is re-rendered only when the text
// changes.
type HUD struct {
	face  font.Face
	img   *ebiten.Image
	lines []string
	op    ebiten.DrawImageOptions
}

// NewHUD loads the HUD font.
func NewHUD() (*HUD, error) {
	face, err := loadHUDFace()
	if err != nil {
		return nil, err
	}
	return &HUD{face: face}, nil
}

// Draw renders the panel for s at (x, y).
func (h *HUD) Draw(screen *ebiten.Image, s Settings, x, y float64) {
	lines := hudLines(s)
	if h.img == nil || !slices.Equal(lines, h.lines) {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImageFromImage(renderHUD(h.face, lines))
		h.lines = lines
	}
	h.op.GeoM.Reset()
	h.op.GeoM.Translate(x, y)
	screen.DrawImage(h.img, &h.op)
}
