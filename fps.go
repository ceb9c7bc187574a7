package squishy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawFPS prints the current FPS and TPS in the bottom-left corner.
func drawFPS(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		4, h-36)
}
