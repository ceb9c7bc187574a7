package squishy

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and demo behavior for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Controls enables keyboard tuning and the HUD.
	Controls bool
	// Debug logs per-frame stats to stderr.
	Debug bool

	// Settings for the squish. A zero Metrics selects DefaultSettings.
	Settings   Settings
	ClearColor Color

	// TestScript, if set, drives injected input and screenshots.
	TestScript *TestRunner
	// AutoExit ends the game once TestScript has finished.
	AutoExit bool
	// ScreenshotDir is where screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
}

const (
	defaultWidth  = 640
	defaultHeight = 640
	hudMargin     = 8
)

// Game is the demo's ebiten.Game: a distorted grid layer, guides, and a
// draggable control point.
type Game struct {
	cfg      RunConfig
	squisher *Squisher
	input    *Input
	runner   *TestRunner

	filter    *SquishFilter
	layer     *ebiten.Image
	distorted *ebiten.Image
	overlay   *Overlay
	hud       *HUD

	controls  []Control
	drawnOnce bool

	screenshotQueue []pendingScreenshot
}

// NewGame builds the game and rasterizes its layers.
func NewGame(cfg RunConfig) (*Game, error) {
	settings := cfg.Settings
	if settings.Metrics.Rows == 0 {
		settings = DefaultSettings()
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	g := &Game{
		cfg:      cfg,
		squisher: NewSquisher(settings),
		input:    NewInput(),
		runner:   cfg.TestScript,
		filter:   NewSquishFilter(DefaultRadius),
		layer:    NewLayerImage(settings.Metrics),
		overlay:  NewOverlay(settings.Metrics, DefaultRadius),
	}
	ls := settings.Metrics.LayerSize()
	g.distorted = ebiten.NewImage(int(ls.X), int(ls.Y))

	if cfg.Controls {
		hud, err := NewHUD()
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		g.hud = hud
	}
	debugEnabled = cfg.Debug
	return g, nil
}

// Squisher returns the game's squisher.
func (g *Game) Squisher() *Squisher {
	return g.squisher
}

// Input returns the game's pointer input, for injecting synthetic events.
func (g *Game) Input() *Input {
	return g.input
}

// Update runs the test script, processes input and advances the spring.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if g.runner != nil {
		g.runner.step(g)
		if g.cfg.AutoExit && g.runner.Done() && len(g.screenshotQueue) == 0 && g.input.Pending() == 0 {
			return ebiten.Termination
		}
	}

	g.input.Process(g.squisher)

	if g.cfg.Controls {
		g.controls = appendControls(g.controls[:0])
		for _, c := range g.controls {
			ApplyControl(g.squisher, c)
		}
	}

	g.squisher.Tick(dt)
	return nil
}

// Draw renders the distorted layer, guides, HUD and FPS, then flushes any
// queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	var stats debugStats
	screen.Fill(g.cfg.ClearColor.NRGBA())

	sq := g.squisher
	center := sq.Center()
	params := sq.Params()

	if !g.drawnOnce || sq.NeedsRedraw() {
		t0 := time.Now()
		g.distorted.Clear()
		g.filter.Params = params
		g.filter.Apply(g.layer, g.distorted)
		stats.squishTime = time.Since(t0)
		stats.redrawn = true
		g.drawnOnce = true
		sq.MarkDrawn()
	}

	var op ebiten.DrawImageOptions
	b := g.distorted.Bounds()
	op.GeoM.Translate(center.X-float64(b.Dx())/2, center.Y-float64(b.Dy())/2)
	screen.DrawImage(g.distorted, &op)

	g.overlay.Draw(screen, center, sq.Tracker.Position())

	if g.hud != nil {
		g.hud.Draw(screen, sq.Settings, hudMargin, hudMargin)
	}
	if g.cfg.ShowFPS {
		drawFPS(screen)
	}

	stats.params = params
	debugLog(stats)

	g.flushScreenshots(screen)
}

// Layout uses the window size as the container and re-centers on the first
// pass.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.squisher.Layout(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the demo until it is closed.
func Run(cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = ColorWhite
	}

	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
