package squishy

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pendingScreenshot is a queued capture with the shader arguments in effect
// when it was requested.
type pendingScreenshot struct {
	label  string
	params Params
}

// Screenshot queues a capture of the distorted layer for the end of the
// current frame's Draw call. An empty label names the file after the
// current curve, multiplier and control vector.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, pendingScreenshot{
		label:  label,
		params: g.squisher.Params(),
	})
}

// flushScreenshots reads back the layer rectangle around the container
// center and writes it once per queued request. Called at the end of Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	rect := layerRect(g.squisher.Center(), g.squisher.Settings.Metrics.LayerSize(), screen.Bounds())
	if rect.Empty() {
		rect = screen.Bounds()
	}
	sub := screen.SubImage(rect).(*ebiten.Image)
	pixels := make([]byte, 4*rect.Dx()*rect.Dy())
	sub.ReadPixels(pixels)
	g.writeScreenshots(unpremultiply(pixels, rect.Dx(), rect.Dy()), time.Now())
}

// writeScreenshots writes img for every queued request and clears the
// queue. Failures are logged, never returned.
func (g *Game) writeScreenshots(img image.Image, now time.Time) {
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[squishy] screenshot: mkdir %s: %v\n", dir, err)
		return
	}
	stamp := now.Format("20060102_150405")
	for _, shot := range g.screenshotQueue {
		path := filepath.Join(dir, screenshotName(stamp, shot))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[squishy] screenshot: %v\n", err)
		}
	}
}

// layerRect returns the on-screen rectangle of a layer of the given size
// centered on center, clipped to bounds.
func layerRect(center, size Vec2, bounds image.Rectangle) image.Rectangle {
	x0 := int(center.X - size.X/2)
	y0 := int(center.Y - size.Y/2)
	r := image.Rect(x0, y0, x0+int(size.X), y0+int(size.Y))
	return r.Intersect(bounds)
}

// screenshotName builds the PNG file name for a capture.
func screenshotName(stamp string, shot pendingScreenshot) string {
	label := shot.label
	if strings.TrimSpace(label) == "" {
		p := shot.params
		label = fmt.Sprintf("%s-m%.2f-dx%.0f-dy%.0f", p.Curve, p.Multiplier, p.Control.X, p.Control.Y)
	}
	return stamp + "_" + sanitizeLabel(label) + ".png"
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and maps everything else
// to '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
