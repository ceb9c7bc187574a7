package squishy

import (
	"fmt"
	"os"
	"time"
)

// debugEnabled mirrors RunConfig.Debug of the most recently built Game.
var debugEnabled bool

// debugStats holds per-frame metrics. Only logged when debugEnabled is true.
type debugStats struct {
	params     Params
	squishTime time.Duration
	redrawn    bool
}

// debugLog prints the frame's shader arguments and timing to stderr.
func debugLog(stats debugStats) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s\n", formatDebugStats(stats))
}

func formatDebugStats(stats debugStats) string {
	p := stats.params
	return fmt.Sprintf(
		"[squishy] control: (%.1f, %.1f) | curve: %s | multiplier: %.2f | redrawn: %v | squish: %v",
		p.Control.X, p.Control.Y, p.Curve, p.Multiplier, stats.redrawn, stats.squishTime)
}
