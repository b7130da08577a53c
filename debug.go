package rowan

import (
	"fmt"
	"os"
	"time"
)

// globalDebug gates per-frame diagnostic output to stderr.
var globalDebug bool

// SetDebug enables or disables diagnostic output. Off by default.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// frameStats holds per-frame fill/submit timing and draw-call metrics.
// Only reported when debug output is enabled.
type frameStats struct {
	fillTime      time.Duration
	submitTime    time.Duration
	batchCount    int
	quadCount     int
	drawCallCount int
}

// logFrameStats prints timing and draw-call stats to stderr.
func logFrameStats(stats frameStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] batches: %d | quads: %d | draw calls: %d\n",
		stats.batchCount, stats.quadCount, stats.drawCallCount)
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] fill: %v | submit: %v | total: %v\n",
		stats.fillTime, stats.submitTime, stats.fillTime+stats.submitTime)
}
