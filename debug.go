package yuletree

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// debugLogEvery is the number of frames between debug stat lines.
const debugLogEvery = 120

// frameStats holds per-frame timing and draw-call metrics.
// Only reported when debug mode is on.
type frameStats struct {
	composeTime time.Duration
	submitTime  time.Duration
	faceCount   int
	drawCalls   int
}

// debugLog reports the renderer's last frame stats at debug level, at most
// once every debugLogEvery frames.
func (g *Game) debugLog() {
	if !g.cfg.Debug || g.frame%debugLogEvery != 0 {
		return
	}
	st := g.renderer.stats
	g.logger.Debug("frame",
		"frame", g.frame,
		"compose", st.composeTime,
		"submit", st.submitTime,
		"total", st.composeTime+st.submitTime,
		"faces", st.faceCount,
		"drawCalls", st.drawCalls,
		"particles", g.rain.AliveCount(),
	)
}

// newDiscardLogger returns a logger that writes nowhere, used when the
// caller passes none.
func newDiscardLogger() *log.Logger {
	return log.New(io.Discard)
}
