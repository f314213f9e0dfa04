package livecharts

import (
	"fmt"
	"os"
)

// debugStats counts routed events per frame. Only reported when the view's
// debug flag is set.
type debugStats struct {
	moves        int
	clicks       int
	doubleClicks int
	modelEvents  int
}

// SetDebug toggles per-frame event routing stats on stderr.
func (v *ChartView) SetDebug(enabled bool) {
	v.debug = enabled
}

// debugLog prints and resets the frame's routing counters.
func (v *ChartView) debugLog() {
	if !v.debug {
		v.stats = debugStats{}
		return
	}
	s := v.stats
	if s.moves+s.clicks+s.doubleClicks+s.modelEvents > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[livecharts] moves: %d | clicks: %d | double-clicks: %d | model events: %d\n",
			s.moves, s.clicks, s.doubleClicks, s.modelEvents)
	}
	v.stats = debugStats{}
}
