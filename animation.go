package livecharts

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenSpec names one float64 field to animate and its target value.
type TweenSpec struct {
	Field *float64
	To    float64
}

// TweenGroup animates up to 4 float64 fields simultaneously. The widget host
// uses groups to fade and slide the tooltip popup; durations come from the
// view's AnimationsSpeed slot. Call Update(dt) each frame until Done.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// NewTweenGroup creates a group animating the given fields from their
// current values to the given targets over duration, using the easing
// function. Specs beyond the fourth are ignored.
func NewTweenGroup(duration time.Duration, fn ease.TweenFunc, specs ...TweenSpec) *TweenGroup {
	g := &TweenGroup{}
	for _, sp := range specs {
		if g.count == len(g.tweens) || sp.Field == nil {
			continue
		}
		g.tweens[g.count] = gween.New(float32(*sp.Field), float32(sp.To), float32(duration.Seconds()), fn)
		g.fields[g.count] = sp.Field
		g.count++
	}
	if g.count == 0 {
		g.Done = true
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
