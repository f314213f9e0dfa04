package livecharts

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"` // "move", "click", "dblclick", "wait"
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"` // wait only
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames for
// automated exercising of a chart view. Attach via SetScriptRunner; the
// runner feeds the injection queue from ChartView.Update.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	for i, s := range script.Steps {
		switch s.Action {
		case "move", "click", "dblclick", "wait":
		default:
			return nil, fmt.Errorf("parse interaction script: step %d: unknown action %q", i, s.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner to the view. A nil runner detaches.
func (v *ChartView) SetScriptRunner(r *ScriptRunner) {
	v.script = r
}

// Done reports whether all steps have been executed and their injected
// events queued.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. A step is issued only when the
// previous one's injected events have been consumed.
func (r *ScriptRunner) step(v *ChartView) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if len(v.inject) > 0 {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	s := r.steps[r.cursor]
	r.cursor++
	switch s.Action {
	case "move":
		v.InjectMove(s.X, s.Y)
	case "click":
		v.InjectClick(s.X, s.Y)
	case "dblclick":
		v.InjectDoubleClick(s.X, s.Y)
	case "wait":
		r.waitCount = s.Frames
	}
}
