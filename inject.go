package livecharts

import "time"

// Kinds of injected pointer events.
const (
	injMove uint8 = iota
	injPress
	injRelease
)

// syntheticPointerEvent represents a single injected pointer event in host
// coordinates, fed through the same router as real device input.
type syntheticPointerEvent struct {
	x, y       float64
	kind       uint8
	clickCount int // presses only
}

// InjectMove queues a pointer move at the given host coordinates. The event
// is consumed on the next frame's input poll.
func (v *ChartView) InjectMove(x, y float64) {
	v.inject = append(v.inject, syntheticPointerEvent{x: x, y: y, kind: injMove})
}

// InjectPress queues a primary-button press at the given host coordinates
// with the given click count.
func (v *ChartView) InjectPress(x, y float64, clickCount int) {
	v.inject = append(v.inject, syntheticPointerEvent{x: x, y: y, kind: injPress, clickCount: clickCount})
}

// InjectRelease queues a primary-button release at the given host
// coordinates.
func (v *ChartView) InjectRelease(x, y float64) {
	v.inject = append(v.inject, syntheticPointerEvent{x: x, y: y, kind: injRelease})
}

// InjectClick queues a press followed by a release at the same host
// coordinates. Consumes two frames.
func (v *ChartView) InjectClick(x, y float64) {
	v.InjectPress(x, y, 1)
	v.InjectRelease(x, y)
}

// InjectDoubleClick queues the full press-release pair twice, the second
// press carrying click count 2. Consumes four frames.
func (v *ChartView) InjectDoubleClick(x, y float64) {
	v.InjectPress(x, y, 1)
	v.InjectRelease(x, y)
	v.InjectPress(x, y, 2)
	v.InjectRelease(x, y)
}

// processInjected pops one event from the inject queue and feeds it through
// the router. Returns true if an event was consumed (real device input is
// skipped that frame).
func (v *ChartView) processInjected() bool {
	if len(v.inject) == 0 {
		return false
	}
	evt := v.inject[0]
	copy(v.inject, v.inject[1:])
	v.inject = v.inject[:len(v.inject)-1]

	now := time.Now()
	switch evt.kind {
	case injMove:
		v.PointerMove(evt.x, evt.y)
	case injPress:
		v.pointer.leftDown = true
		v.PointerPrimaryDown(evt.x, evt.y, MouseButtonLeft, now, DeviceMouse, evt.clickCount)
	case injRelease:
		v.pointer.leftDown = false
		v.PointerPrimaryUp(evt.x, evt.y, MouseButtonLeft, now, DeviceMouse)
	}
	return true
}
