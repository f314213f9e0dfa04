package livecharts

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pollState tracks the device state between frames for edge detection and
// double-click synthesis.
type pollState struct {
	lastX, lastY float64
	leftDown     bool

	lastPressAt time.Time
	lastPressX  float64
	lastPressY  float64
	clickCount  int
}

// --- Event Router ---

// PointerMove routes a pointer movement at host coordinates. If no tooltip
// widget is installed the event is dropped. Otherwise the point is
// translated into draw-area-local coordinates and published with the
// tooltip's current selection mode, and the tooltip popup follows the
// pointer. The view does not hit-test on move; what to do with the
// coordinate is the tooltip widget's and the model's decision.
func (v *ChartView) PointerMove(hostX, hostY float64) {
	tooltip := v.dataTooltip.Value()
	if tooltip == nil {
		return
	}

	lx, ly := v.drawArea.WorldToLocal(hostX, hostY)
	v.popup.MoveTo(hostX, hostY)

	v.stats.moves++
	ctx := PointerMovedContext{LocalX: lx, LocalY: ly, SelectionMode: tooltip.SelectionMode()}
	for _, h := range v.handlers.pointerMoved {
		h.fn(ctx)
	}
	v.emitInteraction(InteractionEvent{Type: EventPointerMoved, LocalX: lx, LocalY: ly})
}

// PointerPrimaryUp routes a primary-button release at host coordinates. The
// point is translated into draw-area-local coordinates and resolved through
// the model's hit test; the resulting points are dispatched as a
// single-click data interaction: the DataClick channel fires first, then
// DataClickCommand executes if bound and executable. Both happen even when
// the hit test comes back empty. Without a model the event is dropped.
func (v *ChartView) PointerPrimaryUp(hostX, hostY float64, button MouseButton, timestamp time.Time, device PointerDevice) {
	m := v.model.Value()
	if m == nil {
		return
	}

	lx, ly := v.drawArea.WorldToLocal(hostX, hostY)
	points := m.HitTest(lx, ly)

	v.stats.clicks++
	ctx := DataInteractionContext{Device: device, Timestamp: timestamp, Button: button, Points: points}
	for _, h := range v.handlers.dataClick {
		h.fn(ctx)
	}
	executeCommand(v.DataClickCommand, points)
	v.emitInteraction(InteractionEvent{Type: EventDataClick, Context: ctx})
}

// PointerPrimaryDown routes a primary-button press at host coordinates.
// Presses with a click count other than 2 are ignored; the release half of
// the pair arrives through PointerPrimaryUp. A double-click translates and
// hit-tests like a release, then dispatches as a double-click data
// interaction: the DataDoubleClick channel fires first, then
// DataDoubleClickCommand executes if bound and executable. Without a model
// the event is dropped.
func (v *ChartView) PointerPrimaryDown(hostX, hostY float64, button MouseButton, timestamp time.Time, device PointerDevice, clickCount int) {
	if clickCount != 2 {
		return
	}
	m := v.model.Value()
	if m == nil {
		return
	}

	lx, ly := v.drawArea.WorldToLocal(hostX, hostY)
	points := m.HitTest(lx, ly)

	v.stats.doubleClicks++
	ctx := DataInteractionContext{Device: device, Timestamp: timestamp, Button: button, Points: points}
	for _, h := range v.handlers.dataDoubleClick {
		h.fn(ctx)
	}
	executeCommand(v.DataDoubleClickCommand, points)
	v.emitInteraction(InteractionEvent{Type: EventDataDoubleClick, Context: ctx})
}

// --- Device polling ---

// pollInput reads the host pointer device once per frame and feeds the
// router. Injected synthetic events take precedence over real device state.
func (v *ChartView) pollInput() {
	if v.processInjected() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	now := time.Now()

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	st := &v.pointer

	if pressed && !st.leftDown {
		st.leftDown = true
		cc := v.synthClickCount(now, x, y)
		v.PointerPrimaryDown(x, y, MouseButtonLeft, now, DeviceMouse, cc)
	} else if !pressed && st.leftDown {
		st.leftDown = false
		v.PointerPrimaryUp(x, y, MouseButtonLeft, now, DeviceMouse)
	}

	if x != st.lastX || y != st.lastY {
		v.PointerMove(x, y)
		st.lastX = x
		st.lastY = y
	}
}

// synthClickCount converts raw presses into a click count: a press within
// the double-click interval and slop radius of the previous press continues
// the streak, anything else starts a new one.
func (v *ChartView) synthClickCount(at time.Time, x, y float64) int {
	st := &v.pointer
	dx := x - st.lastPressX
	dy := y - st.lastPressY
	within := at.Sub(st.lastPressAt) <= doubleClickInterval &&
		dx >= -doubleClickSlop && dx <= doubleClickSlop &&
		dy >= -doubleClickSlop && dy <= doubleClickSlop

	if within {
		st.clickCount++
	} else {
		st.clickCount = 1
	}
	st.lastPressAt = at
	st.lastPressX = x
	st.lastPressY = y
	return st.clickCount
}
