package livecharts

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Widget is an externally-supplied visual occupying a slot on the chart
// view. The view holds a non-owning reference and asks the widget to draw
// itself into the bounds the view allocates; the widget's internal subtree
// is its own concern.
type Widget interface {
	Draw(dst *ebiten.Image, bounds Rect)
}

// TooltipWidget is the widget installed in the DataToolTip slot. The view
// forwards its selection mode on every pointer move and pushes the
// TooltipTimeOut slot value into it; it does not enforce the timeout itself.
type TooltipWidget interface {
	Widget
	SelectionMode() SelectionMode
	SetTimeout(timeout time.Duration)
}

// LegendWidget is the widget installed in the Legend slot. The view pushes
// series changes into it so it can mirror the swatch list.
type LegendWidget interface {
	Widget
	SetSeries(series SeriesCollection)
}

// --- Default tooltip ---

// DefaultTooltip is the tooltip widget installed on construction. It renders
// a translucent panel; hover content beyond that belongs to user-supplied
// replacements.
type DefaultTooltip struct {
	Selection  SelectionMode
	Background Color
	timeout    time.Duration
}

// NewDefaultTooltip creates the stock tooltip with shared-X selection, the
// selection mode LiveCharts-style tooltips default to.
func NewDefaultTooltip() *DefaultTooltip {
	return &DefaultTooltip{
		Selection:  SelectionSharedX,
		Background: Color{R: 0.15, G: 0.15, B: 0.18, A: 0.85},
		timeout:    DefaultTooltipTimeout,
	}
}

// SelectionMode returns which points a hover should consider.
func (t *DefaultTooltip) SelectionMode() SelectionMode { return t.Selection }

// SetTimeout stores the hide delay pushed down from the TooltipTimeOut slot.
func (t *DefaultTooltip) SetTimeout(timeout time.Duration) { t.timeout = timeout }

// Timeout returns the stored hide delay.
func (t *DefaultTooltip) Timeout() time.Duration { return t.timeout }

// Draw fills the allocated bounds with the panel background.
func (t *DefaultTooltip) Draw(dst *ebiten.Image, bounds Rect) {
	fillRect(dst, bounds, t.Background)
}

// --- Default legend ---

// DefaultLegend is the legend widget installed on construction. It renders
// one swatch per series in series order.
type DefaultLegend struct {
	SwatchSize float64
	Spacing    float64
	series     SeriesCollection
}

// NewDefaultLegend creates the stock legend.
func NewDefaultLegend() *DefaultLegend {
	return &DefaultLegend{SwatchSize: 10, Spacing: 6}
}

// SetSeries mirrors the view's series collection into the legend.
func (l *DefaultLegend) SetSeries(series SeriesCollection) { l.series = series }

// Series returns the mirrored collection.
func (l *DefaultLegend) Series() SeriesCollection { return l.series }

// Draw renders the swatch row inside bounds, clipping when it runs out of
// room.
func (l *DefaultLegend) Draw(dst *ebiten.Image, bounds Rect) {
	x := bounds.Left
	for _, s := range l.series {
		if x+l.SwatchSize > bounds.Left+bounds.Width {
			return
		}
		fillRect(dst, Rect{Left: x, Top: bounds.Top, Width: l.SwatchSize, Height: l.SwatchSize}, s.Stroke)
		x += l.SwatchSize + l.Spacing
	}
}

// fillRect draws a solid rectangle via the shared white pixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.Left, r.Top)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	dst.DrawImage(WhitePixel, op)
}

// --- Tooltip popup ---

// TooltipPopup is the floating overlay the view positions relative to the
// pointer. Exactly one exists per ChartView for its entire lifetime. The
// popup's own background is transparent; the installed tooltip widget draws
// the visible content.
//
// The popup fades in when touched by pointer movement and fades back out
// after the hide delay elapses with no movement. Fade duration follows the
// view's AnimationsSpeed slot, hide delay its TooltipTimeOut slot.
type TooltipPopup struct {
	node *Node

	// Placement offset relative to the pointer, in host pixels.
	OffsetX, OffsetY float64

	// Content panel extent given to the tooltip widget.
	Width, Height float64

	fadeDuration time.Duration
	hideDelay    time.Duration
	hideLeft     float64 // seconds until fade-out; negative when idle
	fade         *TweenGroup
	fadeTo       float64 // current fade target, 0 or 1

	canvas *ebiten.Image // widget content, composited with the popup alpha
}

func newTooltipPopup() *TooltipPopup {
	node := NewSurface("tooltip-popup", 0, 0)
	node.Fill = ColorTransparent
	node.Alpha = 0
	return &TooltipPopup{
		node:         node,
		OffsetX:      12,
		OffsetY:      12,
		Width:        120,
		Height:       48,
		fadeDuration: DefaultAnimationsSpeed,
		hideDelay:    DefaultTooltipTimeout,
		hideLeft:     -1,
	}
}

// MoveTo places the popup at its offset from the pointer position and
// restarts the hide countdown. A hidden or fading-out popup retargets its
// tween toward full opacity from the current alpha, so a pointer that
// resumes moving mid-fade brings the popup straight back.
func (p *TooltipPopup) MoveTo(pointerX, pointerY float64) {
	p.node.SetPosition(pointerX+p.OffsetX, pointerY+p.OffsetY)
	p.hideLeft = p.hideDelay.Seconds()
	if p.fadeTo != 1 {
		p.fade = NewTweenGroup(p.fadeDuration, ease.OutQuad, TweenSpec{Field: &p.node.Alpha, To: 1})
		p.fadeTo = 1
	}
}

// Hide starts the fade-out immediately, without waiting for the countdown.
func (p *TooltipPopup) Hide() {
	p.hideLeft = -1
	p.fade = NewTweenGroup(p.fadeDuration, ease.OutQuad, TweenSpec{Field: &p.node.Alpha, To: 0})
	p.fadeTo = 0
}

// Visible reports whether the popup currently has any presence on screen.
func (p *TooltipPopup) Visible() bool {
	return p.node.Alpha > 0
}

// update advances the fade tween and the hide countdown by dt seconds.
func (p *TooltipPopup) update(dt float64) {
	if p.fade != nil && !p.fade.Done {
		p.fade.Update(float32(dt))
		p.node.MarkDirty()
	}
	if p.hideLeft >= 0 {
		p.hideLeft -= dt
		if p.hideLeft < 0 {
			p.Hide()
		}
	}
}

// draw renders the installed tooltip widget at the popup's position. The
// widget draws into an offscreen canvas which is composited with the
// popup's current alpha, so the fade applies to arbitrary widget content.
func (p *TooltipPopup) draw(dst *ebiten.Image, widget TooltipWidget) {
	if widget == nil || p.node.Alpha <= 0 {
		return
	}
	w, h := int(p.Width), int(p.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if p.canvas == nil || p.canvas.Bounds().Dx() != w || p.canvas.Bounds().Dy() != h {
		p.canvas = ebiten.NewImage(w, h)
	}
	p.canvas.Clear()
	widget.Draw(p.canvas, Rect{Width: p.Width, Height: p.Height})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.node.X, p.node.Y)
	op.ColorScale.ScaleAlpha(float32(p.node.Alpha))
	dst.DrawImage(p.canvas, op)
}
