package livecharts

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoPlanesProvider is returned by Dimensions when the view was built
// without a planes provider. Concrete chart variants must supply one.
var ErrNoPlanesProvider = errors.New("livecharts: no planes provider installed")

// legendStripThickness is the extent reserved for the legend along its edge.
const legendStripThickness = 20.0

// InteractionEvent carries one routed interaction for an external sink
// (see SetInteractionSink). Which fields are valid depends on Type.
type InteractionEvent struct {
	Type EventType

	// Valid for EventDataClick and EventDataDoubleClick.
	Context DataInteractionContext

	// Valid for EventDataMouseEnter and EventDataMouseLeave.
	Point DataPoint

	// Valid for EventPointerMoved.
	LocalX, LocalY float64
}

// InteractionSink receives every routed interaction event. Used by the ecs
// submodule to publish interactions into an entity world.
type InteractionSink interface {
	EmitInteraction(event InteractionEvent)
}

// ChartView adapts a headless ChartModel to the host windowing toolkit. It
// owns the draw-area surface and the tooltip popup, exposes the observable
// configuration slots, routes pointer input into data-interaction events,
// and forwards model notifications to its subscribers on the UI thread.
//
// All methods except the Dispatcher's Invoke/InvokeAsync must be called on
// the UI thread.
type ChartView struct {
	// Background fills the whole control before widgets draw.
	Background Color

	// Bindable command slots. Absent (nil) by default; a nil slot is
	// skipped while the matching event channel still fires.
	DataClickCommand       Command
	DataDoubleClickCommand Command
	DataMouseEnterCommand  Command
	DataMouseLeaveCommand  Command
	UpdatePreviewCommand   Command
	UpdatedCommand         Command

	props PropertyStore

	series          *PropertySlot[SeriesCollection]
	animationsSpeed *PropertySlot[time.Duration]
	tooltipTimeout  *PropertySlot[time.Duration]
	legend          *PropertySlot[LegendWidget]
	legendPosition  *PropertySlot[LegendPosition]
	dataTooltip     *PropertySlot[TooltipWidget]
	drawMargin      *PropertySlot[Margin]
	model           *PropertySlot[ChartModel]

	planes PlanesProvider

	root     *Node
	drawArea *Node
	popup    *TooltipPopup

	handlers   handlerRegistry
	dispatcher Dispatcher
	modelSubs  []CallbackHandle
	sink       InteractionSink

	controlW, controlH int
	loaded             bool

	pointer pollState
	inject  []syntheticPointerEvent
	script  *ScriptRunner

	debug bool
	stats debugStats
}

// NewChartView creates a chart view with default slot values: animations at
// 250 ms, tooltip timeout at 150 ms, no legend placement, an empty draw
// margin, and the stock legend and tooltip widgets installed. planes may be
// nil for chart variants without dimensional axes; Dimensions then errors.
func NewChartView(planes PlanesProvider) *ChartView {
	v := &ChartView{
		Background: ColorTransparent,
		planes:     planes,
	}

	v.root = NewNode("chart-root")
	v.drawArea = NewSurface("draw-area", 0, 0)
	v.drawArea.Fill = ColorTransparent
	v.root.AddChild(v.drawArea)

	v.popup = newTooltipPopup()
	v.root.AddChild(v.popup.node)

	v.series = newSlot[SeriesCollection](&v.props, "Series", nil, nil)
	v.animationsSpeed = newSlot(&v.props, "AnimationsSpeed", DefaultAnimationsSpeed, eqComparable[time.Duration])
	v.tooltipTimeout = newSlot(&v.props, "TooltipTimeOut", DefaultTooltipTimeout, eqComparable[time.Duration])
	v.legend = newSlot[LegendWidget](&v.props, "Legend", nil, nil)
	v.legendPosition = newSlot(&v.props, "LegendPosition", LegendNone, eqComparable[LegendPosition])
	v.dataTooltip = newSlot[TooltipWidget](&v.props, "DataToolTip", nil, nil)
	v.drawMargin = newSlot(&v.props, "DrawMargin", Margin{}, eqComparable[Margin])
	v.model = newSlot[ChartModel](&v.props, "Model", nil, nil)

	v.model.onSet = func(old, m ChartModel) {
		v.detachModel()
		if m != nil {
			v.attachModel(m)
		}
	}
	v.props.onChange = v.propertyChanged

	// Default widgets go through the normal write path so they produce
	// the same notifications a user-supplied replacement would.
	v.legend.Set(NewDefaultLegend())
	v.dataTooltip.Set(NewDefaultTooltip())

	return v
}

// --- Property accessors ---

// Series returns the current series collection.
func (v *ChartView) Series() SeriesCollection { return v.series.Value() }

// SetSeries replaces the series collection.
func (v *ChartView) SetSeries(s SeriesCollection) { v.series.Set(s) }

// AnimationsSpeed returns the duration of value transitions.
func (v *ChartView) AnimationsSpeed() time.Duration { return v.animationsSpeed.Value() }

// SetAnimationsSpeed sets the duration of value transitions.
func (v *ChartView) SetAnimationsSpeed(d time.Duration) { v.animationsSpeed.Set(d) }

// TooltipTimeout returns the tooltip hide delay.
func (v *ChartView) TooltipTimeout() time.Duration { return v.tooltipTimeout.Value() }

// SetTooltipTimeout sets the tooltip hide delay. The value is pushed through
// to the installed tooltip widget; the view does not enforce it.
func (v *ChartView) SetTooltipTimeout(d time.Duration) { v.tooltipTimeout.Set(d) }

// Legend returns the installed legend widget, or nil.
func (v *ChartView) Legend() LegendWidget { return v.legend.Value() }

// SetLegend installs a legend widget. The view holds a non-owning reference.
func (v *ChartView) SetLegend(w LegendWidget) { v.legend.Set(w) }

// LegendPosition returns where the legend is placed.
func (v *ChartView) LegendPosition() LegendPosition { return v.legendPosition.Value() }

// SetLegendPosition sets where the legend is placed. Position and widget are
// independent slots; neither implies the other.
func (v *ChartView) SetLegendPosition(p LegendPosition) { v.legendPosition.Set(p) }

// DataTooltip returns the installed tooltip widget, or nil.
func (v *ChartView) DataTooltip() TooltipWidget { return v.dataTooltip.Value() }

// SetDataTooltip installs a tooltip widget. Setting nil disables pointer
// move routing.
func (v *ChartView) SetDataTooltip(w TooltipWidget) { v.dataTooltip.Set(w) }

// DrawMargin returns the insets around the draw area.
func (v *ChartView) DrawMargin() Margin { return v.drawMargin.Value() }

// SetDrawMargin sets the insets around the draw area.
func (v *ChartView) SetDrawMargin(m Margin) { v.drawMargin.Set(m) }

// Model returns the attached chart model, or nil.
func (v *ChartView) Model() ChartModel { return v.model.Value() }

// SetModel attaches a chart model, detaching the previous one. The model
// must outlive the view's use of it.
func (v *ChartView) SetModel(m ChartModel) { v.model.Set(m) }

// Props exposes the property store for host-owned binding expressions. Both
// the typed setters and the store's dynamic path produce identical
// notifications.
func (v *ChartView) Props() *PropertyStore { return &v.props }

// ControlSize reports the current host allocation in integer pixels.
func (v *ChartView) ControlSize() (width, height int) {
	return v.controlW, v.controlH
}

// Dimensions returns the current planes grouped by dimension, delegating to
// the provider given at construction. Without a provider it returns
// ErrNoPlanesProvider; view state is unaffected.
func (v *ChartView) Dimensions() ([][]Plane, error) {
	if v.planes == nil {
		return nil, ErrNoPlanesProvider
	}
	return v.planes(), nil
}

// DrawArea returns the draw-area surface node. Its pixel bounds equal the
// last UpdateDrawArea rectangle.
func (v *ChartView) DrawArea() *Node { return v.drawArea }

// Tooltip returns the view's tooltip popup. Exactly one popup exists for
// the view's lifetime.
func (v *ChartView) Tooltip() *TooltipPopup { return v.popup }

// Dispatcher returns the view's UI-thread marshal. Model callbacks produced
// on worker goroutines use it to reach UI state.
func (v *ChartView) Dispatcher() *Dispatcher { return &v.dispatcher }

// SetInteractionSink installs a sink receiving every routed interaction
// event. A nil sink detaches.
func (v *ChartView) SetInteractionSink(sink InteractionSink) { v.sink = sink }

// UpdateDrawArea repositions and resizes the draw area to exactly r.
// Idempotent: repeating the call has no further effect.
func (v *ChartView) UpdateDrawArea(r Rect) {
	v.drawArea.SetBounds(r)
}

// --- Property side effects ---

// propertyChanged runs after a slot's change notification. It pushes
// slot-coupled values into the widgets and asks the model to recalculate.
func (v *ChartView) propertyChanged(name string) {
	switch name {
	case "Series":
		if l := v.legend.Value(); l != nil {
			l.SetSeries(v.series.Value())
		}
	case "Legend":
		if l := v.legend.Value(); l != nil {
			l.SetSeries(v.series.Value())
		}
	case "AnimationsSpeed":
		v.popup.fadeDuration = v.animationsSpeed.Value()
	case "TooltipTimeOut":
		v.popup.hideDelay = v.tooltipTimeout.Value()
		if t := v.dataTooltip.Value(); t != nil {
			t.SetTimeout(v.tooltipTimeout.Value())
		}
	case "DataToolTip":
		if t := v.dataTooltip.Value(); t != nil {
			t.SetTimeout(v.tooltipTimeout.Value())
		}
	}
	if m := v.model.Value(); m != nil && name != "Model" {
		m.Rebuild(false)
	}
}

// --- Model bridge ---

// attachModel subscribes the view to the model's notification channels.
// Callbacks are marshalled through the Dispatcher, so models may raise from
// worker goroutines; fan-out happens on the next Update.
func (v *ChartView) attachModel(m ChartModel) {
	ev := m.Events()
	v.modelSubs = append(v.modelSubs,
		ev.OnUpdatePreview(func() {
			v.dispatcher.InvokeAsync(v.fireUpdatePreview)
		}),
		ev.OnUpdated(func() {
			v.dispatcher.InvokeAsync(v.fireUpdated)
		}),
		ev.OnDataPointerEnter(func(p DataPoint) {
			v.dispatcher.InvokeAsync(func() { v.fireDataMouseEnter(p) })
		}),
		ev.OnDataPointerLeave(func(p DataPoint) {
			v.dispatcher.InvokeAsync(func() { v.fireDataMouseLeave(p) })
		}),
	)
}

// detachModel removes every subscription made by attachModel. Each handle
// detaches from the channel it was registered on.
func (v *ChartView) detachModel() {
	for _, h := range v.modelSubs {
		h.Remove()
	}
	v.modelSubs = v.modelSubs[:0]
}

func (v *ChartView) fireUpdatePreview() {
	v.stats.modelEvents++
	for _, h := range v.handlers.updatePreview {
		h.fn()
	}
	executeCommand(v.UpdatePreviewCommand, nil)
}

func (v *ChartView) fireUpdated() {
	v.stats.modelEvents++
	for _, h := range v.handlers.updated {
		h.fn()
	}
	executeCommand(v.UpdatedCommand, nil)
}

func (v *ChartView) fireDataMouseEnter(p DataPoint) {
	v.stats.modelEvents++
	for _, h := range v.handlers.dataEnter {
		h.fn(p)
	}
	executeCommand(v.DataMouseEnterCommand, p)
	v.emitInteraction(InteractionEvent{Type: EventDataMouseEnter, Point: p})
}

func (v *ChartView) fireDataMouseLeave(p DataPoint) {
	v.stats.modelEvents++
	for _, h := range v.handlers.dataLeave {
		h.fn(p)
	}
	executeCommand(v.DataMouseLeaveCommand, p)
	v.emitInteraction(InteractionEvent{Type: EventDataMouseLeave, Point: p})
}

func (v *ChartView) emitInteraction(e InteractionEvent) {
	if v.sink != nil {
		v.sink.EmitInteraction(e)
	}
}

// --- Lifecycle ---

// Update drains marshalled callbacks, fires the loaded notification on the
// first call, refreshes transforms, consumes input, and advances the
// tooltip popup. Call once per host frame; ebiten.Game implementations
// delegate here.
func (v *ChartView) Update() error {
	v.dispatcher.drain()

	if !v.loaded {
		v.loaded = true
		for _, h := range v.handlers.loaded {
			h.fn()
		}
	}

	updateWorldTransform(v.root, identityTransform, 1, false)

	if v.script != nil {
		v.script.step(v)
	}
	v.pollInput()

	dt := 1.0 / float64(ebiten.TPS())
	v.popup.update(dt)

	v.debugLog()
	return nil
}

// Draw renders the background, the containment tree, the legend strip, and
// the tooltip popup. Series content is the model's concern and is not drawn
// here.
func (v *ChartView) Draw(screen *ebiten.Image) {
	if v.Background.A > 0 {
		screen.Fill(v.Background.toRGBA())
	}
	v.root.draw(screen)
	if l := v.legend.Value(); l != nil {
		if bounds, ok := v.legendBounds(); ok {
			l.Draw(screen, bounds)
		}
	}
	v.popup.draw(screen, v.dataTooltip.Value())
}

// Layout reports the view's logical size and publishes resize notifications
// when the host allocation changes.
func (v *ChartView) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.controlW || outsideHeight != v.controlH {
		v.controlW = outsideWidth
		v.controlH = outsideHeight
		ctx := ResizeContext{Width: outsideWidth, Height: outsideHeight}
		for _, h := range v.handlers.resized {
			h.fn(ctx)
		}
	}
	return outsideWidth, outsideHeight
}

// legendBounds computes the strip the legend occupies for the current
// position. Reports false for LegendNone.
func (v *ChartView) legendBounds() (Rect, bool) {
	w := float64(v.controlW)
	h := float64(v.controlH)
	switch v.legendPosition.Value() {
	case LegendTop:
		return Rect{Left: 0, Top: 0, Width: w, Height: legendStripThickness}, true
	case LegendBottom:
		return Rect{Left: 0, Top: h - legendStripThickness, Width: w, Height: legendStripThickness}, true
	case LegendLeft:
		return Rect{Left: 0, Top: 0, Width: legendStripThickness, Height: h}, true
	case LegendRight:
		return Rect{Left: w - legendStripThickness, Top: 0, Width: legendStripThickness, Height: h}, true
	default:
		return Rect{}, false
	}
}
