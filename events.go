package livecharts

import (
	"sync"
	"time"
)

// EventType identifies a kind of chart view or model event channel.
type EventType uint8

const (
	EventDataClick         EventType = iota // fires on a primary-button release over the draw area
	EventDataDoubleClick                    // fires on a primary-button press with click count 2
	EventDataMouseEnter                     // fires when the model reports the pointer entering a point
	EventDataMouseLeave                     // fires when the model reports the pointer leaving a point
	EventUpdatePreview                      // fires before the model recalculates
	EventUpdated                            // fires after the model recalculates
	EventPointerMoved                       // fires on pointer movement while a tooltip is installed
	EventChartViewLoaded                    // fires once when the view enters its first update
	EventChartViewResized                   // fires when the host allocation changes
	EventPropertyChanged                    // fires once per distinct property slot write
	eventModelUpdatePreview
	eventModelUpdated
	eventModelPointerEnter
	eventModelPointerLeave
)

// DataInteractionContext carries the data points the model reports under a
// pointer interaction, plus the raw input facts.
type DataInteractionContext struct {
	Device    PointerDevice
	Timestamp time.Time
	Button    MouseButton
	Points    []DataPoint
}

// PointerMovedContext carries a pointer movement expressed in draw-area-local
// coordinates together with the installed tooltip's selection mode.
type PointerMovedContext struct {
	LocalX, LocalY float64
	SelectionMode  SelectionMode
}

// ResizeContext carries the integer host allocation after a size change.
type ResizeContext struct {
	Width, Height int
}

// PropertyChangedContext names the property slot whose value changed.
type PropertyChangedContext struct {
	Name string
}

// --- Handler registry ---

type dataHandler struct {
	id uint32
	fn func(DataInteractionContext)
}

type pointHandler struct {
	id uint32
	fn func(DataPoint)
}

type notifyHandler struct {
	id uint32
	fn func()
}

type moveHandler struct {
	id uint32
	fn func(PointerMovedContext)
}

type resizeHandler struct {
	id uint32
	fn func(ResizeContext)
}

type propertyHandler struct {
	id uint32
	fn func(PropertyChangedContext)
}

type handlerRegistry struct {
	dataClick       []dataHandler
	dataDoubleClick []dataHandler
	dataEnter       []pointHandler
	dataLeave       []pointHandler
	updatePreview   []notifyHandler
	updated         []notifyHandler
	pointerMoved    []moveHandler
	loaded          []notifyHandler
	resized         []resizeHandler
	propertyChanged []propertyHandler
	nextID          uint32
}

// CallbackHandle allows removing a registered event callback. Handles from
// a ModelEvents channel carry that channel's lock so removal is safe against
// concurrent raises; view-side handles live on the UI thread and carry none.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
	mu    *sync.Mutex
}

// Remove unregisters this callback so it no longer fires. The entry is
// removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.mu != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
	}
	switch h.event {
	case EventDataClick:
		h.reg.dataClick = removeDataHandler(h.reg.dataClick, h.id)
	case EventDataDoubleClick:
		h.reg.dataDoubleClick = removeDataHandler(h.reg.dataDoubleClick, h.id)
	case EventDataMouseEnter, eventModelPointerEnter:
		h.reg.dataEnter = removePointHandler(h.reg.dataEnter, h.id)
	case EventDataMouseLeave, eventModelPointerLeave:
		h.reg.dataLeave = removePointHandler(h.reg.dataLeave, h.id)
	case EventUpdatePreview, eventModelUpdatePreview:
		h.reg.updatePreview = removeNotifyHandler(h.reg.updatePreview, h.id)
	case EventUpdated, eventModelUpdated:
		h.reg.updated = removeNotifyHandler(h.reg.updated, h.id)
	case EventPointerMoved:
		h.reg.pointerMoved = removeMoveHandler(h.reg.pointerMoved, h.id)
	case EventChartViewLoaded:
		h.reg.loaded = removeNotifyHandler(h.reg.loaded, h.id)
	case EventChartViewResized:
		h.reg.resized = removeResizeHandler(h.reg.resized, h.id)
	case EventPropertyChanged:
		h.reg.propertyChanged = removePropertyHandler(h.reg.propertyChanged, h.id)
	}
}

func removeDataHandler(s []dataHandler, id uint32) []dataHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dataHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePointHandler(s []pointHandler, id uint32) []pointHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeNotifyHandler(s []notifyHandler, id uint32) []notifyHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = notifyHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeMoveHandler(s []moveHandler, id uint32) []moveHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = moveHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeResizeHandler(s []resizeHandler, id uint32) []resizeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = resizeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePropertyHandler(s []propertyHandler, id uint32) []propertyHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = propertyHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- ChartView event registration ---

// OnDataClick registers a callback fired when a primary-button release over
// the draw area resolves to a data interaction.
func (v *ChartView) OnDataClick(fn func(DataInteractionContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.dataClick = append(v.handlers.dataClick, dataHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventDataClick}
}

// OnDataDoubleClick registers a callback fired when a double-click over the
// draw area resolves to a data interaction.
func (v *ChartView) OnDataDoubleClick(fn func(DataInteractionContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.dataDoubleClick = append(v.handlers.dataDoubleClick, dataHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventDataDoubleClick}
}

// OnDataMouseEnter registers a callback fired when the model reports the
// pointer entering a data point.
func (v *ChartView) OnDataMouseEnter(fn func(DataPoint)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.dataEnter = append(v.handlers.dataEnter, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventDataMouseEnter}
}

// OnDataMouseLeave registers a callback fired when the model reports the
// pointer leaving a data point.
func (v *ChartView) OnDataMouseLeave(fn func(DataPoint)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.dataLeave = append(v.handlers.dataLeave, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventDataMouseLeave}
}

// OnUpdatePreview registers a callback fired before the model recalculates.
func (v *ChartView) OnUpdatePreview(fn func()) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.updatePreview = append(v.handlers.updatePreview, notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventUpdatePreview}
}

// OnUpdated registers a callback fired after the model recalculates.
func (v *ChartView) OnUpdated(fn func()) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.updated = append(v.handlers.updated, notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventUpdated}
}

// OnPointerMoved registers a callback fired when the pointer moves over the
// view while a tooltip widget is installed.
func (v *ChartView) OnPointerMoved(fn func(PointerMovedContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.pointerMoved = append(v.handlers.pointerMoved, moveHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventPointerMoved}
}

// OnLoaded registers a callback fired once when the view enters its first
// update after being attached to the host loop.
func (v *ChartView) OnLoaded(fn func()) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.loaded = append(v.handlers.loaded, notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventChartViewLoaded}
}

// OnResized registers a callback fired when the host allocation changes.
func (v *ChartView) OnResized(fn func(ResizeContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.resized = append(v.handlers.resized, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventChartViewResized}
}

// OnPropertyChanged registers a callback fired once per distinct property
// slot write, carrying the slot's name.
func (v *ChartView) OnPropertyChanged(fn func(PropertyChangedContext)) CallbackHandle {
	return v.props.OnChanged(fn)
}
