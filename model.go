package livecharts

import "sync"

// ChartModel is the headless chart the view adapts. Scale solving, layout
// math, series geometry, and hit testing all live behind this interface; the
// view only routes input to it and forwards its notifications back out.
//
// HitTest must be synchronous, pure with respect to view state, and return a
// possibly-empty ordered collection of points lying under the local
// coordinate per the model's own geometry rules.
//
// Rebuild asks the model to recalculate from the current configuration. The
// view calls it after property writes; restartAnimations selects whether
// in-flight value transitions reset.
type ChartModel interface {
	HitTest(x, y float64) []DataPoint
	Events() *ModelEvents
	Rebuild(restartAnimations bool)
}

// ModelEvents is the notification bundle a chart model owns. Models raise
// through the Raise methods; the view (or any other consumer) subscribes
// through the On methods. Each channel removes from itself, so a handle
// obtained from OnDataPointerEnter detaches from the enter channel and
// nothing else.
//
// Raise methods may be called from any goroutine; the view trampolines the
// callbacks onto the UI thread through its Dispatcher. Subscription and
// removal are likewise safe against concurrent raises: a raise fans out to a
// snapshot of the subscriber list, so a handler removed mid-raise may still
// observe that raise, but never a torn list.
type ModelEvents struct {
	mu       sync.Mutex
	handlers handlerRegistry
}

// OnUpdatePreview registers a callback raised before recalculation.
func (e *ModelEvents) OnUpdatePreview(fn func()) CallbackHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.updatePreview = append(e.handlers.updatePreview, notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: eventModelUpdatePreview, mu: &e.mu}
}

// OnUpdated registers a callback raised after recalculation.
func (e *ModelEvents) OnUpdated(fn func()) CallbackHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.updated = append(e.handlers.updated, notifyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: eventModelUpdated, mu: &e.mu}
}

// OnDataPointerEnter registers a callback raised when the pointer enters a
// data point's hover region.
func (e *ModelEvents) OnDataPointerEnter(fn func(DataPoint)) CallbackHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.dataEnter = append(e.handlers.dataEnter, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: eventModelPointerEnter, mu: &e.mu}
}

// OnDataPointerLeave registers a callback raised when the pointer leaves a
// data point's hover region.
func (e *ModelEvents) OnDataPointerLeave(fn func(DataPoint)) CallbackHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.dataLeave = append(e.handlers.dataLeave, pointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: eventModelPointerLeave, mu: &e.mu}
}

// RaiseUpdatePreview fans out to the update-preview subscribers.
func (e *ModelEvents) RaiseUpdatePreview() {
	e.mu.Lock()
	snapshot := append([]notifyHandler(nil), e.handlers.updatePreview...)
	e.mu.Unlock()
	for _, h := range snapshot {
		h.fn()
	}
}

// RaiseUpdated fans out to the updated subscribers.
func (e *ModelEvents) RaiseUpdated() {
	e.mu.Lock()
	snapshot := append([]notifyHandler(nil), e.handlers.updated...)
	e.mu.Unlock()
	for _, h := range snapshot {
		h.fn()
	}
}

// RaiseDataPointerEnter fans out to the pointer-enter subscribers.
func (e *ModelEvents) RaiseDataPointerEnter(p DataPoint) {
	e.mu.Lock()
	snapshot := append([]pointHandler(nil), e.handlers.dataEnter...)
	e.mu.Unlock()
	for _, h := range snapshot {
		h.fn(p)
	}
}

// RaiseDataPointerLeave fans out to the pointer-leave subscribers.
func (e *ModelEvents) RaiseDataPointerLeave(p DataPoint) {
	e.mu.Lock()
	snapshot := append([]pointHandler(nil), e.handlers.dataLeave...)
	e.mu.Unlock()
	for _, h := range snapshot {
		h.fn(p)
	}
}
