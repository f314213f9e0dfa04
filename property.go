package livecharts

import (
	"errors"
	"fmt"
)

// Errors signalled by the property store's dynamic write path.
var (
	// ErrUnknownSlot is returned when a dynamic write names a slot the
	// store does not define.
	ErrUnknownSlot = errors.New("livecharts: unknown property slot")

	// ErrSlotType is returned when a dynamic write carries a value of the
	// wrong type. The slot's current value is left untouched.
	ErrSlotType = errors.New("livecharts: property slot type mismatch")
)

// anySlot is the untyped face of a PropertySlot, used by the store's
// dynamic write and binding paths.
type anySlot interface {
	setAny(v any) error
	bindAny(src func() any)
	refresh() error
}

// PropertyStore is an observable bag of typed configuration slots. Each slot
// is keyed by a name string; writing a distinct value publishes exactly one
// change notification carrying the slot name. Writes of an equal value are
// coalesced.
//
// A slot value may be written imperatively through the view's typed setters
// or through a host-owned binding expression (Bind + Refresh); both paths
// produce identical notifications.
//
// All writes must happen on the UI thread; the store is not synchronized.
type PropertyStore struct {
	slots    map[string]anySlot
	handlers handlerRegistry
	onChange func(name string) // store-wide hook, fired after slot handlers
}

// OnChanged registers a callback fired once per distinct slot write.
func (s *PropertyStore) OnChanged(fn func(PropertyChangedContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.propertyChanged = append(s.handlers.propertyChanged, propertyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPropertyChanged}
}

// SetAny writes a value to the named slot through the untyped path. A wrong
// dynamic type returns ErrSlotType without altering the slot; an unknown
// name returns ErrUnknownSlot.
func (s *PropertyStore) SetAny(name string, v any) error {
	slot, ok := s.slots[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return slot.setAny(v)
}

// Bind installs a pull source for the named slot. The source is evaluated
// on Refresh, not on installation. A nil src removes the binding.
func (s *PropertyStore) Bind(name string, src func() any) error {
	slot, ok := s.slots[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	slot.bindAny(src)
	return nil
}

// Refresh re-pulls the named slot's binding source, if one is set, routing
// the pulled value through the normal write path. A source yielding the
// wrong type returns ErrSlotType and leaves the slot untouched.
func (s *PropertyStore) Refresh(name string) error {
	slot, ok := s.slots[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return slot.refresh()
}

// RefreshAll re-pulls every slot that has a binding source. The first error
// is returned; remaining slots are still refreshed.
func (s *PropertyStore) RefreshAll() error {
	var first error
	for _, slot := range s.slots {
		if err := slot.refresh(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *PropertyStore) notify(name string) {
	ctx := PropertyChangedContext{Name: name}
	for _, h := range s.handlers.propertyChanged {
		h.fn(ctx)
	}
	if s.onChange != nil {
		s.onChange(name)
	}
}

func (s *PropertyStore) register(name string, slot anySlot) {
	if s.slots == nil {
		s.slots = make(map[string]anySlot)
	}
	s.slots[name] = slot
}

// PropertySlot holds one named, typed, observable value.
type PropertySlot[T any] struct {
	store   *PropertyStore
	name    string
	value   T
	eq      func(a, b T) bool // nil means every write counts as distinct
	binding func() any
	onSet   func(old, new T) // runs before the change notification
}

// newSlot creates a slot, registers it with the store, and installs the
// initial value without notifying.
func newSlot[T any](store *PropertyStore, name string, initial T, eq func(a, b T) bool) *PropertySlot[T] {
	s := &PropertySlot[T]{store: store, name: name, value: initial, eq: eq}
	store.register(name, s)
	return s
}

func eqComparable[T comparable](a, b T) bool { return a == b }

// Name returns the slot's key in the store.
func (s *PropertySlot[T]) Name() string { return s.name }

// Value returns the current slot value.
func (s *PropertySlot[T]) Value() T { return s.value }

// Set writes v to the slot. A value distinct from the current one publishes
// exactly one change notification carrying the slot name.
func (s *PropertySlot[T]) Set(v T) {
	if s.eq != nil && s.eq(s.value, v) {
		return
	}
	old := s.value
	s.value = v
	if s.onSet != nil {
		s.onSet(old, v)
	}
	s.store.notify(s.name)
}

func (s *PropertySlot[T]) setAny(v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: slot %q wants %T, got %T", ErrSlotType, s.name, s.value, v)
	}
	s.Set(tv)
	return nil
}

func (s *PropertySlot[T]) bindAny(src func() any) {
	s.binding = src
}

func (s *PropertySlot[T]) refresh() error {
	if s.binding == nil {
		return nil
	}
	return s.setAny(s.binding())
}
