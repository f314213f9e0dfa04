package livecharts

import (
	"testing"
	"time"
)

func TestHandlersFireInRegistrationOrder(t *testing.T) {
	m := &mockModel{}
	v := newTestView(m)

	var got []string
	v.OnDataClick(func(DataInteractionContext) { got = append(got, "first") })
	v.OnDataClick(func(DataInteractionContext) { got = append(got, "second") })
	v.OnDataClick(func(DataInteractionContext) { got = append(got, "third") })

	v.PointerPrimaryUp(15, 27, MouseButtonLeft, time.Now(), DeviceMouse)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("fired %d handlers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	m := &mockModel{}
	v := newTestView(m)

	var kept, removed int
	v.OnDataClick(func(DataInteractionContext) { kept++ })
	h := v.OnDataClick(func(DataInteractionContext) { removed++ })

	v.PointerPrimaryUp(15, 27, MouseButtonLeft, time.Now(), DeviceMouse)
	h.Remove()
	v.PointerPrimaryUp(15, 27, MouseButtonLeft, time.Now(), DeviceMouse)

	if kept != 2 {
		t.Errorf("surviving handler fired %d times, want 2", kept)
	}
	if removed != 1 {
		t.Errorf("removed handler fired %d times, want 1", removed)
	}
}

func TestCallbackHandleRemoveIdempotent(t *testing.T) {
	v := NewChartView(nil)
	h := v.OnLoaded(func() {})
	h.Remove()
	h.Remove() // second removal is a no-op

	if len(v.handlers.loaded) != 0 {
		t.Errorf("%d loaded handlers remain", len(v.handlers.loaded))
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

func TestRemoveTargetsOnlyItsChannel(t *testing.T) {
	v := NewChartView(nil)

	v.OnUpdatePreview(func() {})
	h := v.OnUpdated(func() {})
	h.Remove()

	if len(v.handlers.updatePreview) != 1 {
		t.Error("removing an updated handler disturbed the preview channel")
	}
	if len(v.handlers.updated) != 0 {
		t.Errorf("%d updated handlers remain", len(v.handlers.updated))
	}
}

func TestRemoveDuringSteadyStateKeepsOrder(t *testing.T) {
	v := NewChartView(nil)

	var got []string
	h1 := v.OnUpdated(func() { got = append(got, "a") })
	v.OnUpdated(func() { got = append(got, "b") })
	v.OnUpdated(func() { got = append(got, "c") })
	h1.Remove()

	for _, h := range v.handlers.updated {
		h.fn()
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("got %v, want [b c]", got)
	}
}
