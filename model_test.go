package livecharts

import (
	"sync"
	"sync/atomic"
	"testing"
)

// mockModel is a scriptable stand-in for the headless chart.
type mockModel struct {
	events   ModelEvents
	hitFn    func(x, y float64) []DataPoint
	rebuilds int
}

func (m *mockModel) HitTest(x, y float64) []DataPoint {
	if m.hitFn != nil {
		return m.hitFn(x, y)
	}
	return nil
}

func (m *mockModel) Events() *ModelEvents { return &m.events }

func (m *mockModel) Rebuild(restartAnimations bool) { m.rebuilds++ }

func TestModelEventsRaiseFanOut(t *testing.T) {
	var ev ModelEvents

	var order []string
	ev.OnUpdatePreview(func() { order = append(order, "preview-1") })
	ev.OnUpdatePreview(func() { order = append(order, "preview-2") })
	ev.OnUpdated(func() { order = append(order, "updated") })

	ev.RaiseUpdatePreview()
	ev.RaiseUpdated()

	want := []string{"preview-1", "preview-2", "updated"}
	if len(order) != len(want) {
		t.Fatalf("fired %d handlers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestModelEventsEnterLeaveRemovalMatchesChannel(t *testing.T) {
	var ev ModelEvents

	var enters, leaves int
	enterHandle := ev.OnDataPointerEnter(func(p DataPoint) { enters++ })
	ev.OnDataPointerLeave(func(p DataPoint) { leaves++ })

	// Removing the enter subscription must detach from the enter channel
	// and leave the leave channel alone.
	enterHandle.Remove()

	ev.RaiseDataPointerEnter(DataPoint{X: 1})
	ev.RaiseDataPointerLeave(DataPoint{X: 2})

	if enters != 0 {
		t.Errorf("enter handler fired %d times after removal, want 0", enters)
	}
	if leaves != 1 {
		t.Errorf("leave handler fired %d times, want 1", leaves)
	}
}

func TestModelEventsPointArgument(t *testing.T) {
	var ev ModelEvents

	var got DataPoint
	ev.OnDataPointerLeave(func(p DataPoint) { got = p })

	ev.RaiseDataPointerLeave(DataPoint{X: 3, Y: 4, SeriesTitle: "s"})
	if got.X != 3 || got.Y != 4 || got.SeriesTitle != "s" {
		t.Errorf("handler received %+v", got)
	}
}

func TestModelEventsConcurrentRaiseAndRemove(t *testing.T) {
	var ev ModelEvents

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				ev.RaiseUpdated()
				ev.RaiseDataPointerEnter(DataPoint{X: 1})
			}
		}
	}()

	var fired atomic.Int64
	for i := 0; i < 1000; i++ {
		h1 := ev.OnUpdated(func() { fired.Add(1) })
		h2 := ev.OnDataPointerEnter(func(DataPoint) { fired.Add(1) })
		h1.Remove()
		h2.Remove()
	}

	close(stop)
	wg.Wait()
}

func TestModelRaiseDuringSwap(t *testing.T) {
	v := NewChartView(nil)
	m := &mockModel{}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				m.events.RaiseUpdated()
			}
		}
	}()

	for i := 0; i < 500; i++ {
		v.SetModel(m)
		v.SetModel(nil)
	}

	close(stop)
	wg.Wait()

	// Trampolines enqueued while attached still drain cleanly.
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
