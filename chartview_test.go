package livecharts

import (
	"errors"
	"testing"
)

func TestUpdateDrawArea(t *testing.T) {
	v := NewChartView(nil)
	r := Rect{Left: 5, Top: 7, Width: 100, Height: 50}

	v.UpdateDrawArea(r)
	if got := v.DrawArea().Bounds(); got != r {
		t.Fatalf("draw area bounds = %+v, want %+v", got, r)
	}

	// Idempotent: repeating the call changes nothing.
	v.UpdateDrawArea(r)
	if got := v.DrawArea().Bounds(); got != r {
		t.Errorf("repeated call gives %+v, want %+v", got, r)
	}
}

func TestDrawAreaStaysInSubtree(t *testing.T) {
	v := NewChartView(nil)
	if v.DrawArea().Parent != v.root {
		t.Error("draw area is not a child of the view's root")
	}
	if v.DrawArea().Fill != ColorTransparent {
		t.Error("draw area fill is not transparent")
	}
}

func TestLoadedFiresOnce(t *testing.T) {
	v := NewChartView(nil)

	var loaded int
	v.OnLoaded(func() { loaded++ })

	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if loaded != 1 {
		t.Errorf("loaded fired %d times, want 1", loaded)
	}
}

func TestLayoutPublishesResize(t *testing.T) {
	v := NewChartView(nil)

	var resizes []ResizeContext
	v.OnResized(func(c ResizeContext) { resizes = append(resizes, c) })

	v.Layout(640, 480)
	if w, h := v.ControlSize(); w != 640 || h != 480 {
		t.Errorf("ControlSize = (%d, %d), want (640, 480)", w, h)
	}
	if len(resizes) != 1 || resizes[0] != (ResizeContext{Width: 640, Height: 480}) {
		t.Fatalf("resizes = %v, want one 640x480", resizes)
	}

	// Same allocation again is not a resize.
	v.Layout(640, 480)
	if len(resizes) != 1 {
		t.Errorf("unchanged layout fired %d extra resizes", len(resizes)-1)
	}

	v.Layout(800, 600)
	if len(resizes) != 2 {
		t.Errorf("changed layout fired %d resizes, want 2", len(resizes))
	}
}

func TestDimensions(t *testing.T) {
	planes := [][]Plane{
		{{Title: "x", Min: 0, Max: 10}},
		{{Title: "y", Min: 0, Max: 100}},
	}
	v := NewChartView(func() [][]Plane { return planes })

	got, err := v.Dimensions()
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if len(got) != 2 || got[0][0].Title != "x" || got[1][0].Title != "y" {
		t.Errorf("Dimensions = %v", got)
	}
}

func TestDimensionsWithoutProvider(t *testing.T) {
	v := NewChartView(nil)
	_, err := v.Dimensions()
	if !errors.Is(err, ErrNoPlanesProvider) {
		t.Fatalf("err = %v, want ErrNoPlanesProvider", err)
	}

	// The failed call leaves the view usable.
	v.SetLegendPosition(LegendTop)
	if v.LegendPosition() != LegendTop {
		t.Error("view state corrupted after Dimensions error")
	}
}

func TestModelNotificationsForwarded(t *testing.T) {
	v := NewChartView(nil)
	m := &mockModel{}
	v.SetModel(m)

	var previews, updates int
	v.OnUpdatePreview(func() { previews++ })
	v.OnUpdated(func() { updates++ })

	var commandRuns int
	v.UpdatedCommand = CommandFunc{Run: func(arg any) { commandRuns++ }}

	m.events.RaiseUpdatePreview()
	m.events.RaiseUpdated()

	// Model notifications are marshalled; nothing fires until the UI
	// thread drains them.
	if previews != 0 || updates != 0 {
		t.Fatal("model notification fan-out happened before Update")
	}

	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if previews != 1 || updates != 1 {
		t.Errorf("previews=%d updates=%d, want 1 and 1", previews, updates)
	}
	if commandRuns != 1 {
		t.Errorf("UpdatedCommand ran %d times, want 1", commandRuns)
	}
}

func TestModelHoverForwarded(t *testing.T) {
	v := NewChartView(nil)
	m := &mockModel{}
	v.SetModel(m)

	var entered, left []DataPoint
	v.OnDataMouseEnter(func(p DataPoint) { entered = append(entered, p) })
	v.OnDataMouseLeave(func(p DataPoint) { left = append(left, p) })

	var commandArgs []any
	v.DataMouseEnterCommand = CommandFunc{Run: func(arg any) { commandArgs = append(commandArgs, arg) }}

	p := DataPoint{X: 7, SeriesTitle: "s"}
	m.events.RaiseDataPointerEnter(p)
	m.events.RaiseDataPointerLeave(p)

	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(entered) != 1 || entered[0] != p {
		t.Errorf("entered = %v, want [p]", entered)
	}
	if len(left) != 1 || left[0] != p {
		t.Errorf("left = %v, want [p]", left)
	}
	if len(commandArgs) != 1 || commandArgs[0] != any(p) {
		t.Errorf("enter command args = %v, want [p]", commandArgs)
	}
}

func TestModelSwapDetaches(t *testing.T) {
	v := NewChartView(nil)
	m1 := &mockModel{}
	m2 := &mockModel{}

	var updates int
	v.OnUpdated(func() { updates++ })

	v.SetModel(m1)
	v.SetModel(m2)

	// The old model's notifications must no longer reach the view.
	m1.events.RaiseUpdated()
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updates != 0 {
		t.Errorf("detached model still forwarded %d updates", updates)
	}

	m2.events.RaiseUpdated()
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updates != 1 {
		t.Errorf("current model forwarded %d updates, want 1", updates)
	}
}

func TestSetModelNotifies(t *testing.T) {
	v := NewChartView(nil)

	var names []string
	v.OnPropertyChanged(func(c PropertyChangedContext) { names = append(names, c.Name) })

	m := &mockModel{}
	v.SetModel(m)

	if len(names) != 1 || names[0] != "Model" {
		t.Errorf("notifications = %v, want [Model]", names)
	}
	if v.Model() != ChartModel(m) {
		t.Error("Model read-back mismatch")
	}
}

func TestLegendBounds(t *testing.T) {
	v := NewChartView(nil)
	v.Layout(200, 100)

	tests := []struct {
		name string
		pos  LegendPosition
		want Rect
		ok   bool
	}{
		{"none", LegendNone, Rect{}, false},
		{"top", LegendTop, Rect{Left: 0, Top: 0, Width: 200, Height: legendStripThickness}, true},
		{"bottom", LegendBottom, Rect{Left: 0, Top: 100 - legendStripThickness, Width: 200, Height: legendStripThickness}, true},
		{"left", LegendLeft, Rect{Left: 0, Top: 0, Width: legendStripThickness, Height: 100}, true},
		{"right", LegendRight, Rect{Left: 200 - legendStripThickness, Top: 0, Width: legendStripThickness, Height: 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetLegendPosition(tt.pos)
			got, ok := v.legendBounds()
			if ok != tt.ok || got != tt.want {
				t.Errorf("legendBounds() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
