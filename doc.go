// Package livecharts embeds a headless chart model into an [Ebitengine]
// window. The package provides the adapter layer only: observable
// configuration slots, pointer-to-data-interaction event routing, coordinate
// translation, widget hosting, and UI-thread marshalling. Scale solving,
// series geometry, and hit testing live behind the [ChartModel] interface.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	view := livecharts.NewChartView(nil)
//	view.SetModel(model)
//	view.SetSeries(livecharts.SeriesCollection{
//		{Title: "revenue", Stroke: livecharts.Color{R: 0.3, G: 0.7, B: 1, A: 1}},
//	})
//	livecharts.Run(view, livecharts.RunConfig{
//		Title: "Sales", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [ChartView.Update], [ChartView.Draw], and [ChartView.Layout] directly.
//
// # Configuration slots
//
// Every configuration value lives in a named, observable property slot.
// Writing a distinct value publishes exactly one change notification
// carrying the slot name, whether the write came through a typed setter or
// the store's dynamic path used by host binding expressions:
//
//	view.OnPropertyChanged(func(c livecharts.PropertyChangedContext) {
//		fmt.Println("changed:", c.Name)
//	})
//	view.SetAnimationsSpeed(500 * time.Millisecond)
//
// # Data interactions
//
// Pointer input over the draw area is resolved through the model's hit test
// and republished as data-interaction events, with optional bindable
// commands alongside each channel:
//
//	view.OnDataClick(func(c livecharts.DataInteractionContext) {
//		fmt.Println("clicked points:", c.Points)
//	})
//	view.DataClickCommand = livecharts.CommandFunc{
//		Run: func(arg any) { selectPoints(arg.([]livecharts.DataPoint)) },
//	}
//
// # Threading
//
// Everything runs on the host's UI thread. Models that recalculate on
// worker goroutines reach UI state through [ChartView.Dispatcher]; raised
// model notifications are marshalled automatically and fan out during the
// next update.
//
// [Ebitengine]: https://ebitengine.org
package livecharts
