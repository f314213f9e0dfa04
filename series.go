package livecharts

// DataPoint is a single plotted value as reported by the chart model. X and Y
// are model values, not pixels; the model's hit test resolves pixels back to
// points.
type DataPoint struct {
	X, Y        float64
	Index       int    // position within the owning series
	SeriesTitle string // title of the owning series
}

// Series describes one plotted series: its title, swatch color, and values.
// The chart view treats series as opaque configuration passed to the model;
// scale solving and rendering belong to the model.
type Series struct {
	Title  string
	Stroke Color
	Fill   Color
	Points []DataPoint
}

// SeriesCollection is an ordered sequence of series descriptors. May be empty
// or nil.
type SeriesCollection []Series
