package livecharts

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default values installed into a fresh ChartView's property slots.
const (
	DefaultAnimationsSpeed = 250 * time.Millisecond
	DefaultTooltipTimeout  = 150 * time.Millisecond
)

// Double-click synthesis thresholds used by the input poller. A second press
// within the interval and slop radius of the first is reported with
// clickCount 2.
const (
	doubleClickInterval = 500 * time.Millisecond
	doubleClickSlop     = 4.0 // pixels
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the fill used for surfaces that must capture pointer
// input across their full extent without drawing anything.
var ColorTransparent = Color{0, 0, 0, 0}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// WhitePixel is a 1x1 white image used to draw solid color rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle in draw-area coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width &&
		y >= r.Top && y <= r.Top+r.Height
}

// Margin is a set of four scalar insets around the draw area.
type Margin struct {
	Left, Top, Right, Bottom float64
}

// IsEmpty reports whether all four insets are zero.
func (m Margin) IsEmpty() bool {
	return m == Margin{}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerDevice identifies the device class a pointer event originated from.
type PointerDevice uint8

const (
	DeviceMouse PointerDevice = iota // desktop mouse or trackpad
	DeviceTouch                      // touch screen contact
	DevicePen                        // stylus
)

// LegendPosition selects where the legend widget is placed relative to the
// draw area.
type LegendPosition uint8

const (
	LegendNone   LegendPosition = iota // no legend placement (default)
	LegendTop                          // above the draw area
	LegendBottom                       // below the draw area
	LegendLeft                         // left of the draw area
	LegendRight                        // right of the draw area
)

// SelectionMode describes which data points a tooltip hover should consider.
// The chart view only forwards it; interpretation belongs to the tooltip
// widget and the model.
type SelectionMode uint8

const (
	SelectionOnlySender   SelectionMode = iota // only the point directly under the pointer
	SelectionSharedX                           // every point sharing the hovered X value
	SelectionSharedY                           // every point sharing the hovered Y value
	SelectionSharedXClose                      // points sharing the X value closest to the pointer
)

// Plane describes one axis in the chart's coordinate system. Concrete chart
// variants group their planes by dimensional role (X planes, Y planes, ...).
type Plane struct {
	Title    string
	Unit     string
	Min, Max float64
}

// PlanesProvider returns the current planes grouped by dimension. Concrete
// chart variants (cartesian, polar, ...) supply one at construction time.
type PlanesProvider func() [][]Plane
