package plot

import (
	"fmt"
	"math"
)

// Zoom is kept within [MinZoom, MaxZoom]. Both bounds are powers of two so
// repeated doubling and halving stays exact.
var (
	MinZoom = math.Ldexp(1, -40)
	MaxZoom = math.Ldexp(1, 40)
)

// DefaultPanStep is the pan distance in screen units per key press.
const DefaultPanStep = 10.0

// Window is a closed-open interval [Min, Max) of function-space values.
type Window struct {
	Min, Max float64
}

func (w Window) Width() float64 { return w.Max - w.Min }

// Viewport is the pannable, zoomable window into function space mapped
// onto a Dim x Dim pixel grid.
type Viewport struct {
	Center      Point
	Zoom        float64
	AxisEnabled bool
	Dim         int
}

// NewViewport returns a viewport centered on the origin at zoom 1 for a
// dim x dim grid. A dim below 1 is clamped to 1.
func NewViewport(dim int) Viewport {
	return Viewport{
		Zoom: 1.0,
		Dim:  max(dim, 1),
	}
}

func (v Viewport) String() string {
	return fmt.Sprintf("zoom=%g center=%s axis=%t", v.Zoom, v.Center, v.AxisEnabled)
}

func (v Viewport) half() int { return v.Dim / 2 }

// roundHalfUp rounds to the nearest integer, ties toward +Inf.
func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// axisOffset scales a function-space distance to a pixel count. ok is false
// when the count cannot be represented.
func (v Viewport) axisOffset(d float64) (int, bool) {
	f := roundHalfUp(d * v.Zoom)
	const limit = 1 << 30
	if math.IsNaN(f) || math.Abs(f) > limit {
		return 0, false
	}
	return int(f), true
}

// Offset returns the pixel offset of p from the center pixel, without
// clipping. Offsets that cannot be represented are reported with ok=false.
func (v Viewport) Offset(p Point) (dx, dy int, ok bool) {
	dx, okx := v.axisOffset(p.X - v.Center.X)
	dy, oky := v.axisOffset(p.Y - v.Center.Y)
	if !okx || !oky {
		return 0, 0, false
	}
	return dx, dy, true
}

// ToPixel maps a function-space point to a pixel. Rows grow downward, so
// increasing Y decreases the row. ok is false when the pixel is outside
// [0, Dim) on either axis.
func (v Viewport) ToPixel(p Point) (x, y int, ok bool) {
	dx, dy, ok := v.Offset(p)
	if !ok {
		return 0, 0, false
	}
	x, y = v.half()+dx, v.half()-dy
	if x < 0 || y < 0 || x >= v.Dim || y >= v.Dim {
		return x, y, false
	}
	return x, y, true
}

// ToFunction maps a pixel back to the function-space point at its center.
func (v Viewport) ToFunction(x, y int) Point {
	return Point{
		X: v.Center.X + float64(x-v.half())/v.Zoom,
		Y: v.Center.Y - float64(y-v.half())/v.Zoom,
	}
}

// HalfWidth is the visible function-space distance from the center to an
// edge, on either axis.
func (v Viewport) HalfWidth() float64 {
	return float64(v.half()) / v.Zoom
}

// Visible returns the visible horizontal and vertical function-space ranges.
func (v Viewport) Visible() (xs, ys Window) {
	h := v.HalfWidth()
	return Window{v.Center.X - h, v.Center.X + h}, Window{v.Center.Y - h, v.Center.Y + h}
}

// ZoomIn doubles the zoom. The center stays under the center pixel.
func (v *Viewport) ZoomIn() {
	if z := v.Zoom * 2; z <= MaxZoom {
		v.Zoom = z
	}
}

// ZoomOut halves the zoom; it never reaches zero.
func (v *Viewport) ZoomOut() {
	if z := v.Zoom / 2; z >= MinZoom {
		v.Zoom = z
	}
}

// Pan moves the center by (dx, dy) screen units of the given step, scaled
// by 1/zoom so a pan covers the same number of pixels at every zoom.
func (v *Viewport) Pan(dx, dy, step float64) {
	v.Center.X += dx * step / v.Zoom
	v.Center.Y += dy * step / v.Zoom
}

func (v *Viewport) ToggleAxis() {
	v.AxisEnabled = !v.AxisEnabled
}

// Reset restores zoom 1 and the origin as center. The axis flag is kept.
func (v *Viewport) Reset() {
	v.Zoom = 1.0
	v.Center = Point{}
}

// Normalize repairs a viewport loaded from outside: zoom is clamped into
// range and a non-positive dim becomes 1.
func (v *Viewport) Normalize() {
	if math.IsNaN(v.Zoom) || v.Zoom <= 0 {
		v.Zoom = 1.0
	}
	v.Zoom = min(max(v.Zoom, MinZoom), MaxZoom)
	v.Dim = max(v.Dim, 1)
	if !v.Center.IsFinite() {
		v.Center = Point{}
	}
}
