package plot

import "iter"

// RealFunc is plotted in point mode: input x, output f(x).
type RealFunc func(x float64) float64

// ComplexFunc is plotted in line mode: parameter t, output (Re, Im).
type ComplexFunc func(t float64) complex128

// Drawer is the sampling strategy selected once per run. It draws one
// function onto c as seen through v.
type Drawer interface {
	Draw(c Canvas, v Viewport, col RGB)
	// Points yields the function-space points the drawer evaluates for v,
	// keyed by the sample that produced them.
	Points(v Viewport) iter.Seq2[float64, Point]
}

// Plot maps p through v and writes it if it lands on the grid.
func Plot(c Canvas, v Viewport, p Point, col RGB) {
	if x, y, ok := v.ToPixel(p); ok {
		c.Set(x, y, col)
	}
}

// Line yields n points a + i/n*(b-a) for i in [0, n). b itself is not
// produced. When a == b the same point is yielded n times.
func Line(a, b Point, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 0; i < n; i++ {
			if !yield(a.Lerp(b, float64(i)/float64(n))) {
				return
			}
		}
	}
}

// DrawLine interpolates between a and b with n steps and plots every step.
func DrawLine(c Canvas, v Viewport, a, b Point, n int, col RGB) {
	for p := range Line(a, b, n) {
		Plot(c, v, p, col)
	}
}

type realDrawer struct {
	f         RealFunc
	precision int
}

// NewRealDrawer plots isolated points (x, f(x)) for precision evenly spaced
// x across the sample window. No interpolation is done.
func NewRealDrawer(f RealFunc, precision int) Drawer {
	return &realDrawer{f: f, precision: precision}
}

func (d *realDrawer) Points(v Viewport) iter.Seq2[float64, Point] {
	s := NewSamples(SampleWindow(v), d.precision)
	return func(yield func(float64, Point) bool) {
		for x := range s.Values() {
			if !yield(x, Point{X: x, Y: d.f(x)}) {
				return
			}
		}
	}
}

func (d *realDrawer) Draw(c Canvas, v Viewport, col RGB) {
	for _, p := range d.Points(v) {
		if p.IsFinite() {
			Plot(c, v, p, col)
		}
	}
}

type complexDrawer struct {
	f         ComplexFunc
	precision int
	param     *Window
}

// NewComplexDrawer connects consecutive samples of f with interpolated
// lines, precision samples and precision steps per line. If param is nil
// the parameter follows the viewport's sample window, otherwise it is the
// fixed range [param.Min, param.Max).
func NewComplexDrawer(f ComplexFunc, precision int, param *Window) Drawer {
	return &complexDrawer{f: f, precision: precision, param: param}
}

func (d *complexDrawer) window(v Viewport) Window {
	if d.param != nil {
		return *d.param
	}
	return SampleWindow(v)
}

func (d *complexDrawer) Points(v Viewport) iter.Seq2[float64, Point] {
	s := NewSamples(d.window(v), d.precision)
	return func(yield func(float64, Point) bool) {
		for t := range s.Values() {
			z := d.f(t)
			if !yield(t, Point{X: real(z), Y: imag(z)}) {
				return
			}
		}
	}
}

func (d *complexDrawer) Draw(c Canvas, v Viewport, col RGB) {
	var prev Point
	have := false
	for _, p := range d.Points(v) {
		if !p.IsFinite() {
			have = false
			continue
		}
		if have {
			DrawLine(c, v, prev, p, d.precision, col)
		} else {
			Plot(c, v, p, col)
		}
		prev, have = p, true
	}
}
