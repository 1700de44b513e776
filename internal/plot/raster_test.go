package plot

import (
	"iter"
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type pixel struct{ x, y int }

// recorder keeps every write in order, including clipped ones.
type recorder struct {
	writes []pixel
}

func (r *recorder) Set(x, y int, _ RGB) { r.writes = append(r.writes, pixel{x, y}) }

type nopDrawer struct{}

func (nopDrawer) Draw(Canvas, Viewport, RGB) {}

func (nopDrawer) Points(Viewport) iter.Seq2[float64, Point] {
	return func(func(float64, Point) bool) {}
}

func TestSamples_HalfOpen(t *testing.T) {
	s := NewSamples(Window{0, 1}, 4)
	got := slices.Collect(s.Values())
	want := []float64{0, 0.25, 0.5, 0.75}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}

	again := slices.Collect(s.Values())
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}

	if n := len(slices.Collect(NewSamples(Window{0, 1}, 0).Values())); n != 0 {
		t.Errorf("N=0 produced %d samples", n)
	}
}

func TestSampleWindow_ScalesWithZoom(t *testing.T) {
	v := NewViewport(20)
	if w := SampleWindow(v); w != (Window{-20, 20}) {
		t.Errorf("SampleWindow at zoom 1 = %v, want [-20, 20)", w)
	}
	v.Center = Pt(5, 0)
	v.ZoomIn()
	if w := SampleWindow(v); w != (Window{-5, 15}) {
		t.Errorf("SampleWindow at zoom 2 = %v, want [-5, 15)", w)
	}
}

func TestLine_Endpoints(t *testing.T) {
	got := slices.Collect(Line(Pt(0, 0), Pt(10, 0), 10))
	want := make([]Point, 10)
	for i := range want {
		want[i] = Pt(float64(i), 0)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Line mismatch (-want +got):\n%s", diff)
	}

	for i := 1; i < len(got); i++ {
		if got[i].X < got[i-1].X {
			t.Errorf("x decreased at %d: %g < %g", i, got[i].X, got[i-1].X)
		}
	}
	if last := got[len(got)-1].X; last >= 10 {
		t.Errorf("last x = %g, the far endpoint must not be produced", last)
	}
}

func TestLine_Degenerate(t *testing.T) {
	a := Pt(1.5, -2)
	got := slices.Collect(Line(a, a, 7))
	if len(got) != 7 {
		t.Fatalf("got %d points, want 7", len(got))
	}
	for _, p := range got {
		if p != a {
			t.Errorf("degenerate line produced %v, want %v", p, a)
		}
	}
	if n := len(slices.Collect(Line(a, Pt(3, 3), 0))); n != 0 {
		t.Errorf("n=0 produced %d points", n)
	}
}

func TestPlot_ClipsFarPoints(t *testing.T) {
	v := NewViewport(20)
	fb := NewFramebuffer(20, 20)
	before := append([]byte(nil), fb.Bytes()...)

	for _, p := range []Point{Pt(1e6, 0), Pt(0, -1e6), Pt(-1e300, 1e300), Pt(10, 0)} {
		Plot(fb, v, p, Black)
	}
	if string(before) != string(fb.Bytes()) {
		t.Error("points outside the window changed the framebuffer")
	}
}

func TestRealDrawer_Parabola(t *testing.T) {
	const dim = 20
	v := NewViewport(dim)
	d := NewRealDrawer(func(x float64) float64 { return x * x }, 1000)

	fb := NewFramebuffer(dim, dim)
	d.Draw(fb, v, Black)

	if fb.RGBAt(dim/2, dim/2) != Black {
		t.Error("vertex pixel not plotted")
	}

	mid := dim / 2
	rows := 0
	for y := 0; y < dim; y++ {
		left, right := -1, -1
		for x := 0; x < dim; x++ {
			if fb.RGBAt(x, y) != Black {
				continue
			}
			if y > mid {
				t.Errorf("pixel (%d, %d) lies below the y=0 row", x, y)
			}
			if left < 0 {
				left = x
			}
			right = x
		}
		if left < 0 {
			continue
		}
		rows++
		if d := (mid - left) - (right - mid); d < -1 || d > 1 {
			t.Errorf("row %d spans [%d, %d], not symmetric about column %d", y, left, right, mid)
		}
	}
	if rows != mid+1 {
		t.Errorf("parabola covers %d rows, want %d", rows, mid+1)
	}
}

func TestRealDrawer_SkipsNonFinite(t *testing.T) {
	v := NewViewport(10)
	d := NewRealDrawer(func(x float64) float64 { return math.Log(x) }, 100)

	rec := &recorder{}
	d.Draw(rec, v, Black)
	for _, w := range rec.writes {
		if w.x < 0 || w.y < 0 || w.x >= 10 || w.y >= 10 {
			t.Errorf("write outside the grid: %v", w)
		}
	}
}

func TestComplexDrawer_Circle(t *testing.T) {
	const dim = 40
	v := NewViewport(dim)
	v.ZoomIn()
	v.ZoomIn()
	v.ZoomIn()

	param := &Window{0, 2 * math.Pi}
	d := NewComplexDrawer(func(t float64) complex128 { return cmplx.Exp(complex(0, t)) }, 1000, param)

	rec := &recorder{}
	d.Draw(rec, v, Black)
	if len(rec.writes) == 0 {
		t.Fatal("nothing plotted")
	}

	mid := float64(dim / 2)
	for i, w := range rec.writes {
		r := math.Hypot(float64(w.x)-mid, float64(w.y)-mid)
		if math.Abs(r-v.Zoom) > 1 {
			t.Fatalf("write %d at %v has radius %g, want about %g", i, w, r, v.Zoom)
		}
		if i == 0 {
			continue
		}
		prev := rec.writes[i-1]
		if dx, dy := w.x-prev.x, w.y-prev.y; dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("jump from %v to %v", prev, w)
		}
	}

	// The curve should close: both the rightmost and leftmost points of the
	// circle are reached.
	hasPixel := func(p pixel) bool { return slices.Contains(rec.writes, p) }
	if !hasPixel(pixel{28, 20}) || !hasPixel(pixel{12, 20}) {
		t.Error("circle does not reach (28, 20) and (12, 20)")
	}
}

func TestComplexDrawer_FollowsViewportWindow(t *testing.T) {
	v := NewViewport(20)
	v.Center = Pt(3, 0)
	d := NewComplexDrawer(func(t float64) complex128 { return complex(t, 0) }, 8, nil)

	var ts []float64
	for param := range d.Points(v) {
		ts = append(ts, param)
	}
	want := []float64{-17, -12, -7, -2, 3, 8, 13, 18}
	if diff := cmp.Diff(want, ts); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	v := NewViewport(30)
	v.Center, v.Zoom, v.AxisEnabled = Pt(0.3, -0.1), 4, true
	r := NewRenderer(NewComplexDrawer(func(t float64) complex128 {
		return complex(t, 0) * cmplx.Exp(complex(0, t))
	}, 500, nil))

	first := append([]byte(nil), r.Render(v).Bytes()...)
	second := r.Render(v).Bytes()
	if string(first) != string(second) {
		t.Error("redraw with an unchanged viewport produced different pixels")
	}
}

func TestRenderer_ClearsBetweenFrames(t *testing.T) {
	v := NewViewport(20)
	r := NewRenderer(NewRealDrawer(func(x float64) float64 { return x }, 200))

	r.Render(v)
	v.Pan(0, 1, DefaultPanStep)
	moved := append([]byte(nil), r.Render(v).Bytes()...)

	fresh := NewRenderer(NewRealDrawer(func(x float64) float64 { return x }, 200))
	if string(moved) != string(fresh.Render(v).Bytes()) {
		t.Error("previous frame leaked into the next one")
	}
}

func TestDrawAxes(t *testing.T) {
	v := NewViewport(20)
	v.AxisEnabled = true
	fb := NewRenderer(nopDrawer{}).Render(v)

	for i := 0; i < 20; i++ {
		if fb.RGBAt(10, i) != Black || fb.RGBAt(i, 10) != Black {
			t.Fatalf("axis lines missing at %d", i)
		}
	}
	for _, p := range []pixel{{9, 5}, {11, 5}, {9, 15}, {11, 0}, {5, 9}, {5, 11}, {0, 11}, {15, 9}} {
		if fb.RGBAt(p.x, p.y) != Black {
			t.Errorf("tick missing at %v", p)
		}
	}
	for _, p := range []pixel{{9, 6}, {11, 4}, {6, 9}, {4, 11}} {
		if fb.RGBAt(p.x, p.y) != White {
			t.Errorf("unexpected tick at %v", p)
		}
	}
}

func TestDrawAxes_FollowsPan(t *testing.T) {
	v := NewViewport(20)
	v.AxisEnabled = true
	v.Center = Pt(3, 2)
	fb := NewRenderer(nopDrawer{}).Render(v)

	if fb.RGBAt(7, 0) != Black || fb.RGBAt(7, 19) != Black {
		t.Error("vertical axis not at column 7")
	}
	if fb.RGBAt(0, 12) != Black || fb.RGBAt(19, 12) != Black {
		t.Error("horizontal axis not at row 12")
	}
	if fb.RGBAt(8, 7) != Black || fb.RGBAt(2, 13) != Black {
		t.Error("ticks not aligned to the origin")
	}

	v.Center = Pt(1000, 0)
	fb = NewRenderer(nopDrawer{}).Render(v)
	// Horizontal axis plus ticks at columns 0, 5, 10, 15 on both sides.
	if n := fb.Count(Black); n != 20+4*2 {
		t.Errorf("with the origin off-screen only the horizontal axis should show, got %d black pixels", n)
	}
}

func TestDrawAxes_FarOrigin(t *testing.T) {
	v := NewViewport(20)
	v.AxisEnabled = true
	v.Center = Pt(1e13, 0)
	fb := NewRenderer(nopDrawer{}).Render(v)

	for x := 0; x < v.Dim; x++ {
		if fb.RGBAt(x, v.Dim/2) != Black {
			t.Fatalf("horizontal axis missing at (%d, %d)", x, v.Dim/2)
		}
	}
	if n := fb.Count(Black); n != v.Dim {
		t.Errorf("expected only the horizontal axis, got %d black pixels", n)
	}

	v.Center = Pt(0, -1e13)
	fb = NewRenderer(nopDrawer{}).Render(v)
	for y := 0; y < v.Dim; y++ {
		if fb.RGBAt(v.Dim/2, y) != Black {
			t.Fatalf("vertical axis missing at (%d, %d)", v.Dim/2, y)
		}
	}
}
