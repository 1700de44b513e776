package plot

import "iter"

// Samples is a restartable sequence of N evenly spaced values over
// [Start, End). The right endpoint is never produced.
type Samples struct {
	Start, End float64
	N          int
}

// SampleWindow returns the canonical sample range for a viewport:
// center.X +- Dim/zoom. It is twice the visible half-width, so curves that
// enter the view from outside are still sampled.
func SampleWindow(v Viewport) Window {
	r := float64(v.Dim) / v.Zoom
	return Window{v.Center.X - r, v.Center.X + r}
}

func NewSamples(w Window, n int) Samples {
	return Samples{Start: w.Min, End: w.Max, N: n}
}

// Spacing is the distance between consecutive samples.
func (s Samples) Spacing() float64 {
	if s.N < 1 {
		return 0
	}
	return (s.End - s.Start) / float64(s.N)
}

// At returns the i-th sample.
func (s Samples) At(i int) float64 {
	return s.Start + float64(i)*s.Spacing()
}

// All yields (index, value) pairs. Each call starts over.
func (s Samples) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < s.N; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values yields the sample values only.
func (s Samples) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, t := range s.All() {
			if !yield(t) {
				return
			}
		}
	}
}
