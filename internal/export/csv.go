package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/grapher/internal/plot"
)

// Sample is one evaluated point together with the input that produced it.
type Sample struct {
	T     float64
	Point plot.Point
}

// Collect evaluates d over v.
func Collect(d plot.Drawer, v plot.Viewport) []Sample {
	var out []Sample
	for t, p := range d.Points(v) {
		out = append(out, Sample{T: t, Point: p})
	}
	return out
}

// Points drops the inputs.
func Points(samples []Sample) []plot.Point {
	pts := make([]plot.Point, len(samples))
	for i, s := range samples {
		pts[i] = s.Point
	}
	return pts
}

// WriteSamplesCSV writes a t,x,y header followed by one row per sample.
func WriteSamplesCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "x", "y"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.Point.X, 'f', 6, 64),
			strconv.FormatFloat(s.Point.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
