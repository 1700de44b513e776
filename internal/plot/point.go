package plot

import (
	"fmt"
	"math"
)

// Point is a coordinate pair in function space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub computes p-o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between p (t=0) and o (t=1).
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + t*(o.X-p.X),
		Y: p.Y + t*(o.Y-p.Y),
	}
}

// DistanceX returns the signed horizontal offset from p to o.
func (p Point) DistanceX(o Point) float64 {
	return o.X - p.X
}

// DistanceY returns the signed vertical offset from p to o.
func (p Point) DistanceY(o Point) float64 {
	return o.Y - p.Y
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
