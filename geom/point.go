package geom

import "math"

// Point is a position (or displacement) in the 2-D plane.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum a+b.
func (a Point) Add(b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

// Sub returns the component-wise difference a−b.
func (a Point) Sub(b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

// Scale returns a with both components multiplied by s.
func (a Point) Scale(s float64) Point {
	return Point{a.X * s, a.Y * s}
}

// Length returns the Euclidean magnitude of a interpreted as a vector.
// math.Hypot is used for robustness against intermediate overflow.
func (a Point) Length() float64 {
	return math.Hypot(a.X, a.Y)
}

// Distance returns the Euclidean distance between a and b.
func (a Point) Distance(b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
