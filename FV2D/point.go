package FV2D

import "math"

// Point is an immutable coordinate triple, used for vertex positions,
// centroids and area vectors alike.
type Point struct {
	X, Y, Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point) Scale(a float64) Point {
	return Point{X: a * p.X, Y: a * p.Y, Z: a * p.Z}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Coordinates returns the point as a slice, x first.
func (p Point) Coordinates() []float64 {
	return []float64{p.X, p.Y, p.Z}
}
