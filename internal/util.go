package internal

import "math"

// Tolerance for comparisons in tests and debug output. The classification
// tests themselves are exact sign tests and never use it.
const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Twice the signed area of the triangle abc. The operands are the vector from a
// to c against the vector from a to b, arranged so that a counterclockwise
// (left) turn a->b->c is positive.
func Turn(a, b, c Point) float64 {
	return (c.Y-a.Y)*(b.X-a.X) - (c.X-a.X)*(b.Y-a.Y)
}

// Strict left turn. Collinear points are not a left turn.
func IsLeftTurn(a, b, c Point) bool {
	return Turn(a, b, c) > 0
}

func (t *Triangle) SignedArea() float64 {
	return Turn(t.A, t.B, t.C) / 2
}

// Whether p lies strictly inside the triangle. The triangle must be
// counterclockwise; points on an edge or corner are outside.
func (t *Triangle) Contains(p Point) bool {
	return IsLeftTurn(p, t.A, t.B) &&
		IsLeftTurn(p, t.B, t.C) &&
		IsLeftTurn(p, t.C, t.A)
}

func (d Diagonal) Length() float64 {
	return math.Hypot(d.End.X-d.Start.X, d.End.Y-d.Start.Y)
}

// Shoelace area of a closed ring of points.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func Reverse(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		result = append(result, points[i])
	}
	return result
}

// Return the points in counterclockwise order, reversing a clockwise ring.
// Input files don't agree on a winding, so readers use this before clipping.
func CounterClockwise(points []Point) []Point {
	if SignedArea(points) < 0 {
		return Reverse(points)
	}
	return points
}

func IsCCW(s Shape) bool {
	return s.SignedArea() > 0
}

func IsCW(s Shape) bool {
	return s.SignedArea() < 0
}

func Area(s Shape) float64 {
	return math.Abs(s.SignedArea())
}
