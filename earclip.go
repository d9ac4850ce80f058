// Step-by-step ear clipping triangulation for Go.
//
// This package classifies the vertices of a simple polygon as reflex, convex
// and ear, then clips one ear at a time, reporting the diagonal each clip
// exposes. Only the two vertices next to a clipped ear are reclassified, so a
// caller can drive the triangulation one step per frame or per keypress and
// draw the classification in between.
package earclip

import "github.com/osuushi/earclip/internal"

type Point = internal.Point
type Vertex = internal.Vertex
type Diagonal = internal.Diagonal
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Session = internal.Session
type State = internal.State

const (
	Uninitialized   = internal.Uninitialized
	Underdetermined = internal.Underdetermined
	Classified      = internal.Classified
	FinalTriangle   = internal.FinalTriangle
)

// Returned by Step when a polygon with more than three vertices has no ear
// left. This only happens for input that is not a simple counterclockwise
// polygon.
var ErrInvariantViolation = internal.ErrInvariantViolation

// Returned by Triangulate for fewer than three points.
var ErrDegenerate = internal.ErrDegenerate

// Classify a polygon. The points must form a simple polygon in counterclockwise
// order, but this is not validated. Fewer than three points are accepted; the
// result simply can't be stepped.
func Begin(points []Point) *Polygon {
	return internal.Begin(points)
}

// Return the points in counterclockwise order, reversing them if they wind
// clockwise.
func CounterClockwise(points []Point) []Point {
	return internal.CounterClockwise(points)
}

// Start an editable session on the given points.
func NewSession(points []Point) *Session {
	return internal.NewSession(points)
}

// Clip the next ear of the polygon in place. When three or fewer vertices
// remain, ok is false and nothing changes. The error wraps
// ErrInvariantViolation if no ear can be found.
func Step(polygon *Polygon) (diagonal Diagonal, ok bool, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			diagonal, ok = Diagonal{}, false
			err = recoveredErr
		}
	}()
	diagonal, ok = polygon.Step()
	return diagonal, ok, nil
}

// Like Step, for a session, so the diagonal is also recorded.
func StepSession(session *Session) (diagonal Diagonal, ok bool, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			diagonal, ok = Diagonal{}, false
			err = recoveredErr
		}
	}()
	diagonal, ok = session.Step()
	return diagonal, ok, nil
}

// Run ear clipping to completion. The triangles are the clipped ears in order,
// followed by the final triangle; the diagonals are in the order they were
// exposed.
func Triangulate(points []Point) (triangles []*Triangle, diagonals []Diagonal, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			triangles, diagonals = nil, nil
			err = recoveredErr
		}
	}()
	triangles, diagonals = internal.Triangulate(points)
	return triangles, diagonals, nil
}
