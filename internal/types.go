package internal

type Point struct {
	X float64
	Y float64
}

// A vertex of the polygon being clipped. Vertices are stored by value in the
// polygon's slice and only ever addressed by index, so the flags below are
// owned by exactly one polygon.
type Vertex struct {
	Point
	Reflex bool
	Ear    bool
}

// The edge exposed when an ear is clipped: it joins the two neighbors of the
// removed vertex.
type Diagonal struct {
	Start Point
	End   Point
}

type Triangle struct {
	A, B, C Point
}

// Anything with an orientation. Positive signed area means counterclockwise.
type Shape interface {
	SignedArea() float64
}
