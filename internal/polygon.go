package internal

// Incremental ear clipping. A polygon is a cyclic sequence of vertices, each
// carrying a reflex flag and an ear flag. Begin classifies every vertex once;
// each Step then clips the first ear, records the diagonal it exposes, and
// reclassifies only the two vertices that were adjacent to it.
//
// The polygon must be simple and counterclockwise. Degenerate input (repeated
// points, collinear triples, self intersections) is not validated.

type State int

const (
	// Zero value Polygon, before Begin.
	Uninitialized State = iota
	// Fewer than three vertices. Nothing can be clipped.
	Underdetermined
	// More than three vertices, so at least one more step is possible.
	Classified
	// Exactly three vertices remain. This triangle is never stepped.
	FinalTriangle
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Underdetermined:
		return "underdetermined"
	case Classified:
		return "classified"
	case FinalTriangle:
		return "final triangle"
	}
	return "unknown"
}

type Polygon struct {
	Vertices []Vertex
	begun    bool
}

// Build a classified polygon from raw points. The points are copied, so the
// caller's slice is never touched by later steps. Any number of points is
// accepted; with fewer than three, every flag stays false.
func Begin(points []Point) *Polygon {
	polygon := &Polygon{
		Vertices: make([]Vertex, len(points)),
		begun:    true,
	}
	for i, p := range points {
		polygon.Vertices[i] = Vertex{Point: p}
	}
	polygon.Reclassify()
	return polygon
}

// Run both classification passes over every vertex from scratch. Reflex flags
// are all settled before any ear is tested, since the ear test reads them.
func (p *Polygon) Reclassify() {
	if len(p.Vertices) < 3 {
		return
	}
	for i := range p.Vertices {
		p.Vertices[i].Reflex = p.IsReflex(i)
	}
	for i := range p.Vertices {
		p.Vertices[i].Ear = p.IsEar(i)
	}
}

func (p *Polygon) Len() int {
	return len(p.Vertices)
}

func (p *Polygon) State() State {
	switch n := len(p.Vertices); {
	case !p.begun:
		return Uninitialized
	case n < 3:
		return Underdetermined
	case n == 3:
		return FinalTriangle
	default:
		return Classified
	}
}

// The remaining points in order.
func (p *Polygon) Points() []Point {
	points := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		points[i] = v.Point
	}
	return points
}

func (p *Polygon) SignedArea() float64 {
	return SignedArea(p.Points())
}

// The triangle formed by the vertex at i and its two neighbors, in polygon
// order.
func (p *Polygon) EarTriangle(i int) Triangle {
	n := len(p.Vertices)
	return Triangle{
		A: p.Vertices[CircularIndex(i-1, n)].Point,
		B: p.Vertices[i].Point,
		C: p.Vertices[CircularIndex(i+1, n)].Point,
	}
}

// A vertex is convex only if its neighbors make a strict left turn through it.
// Collinear vertices therefore count as reflex.
func (p *Polygon) IsReflex(i int) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	tri := p.EarTriangle(i)
	return !IsLeftTurn(tri.A, tri.B, tri.C)
}

// A convex vertex is an ear when no other reflex vertex lies strictly inside
// its triangle. Convex vertices are skipped: if any vertex of a simple polygon
// is inside the triangle, some reflex vertex is too. This reads the reflex
// flags as stored, not recomputed.
func (p *Polygon) IsEar(i int) bool {
	if len(p.Vertices) < 3 || p.Vertices[i].Reflex {
		return false
	}
	tri := p.EarTriangle(i)
	for j, other := range p.Vertices {
		if j == i || !other.Reflex {
			continue
		}
		if tri.Contains(other.Point) {
			return false
		}
	}
	return true
}

// Index of the first vertex flagged as an ear, or -1.
func (p *Polygon) FirstEar() int {
	for i, v := range p.Vertices {
		if v.Ear {
			return i
		}
	}
	return -1
}

// Clip the next ear. Returns false when three or fewer vertices remain. Panics
// with a TriangulateError wrapping ErrInvariantViolation if there are more than
// three vertices but none is an ear.
func (p *Polygon) Step() (Diagonal, bool) {
	diagonal, _, ok := p.StepTriangle()
	return diagonal, ok
}

// Like Step, but also returns the ear triangle that was clipped off.
func (p *Polygon) StepTriangle() (Diagonal, Triangle, bool) {
	n := len(p.Vertices)
	if n <= 3 {
		return Diagonal{}, Triangle{}, false
	}

	ear := p.FirstEar()
	if ear < 0 {
		throw(ErrInvariantViolation, "no ear among %d vertices", n)
	}

	triangle := p.EarTriangle(ear)
	diagonal := Diagonal{Start: triangle.A, End: triangle.C}

	// Ordered erase. Adjacency is positional, so the order of the survivors must
	// not change.
	p.Vertices = append(p.Vertices[:ear], p.Vertices[ear+1:]...)
	n--

	// The old neighbors now sit on either side of the gap.
	before := CircularIndex(ear-1, n)
	after := CircularIndex(ear, n)
	sites := [2]int{before, after}

	// Only a neighbor that was reflex gets its reflex flag retested. A convex
	// neighbor keeps its flag as is.
	for _, i := range sites {
		if p.Vertices[i].Reflex {
			p.Vertices[i].Reflex = p.IsReflex(i)
		}
	}
	for _, i := range sites {
		p.Vertices[i].Ear = p.IsEar(i)
	}

	return diagonal, triangle, true
}
