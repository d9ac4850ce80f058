package internal

// A Session pairs the points being edited with the polygon built from them and
// the diagonals clipped so far. Every edit rebuilds the polygon and clears the
// diagonals, so the diagonals always belong to the current polygon.
type Session struct {
	points    []Point
	polygon   *Polygon
	Diagonals []Diagonal
	Triangles []Triangle
}

func NewSession(points []Point) *Session {
	s := &Session{}
	s.Reset(points)
	return s
}

// Replace the points and start over.
func (s *Session) Reset(points []Point) {
	s.points = append([]Point(nil), points...)
	s.rebuild()
}

// Append a point to the boundary and start over.
func (s *Session) Add(point Point) {
	s.points = append(s.points, point)
	s.rebuild()
}

// Drop the most recently added point and start over. Returns false if there
// were no points.
func (s *Session) RemoveLast() bool {
	if len(s.points) == 0 {
		return false
	}
	s.points = s.points[:len(s.points)-1]
	s.rebuild()
	return true
}

func (s *Session) rebuild() {
	s.polygon = Begin(s.points)
	s.Diagonals = nil
	s.Triangles = nil
}

// Clip one ear, recording its diagonal and triangle. Panics like Polygon.Step.
func (s *Session) Step() (Diagonal, bool) {
	diagonal, triangle, ok := s.polygon.StepTriangle()
	if ok {
		s.Diagonals = append(s.Diagonals, diagonal)
		s.Triangles = append(s.Triangles, triangle)
	}
	return diagonal, ok
}

// Whether no further step can produce a diagonal.
func (s *Session) Done() bool {
	return s.polygon.State() != Classified
}

func (s *Session) Polygon() *Polygon {
	return s.polygon
}

// The points as last edited, not the remaining vertices.
func (s *Session) Points() []Point {
	return append([]Point(nil), s.points...)
}
