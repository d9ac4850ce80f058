package internal

// Clip ears until a single triangle is left. The result holds every clipped ear
// followed by the final triangle, and the diagonals in the order they were
// exposed.
func Triangulate(points []Point) ([]*Triangle, []Diagonal) {
	if len(points) < 3 {
		throw(ErrDegenerate, "cannot triangulate polygon with point count: %d", len(points))
	}

	polygon := Begin(points)
	triangles := make([]*Triangle, 0, len(points)-2)
	diagonals := make([]Diagonal, 0, len(points)-3)
	for {
		diagonal, triangle, ok := polygon.StepTriangle()
		if !ok {
			break
		}
		triangles = appendTriangle(triangles, &triangle)
		diagonals = append(diagonals, diagonal)
	}

	final := polygon.EarTriangle(1)
	return appendTriangle(triangles, &final), diagonals
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles []*Triangle, tri *Triangle) []*Triangle {
	if IsCW(tri) {
		fatalf("triangle is clockwise: %v", tri)
	}

	return append(triangles, tri)
}
