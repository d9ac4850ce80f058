package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a full ear clipping run is valid. The rules are:
// 1. There are n-2 triangles and n-3 diagonals.
// 2. Every triangle is counterclockwise and has nonzero area.
// 3. Every diagonal is an edge of the corresponding triangle.
// 4. The set of points in the triangles equals the set of points in the polygon.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, points []Point, triangles []*Triangle, diagonals []Diagonal) {
	polygon := Begin(points)
	if !IsCCW(polygon) {
		t.Fatal("Polygon is not counterclockwise")
	}

	require.Len(t, triangles, len(points)-2, "one triangle per clipped vertex, plus the final triangle")
	require.Len(t, diagonals, len(points)-3, "one diagonal per step")

	polyPoints := make(map[Point]struct{})
	for _, p := range points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[Point]struct{})

	var triangleArea float64
	for i, tri := range triangles {
		require.True(t, IsCCW(tri), "clockwise or flat triangle: %s", tri)
		triangleArea += Area(tri)
		for _, p := range []Point{tri.A, tri.B, tri.C} {
			trianglePoints[p] = struct{}{}
		}

		if i < len(diagonals) {
			// The diagonal joins the ear's neighbors, which are A and C
			assert.Equal(t, Diagonal{tri.A, tri.C}, diagonals[i], "diagonal %d does not close its ear", i)
		}
	}

	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")
	require.InDelta(t, Area(polygon), triangleArea, 1e-6, "sum of the areas of all triangles is equal to the area of the polygon")
}

// Step a polygon until it stops, failing the test on a panic. Returns the
// diagonals.
func stepToEnd(t *testing.T, polygon *Polygon) []Diagonal {
	var diagonals []Diagonal
	require.NotPanics(t, func() {
		for {
			before := polygon.Len()
			diagonal, ok := polygon.Step()
			if !ok {
				assert.Equal(t, before, polygon.Len(), "a refused step must not remove anything")
				return
			}
			assert.Equal(t, before-1, polygon.Len(), "each step removes exactly one vertex")
			diagonals = append(diagonals, diagonal)
		}
	})
	return diagonals
}

// Check the stored flags against a fresh run of the classification tests.
func assertClassificationConsistent(t *testing.T, polygon *Polygon) {
	for i, v := range polygon.Vertices {
		assert.Equal(t, polygon.IsReflex(i), v.Reflex, "reflex flag of vertex %d %s", i, v.Point)
		assert.Equal(t, polygon.IsEar(i), v.Ear, "ear flag of vertex %d %s", i, v.Point)
		if v.Reflex {
			assert.False(t, v.Ear, "reflex vertex %d is flagged as an ear", i)
		}
	}
}
