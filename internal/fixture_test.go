package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg pixtures and outputs point lists. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into CCW points. If anything goes wrong,
// it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}

	// Ensure that the polygon is CCW
	return CounterClockwise(points)
}

// Some ad hoc code specified fixtures

func Square() []Point {
	return []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
}

// The dart from the classic ear clipping walkthrough. Its reflex vertex sits
// exactly on the chords of vertices 0 and 1, so it never blocks them.
func Dart() []Point {
	return []Point{{0, 0}, {4, 0}, {4, 4}, {2, 2}, {0, 4}}
}

// Like the dart, but the notch is deep enough that vertices 0 and 1 are
// blocked by it.
func Notch() []Point {
	return []Point{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}
}

func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// A star shaped polygon with n vertices at random radii. Each vertex gets its
// own angular sector, so the polygon is always simple and counterclockwise.
func RandomStarShape(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	sector := 2 * math.Pi / float64(n)
	for i := range points {
		angle := sector * (float64(i) + 0.2 + 0.6*r.Float64())
		radius := 1 + 9*r.Float64()
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// A convex polygon with n vertices at random angles on a circle.
func RandomConvex(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	sector := 2 * math.Pi / float64(n)
	for i := range points {
		angle := sector * (float64(i) + 0.1 + 0.8*r.Float64())
		points[i] = Point{X: 10 * math.Cos(angle), Y: 10 * math.Sin(angle)}
	}
	return points
}
