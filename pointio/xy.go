// Readers and writers for the polygons fed to earclip and the diagonals it
// produces.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y", with each polygon separated
// by an extra newline. Lines starting with # are ignored.
func ReadXY(in io.Reader) ([][]earclip.Point, error) {
	polygons := [][]earclip.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []earclip.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []earclip.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (earclip.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return earclip.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return earclip.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return earclip.Point{}, errors.Wrap(err, "y")
	}
	return earclip.Point{X: x, Y: y}, nil
}

// Write points in the format read by ReadXY.
func WriteXY(out io.Writer, points []earclip.Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		w.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "writing points")
}
