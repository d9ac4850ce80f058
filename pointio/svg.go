package pointio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
)

// Read the points of the first <polygon> element in an SVG document. Points
// may be separated by whitespace or commas, as SVG allows.
func ReadSVG(in io.Reader) ([]earclip.Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found")
	}

	fields := strings.FieldsFunc(polygons[0].Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(fields))
	}

	points := make([]earclip.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, earclip.Point{X: x, Y: y})
	}
	return points, nil
}
