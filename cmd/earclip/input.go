package main

import (
	"io"
	"log"
	"os"

	"github.com/osuushi/earclip"
	"github.com/osuushi/earclip/pointio"
	"github.com/pkg/errors"
)

func readPoints() ([]earclip.Point, error) {
	var in io.Reader = os.Stdin
	if *inputFlag != "" {
		f, err := os.Open(*inputFlag)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	var points []earclip.Point
	switch *formatFlag {
	case "geojson":
		p, err := pointio.ReadGeoJSON(in)
		if err != nil {
			return nil, err
		}
		points = p
	case "svg":
		p, err := pointio.ReadSVG(in)
		if err != nil {
			return nil, err
		}
		points = p
	default:
		polygons, err := pointio.ReadXY(in)
		if err != nil {
			return nil, err
		}
		if len(polygons) == 0 {
			return nil, errors.New("no points read")
		}
		if len(polygons) > 1 {
			log.Printf("read %d polygons, using the first", len(polygons))
		}
		points = polygons[0]
	}

	return earclip.CounterClockwise(points), nil
}

// Read the polygon and clip the requested number of ears.
func clip() (*earclip.Session, error) {
	points, err := readPoints()
	if err != nil {
		return nil, err
	}

	session := earclip.NewSession(points)
	for i := 0; *stepsFlag == 0 || i < *stepsFlag; i++ {
		_, ok, err := earclip.StepSession(session)
		if err != nil {
			return session, errors.Wrapf(err, "step %d", i+1)
		}
		if !ok {
			break
		}
	}
	return session, nil
}
