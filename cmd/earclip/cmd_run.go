package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/pointio"
	"github.com/pkg/errors"
)

var (
	runCmd     = app.Command("run", "Clip ears and print each diagonal.").Default()
	runGeoJSON = runCmd.Flag("geojson", "Also write the result as GeoJSON to this file.").Envar("EARCLIP_GEOJSON").String()
	runXY      = runCmd.Flag("remaining", "Write the remaining vertices as \"x y\" lines to this file.").Envar("EARCLIP_REMAINING").String()
)

func run() error {
	session, err := clip()
	if session != nil {
		for i, d := range session.Diagonals {
			fmt.Printf("%3d %s %s\n", i+1, aurora.Cyan(d), aurora.Faint(fmt.Sprintf("%.4g", d.Length())))
		}
	}
	if err != nil {
		return err
	}

	polygon := session.Polygon()
	fmt.Println(polygon)

	if *runXY != "" {
		if err := writeFile(*runXY, func(f *os.File) error {
			return pointio.WriteXY(f, polygon.Points())
		}); err != nil {
			return err
		}
	}
	if *runGeoJSON != "" {
		if err := writeFile(*runGeoJSON, func(f *os.File) error {
			return pointio.WriteGeoJSON(f, polygon, session.Diagonals)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
