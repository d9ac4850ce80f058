// Demo of ear clipping on a polygon read from a file or stdin. Polygons should
// be simple. Clockwise input is reversed before clipping. None of the other
// requirements are validated.
package main

import (
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("earclip", "Step through ear clipping triangulation of a simple polygon.")

	inputFlag  = app.Flag("input", "Polygon file. Reads stdin when omitted.").Short('i').Envar("EARCLIP_INPUT").String()
	formatFlag = app.Flag("format", "Input format.").Short('f').Default("xy").Envar("EARCLIP_FORMAT").Enum("xy", "geojson", "svg")
	stepsFlag  = app.Flag("steps", "Number of ears to clip. Zero clips until one triangle remains.").Short('n').Default("0").Envar("EARCLIP_STEPS").Int()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("earclip: ")

	var err error
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case runCmd.FullCommand():
		err = run()
	case dumpCmd.FullCommand():
		err = dump()
	case drawCmd.FullCommand():
		err = draw()
	}
	if err != nil {
		log.Fatal(err)
	}
}
