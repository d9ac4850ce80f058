package main

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

var (
	drawCmd    = app.Command("draw", "Render the polygon, its vertex classes and diagonals to a PNG.")
	drawOut    = drawCmd.Flag("out", "PNG file to write.").Short('o').Default("earclip.png").Envar("EARCLIP_OUT").String()
	drawScale  = drawCmd.Flag("scale", "Pixels per unit.").Default("50").Envar("EARCLIP_SCALE").Float64()
	drawImgcat = drawCmd.Flag("imgcat", "Print the image to the terminal (iTerm only).").Bool()
)

func draw() error {
	session, err := clip()
	if err != nil {
		return err
	}

	if err := session.Polygon().DrawPNG(*drawOut, *drawScale, session.Diagonals); err != nil {
		return err
	}
	if *drawImgcat {
		imgcat.CatFile(*drawOut, os.Stdout)
	}
	return nil
}
