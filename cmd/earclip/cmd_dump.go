package main

import (
	"fmt"

	"github.com/kr/pretty"
)

var dumpCmd = app.Command("dump", "Print the classified polygon after clipping.")

func dump() error {
	session, err := clip()
	if err != nil {
		return err
	}

	fmt.Printf("%# v\n", pretty.Formatter(session.Polygon().Vertices))
	fmt.Printf("%# v\n", pretty.Formatter(session.Diagonals))
	return nil
}
