package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/internal/dbg"
)

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Short classification tag: "ear", "reflex" or "convex".
func (v Vertex) Class() string {
	switch {
	case v.Ear:
		return "ear"
	case v.Reflex:
		return "reflex"
	}
	return "convex"
}

// Coordinates colored by classification. Ears are green, reflex vertices red.
func (v Vertex) String() string {
	s := v.Point.String()
	switch {
	case v.Ear:
		return aurora.Green(s).String()
	case v.Reflex:
		return aurora.Red(s).String()
	}
	return s
}

// The readable debug name of the vertex, colored like String.
func (v Vertex) DbgName() string {
	name := dbg.Name(v.Point)
	switch {
	case v.Ear:
		name = aurora.Green(name).String()
	case v.Reflex:
		name = aurora.Red(name).String()
	}
	return name
}

func (d Diagonal) String() string {
	return fmt.Sprintf("%s-%s", d.Start, d.End)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("<%s %s %s>", t.A, t.B, t.C)
}

func (p *Polygon) String() string {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = v.String()
	}
	return fmt.Sprintf("Polygon %s [%s]", aurora.Cyan(p.State()), strings.Join(parts, " "))
}
