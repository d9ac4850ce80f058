package internal

import (
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape so that vertex markers at the edge stay visible
const dbgDrawPadding = 40

const vertexRadius = 4

// Render the polygon with its vertex classes and the given diagonals, scaled so
// that one unit is scale pixels.
func (p *Polygon) Draw(scale float64, diagonals []Diagonal) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, v := range p.Vertices {
		extend(v.Point)
	}
	for _, d := range diagonals {
		extend(d.Start)
		extend(d.End)
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	if len(p.Vertices) > 0 {
		c.MoveTo(p.Vertices[0].X, p.Vertices[0].Y)
		for _, v := range p.Vertices[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetDash(6, 4)
	c.SetRGB(1, 1, 0)
	for _, d := range diagonals {
		c.DrawLine(d.Start.X, d.Start.Y, d.End.X, d.End.Y)
		c.Stroke()
	}
	c.SetDash()

	for i, v := range p.Vertices {
		switch {
		case v.Ear:
			c.SetRGB(0, 1, 0)
		case v.Reflex:
			c.SetRGB(1, 0, 0)
		default:
			c.SetRGB(1, 1, 1)
		}
		c.DrawCircle(v.X, v.Y, vertexRadius/scale)
		c.Fill()

		// We have to go back to identity to draw the text, so get the point in
		// native coordinates
		x, y := c.TransformPoint(v.X, v.Y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(strconv.Itoa(i), x+vertexRadius, y-vertexRadius, 0, 0)
		c.Pop()
	}
	return c
}

// Draw and save as a PNG file.
func (p *Polygon) DrawPNG(path string, scale float64, diagonals []Diagonal) error {
	c := p.Draw(scale, diagonals)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Helper to draw and print a polygon in the terminal (iTerm only) for debugging.
func (p *Polygon) dbgDraw(scale float64, diagonals []Diagonal) {
	p.DrawPNG("/tmp/earclip.png", scale, diagonals)
	imgcat.CatFile("/tmp/earclip.png", os.Stdout)
}
