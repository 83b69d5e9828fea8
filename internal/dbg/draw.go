package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shape to make edges running off to the sweep-line
// extremes obvious.
const drawPadding = 40

// Point is a plain 2D coordinate. The sweep engine converts its own vert
// positions into these rather than exposing its internal types to this
// package.
type Point struct{ X, Y float64 }

// Segment is one line to render. Active-edge segments are drawn in cyan,
// ring segments in green, matching the color convention the teacher package
// uses for infinite vs. finite trapezoids.
type Segment struct {
	A, B   Point
	Active bool
}

// DrawSegments renders the given segments to a PNG at path and, best effort,
// cats it to the terminal via iTerm2's imgcat protocol. Errors from either
// step are non-fatal: this is a debug aid, not part of the triangulation
// contract.
func DrawSegments(path string, scale float64, segments []Segment) {
	if len(segments) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segments {
		for _, p := range [2]Point{s.A, s.B} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	if width <= 0 || height <= 0 {
		return
	}
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is bottom-left, then pad/scale/translate to fit.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for _, s := range segments {
		if s.Active {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0, 0.7, 0)
		}
		c.MoveTo(s.A.X, s.A.Y)
		c.LineTo(s.B.X, s.B.Y)
		c.Stroke()
	}

	if err := c.SavePNG(path); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
