package sweep

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// This is not a general SVG parser: it opens one fixture, finds the single
// <polygon> element in it, and turns its points list into a CCW
// SimplePolygonIdx with sequential indices. Anything else in the SVG is
// ignored.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) SimplePolygonIdx {
	t.Helper()

	f, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err)
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	require.NoError(t, err)

	polys := root.FindAll("polygon")
	require.Len(t, polys, 1, "fixture %q must contain exactly one <polygon>", name)

	pointStrings := strings.Fields(polys[0].Attributes["points"])
	poly := make(SimplePolygonIdx, 0, len(pointStrings))
	for i, ps := range pointStrings {
		coords := strings.Split(ps, ",")
		require.Len(t, coords, 2, "malformed point %q in fixture %q", ps, name)
		x, err := strconv.ParseFloat(coords[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(coords[1], 64)
		require.NoError(t, err)
		poly = append(poly, IndexedPoint{Pos: Point{X: x, Y: y}, Idx: i})
	}

	if signedArea2(poly) < 0 {
		poly = reversed(poly)
	}
	return poly
}

func signedArea2(poly SimplePolygonIdx) float64 {
	area := 0.0
	for i := range poly {
		a := poly[i].Pos
		b := poly[(i+1)%len(poly)].Pos
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

func reversed(poly SimplePolygonIdx) SimplePolygonIdx {
	out := make(SimplePolygonIdx, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// squareWithHole is an outer 10x10 square (CCW) around a concentric 4x4
// hole (CW), the classic two-contour case a single-pass sweep with no
// intersection test must still decompose correctly.
func squareWithHole() PolygonsIdx {
	outer := SimplePolygonIdx{
		{Pos: Point{-5, -5}, Idx: 0},
		{Pos: Point{5, -5}, Idx: 1},
		{Pos: Point{5, 5}, Idx: 2},
		{Pos: Point{-5, 5}, Idx: 3},
	}
	hole := SimplePolygonIdx{
		{Pos: Point{-2, 2}, Idx: 4},
		{Pos: Point{2, 2}, Idx: 5},
		{Pos: Point{2, -2}, Idx: 6},
		{Pos: Point{-2, -2}, Idx: 7},
	}
	return PolygonsIdx{outer, hole}
}

// twoTouchingSquares are two CCW unit squares sharing a full edge (the
// segment from (1,0) to (1,1)), exercising the active-edge list's handling
// of two colinear tangent edges belonging to different polygons.
func twoTouchingSquares() PolygonsIdx {
	a := SimplePolygonIdx{
		{Pos: Point{0, 0}, Idx: 0},
		{Pos: Point{1, 0}, Idx: 1},
		{Pos: Point{1, 1}, Idx: 2},
		{Pos: Point{0, 1}, Idx: 3},
	}
	b := SimplePolygonIdx{
		{Pos: Point{1, 0}, Idx: 4},
		{Pos: Point{2, 0}, Idx: 5},
		{Pos: Point{2, 1}, Idx: 6},
		{Pos: Point{1, 1}, Idx: 7},
	}
	return PolygonsIdx{a, b}
}

// overlappingPair are two CCW 6x4 rectangles whose interiors genuinely overlap,
// valid input only under Config.ProcessOverlaps.
func overlappingPair() PolygonsIdx {
	a := SimplePolygonIdx{
		{Pos: Point{-4, -2}, Idx: 0},
		{Pos: Point{2, -2}, Idx: 1},
		{Pos: Point{2, 2}, Idx: 2},
		{Pos: Point{-4, 2}, Idx: 3},
	}
	b := SimplePolygonIdx{
		{Pos: Point{-2, -2}, Idx: 4},
		{Pos: Point{4, -2}, Idx: 5},
		{Pos: Point{4, 2}, Idx: 6},
		{Pos: Point{-2, 2}, Idx: 7},
	}
	return PolygonsIdx{a, b}
}
