package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidTriangulation checks the properties any correct triangulation
// of polys must have, independent of exactly where the sweep happened to
// cut its diagonals: no triangle is clockwise (a zero-area triangle cut
// across colinear vertices is accepted), the triangle areas sum to the
// polygon's own signed area (outer contours positive, holes negative), and
// every triangle edge either is one of polys' own boundary edges or is
// shared by exactly one opposing edge from another triangle.
func assertValidTriangulation(t *testing.T, polys PolygonsIdx, triangles []Triangle, precision float64) {
	t.Helper()
	require.NotEmpty(t, triangles)

	byIdx := map[int]Point{}
	for _, poly := range polys {
		for _, p := range poly {
			byIdx[p.Idx] = p.Pos
		}
	}

	for _, tri := range triangles {
		a, b, c := byIdx[tri[0]], byIdx[tri[1]], byIdx[tri[2]]
		assert.GreaterOrEqual(t, ccwArea(a, b, c), 0.0, "triangle %v is clockwise", tri)
	}

	wantArea := 0.0
	for _, poly := range polys {
		wantArea += signedArea2(poly) / 2
	}
	gotArea := 0.0
	for _, tri := range triangles {
		a, b, c := byIdx[tri[0]], byIdx[tri[1]], byIdx[tri[2]]
		gotArea += ccwArea(a, b, c) / 2
	}
	assert.InDelta(t, wantArea, gotArea, precision*precision*float64(len(triangles)+1)+1e-9)

	boundary := map[[2]int]bool{}
	for _, poly := range polys {
		for i := range poly {
			boundary[[2]int{poly[i].Idx, poly[(i+1)%len(poly)].Idx}] = true
		}
	}

	edges := map[[2]int]int{}
	for _, tri := range triangles {
		for i := 0; i < 3; i++ {
			edges[[2]int{tri[i], tri[(i+1)%3]}]++
		}
	}
	for seg := range boundary {
		assert.Equal(t, 1, edges[seg], "boundary edge %v must appear exactly once as a triangle edge", seg)
	}
	for e := range edges {
		if boundary[e] {
			continue
		}
		assert.Equal(t, 1, edges[[2]int{e[1], e[0]}], "interior edge %v must have exactly one opposing triangle edge", e)
	}
}

func ccwArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
