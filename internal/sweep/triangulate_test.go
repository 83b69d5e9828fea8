package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTriangulate(t *testing.T, polys PolygonsIdx, cfg Config) []Triangle {
	t.Helper()
	triangles, err := TriangulateIdx(polys, 0, cfg)
	require.NoError(t, err)
	return triangles
}

func TestUnitSquare(t *testing.T) {
	poly := loadFixture(t, "square")
	polys := PolygonsIdx{poly}
	triangles := mustTriangulate(t, polys, Config{})
	assert.Len(t, triangles, 2)
	assertValidTriangulation(t, polys, triangles, 0)
}

func TestSquareWithHole(t *testing.T) {
	polys := squareWithHole()
	triangles := mustTriangulate(t, polys, Config{IntermediateChecks: true})
	assert.Len(t, triangles, 8)
	assertValidTriangulation(t, polys, triangles, 0)
}

func TestColinearEdgeTriangle(t *testing.T) {
	poly := loadFixture(t, "colinear_edge_triangle")
	polys := PolygonsIdx{poly}
	triangles := mustTriangulate(t, polys, Config{})
	assertValidTriangulation(t, polys, triangles, 0)
}

func TestTwoTouchingSquares(t *testing.T) {
	polys := twoTouchingSquares()
	triangles := mustTriangulate(t, polys, Config{IntermediateChecks: true})
	assert.Len(t, triangles, 4)
	assertValidTriangulation(t, polys, triangles, 0)
}

func TestPentagram(t *testing.T) {
	poly := loadFixture(t, "pentagram")
	polys := PolygonsIdx{poly}
	triangles := mustTriangulate(t, polys, Config{})
	assertValidTriangulation(t, polys, triangles, 0)
}

func TestOverlappingPairRequiresProcessOverlaps(t *testing.T) {
	polys := overlappingPair()

	_, err := TriangulateIdx(polys, 0, Config{})
	assert.Error(t, err, "overlapping input must fail without ProcessOverlaps")
	var geomErr *GeometryError
	assert.ErrorAs(t, err, &geomErr)

	triangles, err := TriangulateIdx(polys, 0, Config{ProcessOverlaps: true})
	require.NoError(t, err)
	assert.NotEmpty(t, triangles)
}

func TestTriangleCountMatchesEulerFormula(t *testing.T) {
	polys := squareWithHole()
	triangles := mustTriangulate(t, polys, Config{})
	n := 0
	for _, poly := range polys {
		n += len(poly)
	}
	holes := len(polys) - 1
	assert.Len(t, triangles, n+2*holes-2)
}

func TestHalfedgeClosure(t *testing.T) {
	poly := loadFixture(t, "pentagram")
	polys := PolygonsIdx{poly}
	triangles := mustTriangulate(t, polys, Config{})
	checkTopology(triangles, polys)
}

func TestIndexPreservation(t *testing.T) {
	poly := loadFixture(t, "square")
	poly[0].Idx = 42
	poly[1].Idx = 7
	poly[2].Idx = 99
	poly[3].Idx = 3
	polys := PolygonsIdx{poly}

	triangles := mustTriangulate(t, polys, Config{})
	seen := map[int]bool{}
	for _, tri := range triangles {
		for _, idx := range tri {
			seen[idx] = true
		}
	}
	for _, want := range []int{42, 7, 99, 3} {
		assert.True(t, seen[want], "output must reference caller index %d", want)
	}
}

func TestTriangulationIsDeterministic(t *testing.T) {
	poly := loadFixture(t, "pentagram")
	polys := PolygonsIdx{poly}

	first := mustTriangulate(t, polys, Config{})
	second := mustTriangulate(t, polys, Config{})
	assert.Equal(t, first, second)
}

func TestTriangulationIsScaleInvariant(t *testing.T) {
	poly := loadFixture(t, "pentagram")
	polys := PolygonsIdx{poly}
	base := mustTriangulate(t, polys, Config{})

	scaled := make(SimplePolygonIdx, len(poly))
	for i, p := range poly {
		scaled[i] = IndexedPoint{Pos: Point{X: p.Pos.X * 1000, Y: p.Pos.Y * 1000}, Idx: p.Idx}
	}
	scaledTriangles := mustTriangulate(t, PolygonsIdx{scaled}, Config{})

	assert.Equal(t, len(base), len(scaledTriangles))
}

func TestTooFewVerticesIsTopologyError(t *testing.T) {
	polys := PolygonsIdx{{
		{Pos: Point{0, 0}, Idx: 0},
		{Pos: Point{1, 0}, Idx: 1},
	}}
	_, err := TriangulateIdx(polys, 0, Config{})
	var topoErr *TopologyError
	assert.ErrorAs(t, err, &topoErr)
}
