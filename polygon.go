// Package manifold triangulates one or more possibly-holed, possibly
// mutually-overlapping simple polygons into a CCW-wound triangle mesh. It
// decomposes the input into y-monotone pieces with a two-pass topological
// sweep, then triangulates each piece with a linear-time reflex-chain scan,
// following the same overall design as the C++ polygon triangulator this
// package was ported from, adapted to Go idiom throughout.
package manifold

import "github.com/zalo/manifold/internal/sweep"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// IndexedPoint pairs a position with the caller's own vertex identity. The
// triangulator never interprets Idx: it only carries it through to the
// output triangles, so it can be a mesh vertex index, a slice offset,
// anything the caller finds useful.
type IndexedPoint struct {
	Pos Point
	Idx int
}

// SimplePolygon is a plain point loop. Outer contours must be wound CCW,
// holes CW; TriangulateAll assigns Idx values 0..N-1 in traversal order
// across the whole polygon set.
type SimplePolygon []Point

// SimplePolygonIdx is one input contour carrying caller-supplied indices.
type SimplePolygonIdx []IndexedPoint

// Polygons is an ordered set of simple polygons, possibly with holes,
// possibly overlapping within precision.
type Polygons []SimplePolygon

// PolygonsIdx is the indexed form of Polygons.
type PolygonsIdx []SimplePolygonIdx

// Triangle is a CCW index triple into the caller's own vertex ids.
type Triangle [3]int

// Config carries the sweep engine's optional behaviors. The zero value runs
// a silent, unchecked, strict (overlap-intolerant) triangulation.
type Config struct {
	// Verbose enables step-by-step tracing of the sweep, including a
	// best-effort PNG snapshot of the vertex ring once both sweep passes
	// have finished.
	Verbose bool

	// IntermediateChecks runs the internal ring, topology, and geometry
	// audits described in the package's design notes. It costs real time
	// on top of a production triangulation and defaults to off.
	IntermediateChecks bool

	// ProcessOverlaps turns an otherwise-fatal ambiguous-placement error
	// into a best-effort fallback: the result is still topologically
	// closed but may not be geometrically valid at the overlapping region.
	ProcessOverlaps bool
}

// TopologyError reports that the input isn't a closed set of polygons, or
// that an internal bookkeeping invariant failed. It is always fatal.
type TopologyError = sweep.TopologyError

// GeometryError reports that the input polygons overlap by more than
// precision, or that the sweep reached a state with no valid placement. In
// Config.ProcessOverlaps mode this is caught internally instead of
// returned.
type GeometryError = sweep.GeometryError

// Triangulate triangulates a single simple polygon with no holes, under
// default settings. Use TriangulateAll for a polygon with holes or
// additional disjoint shapes.
func Triangulate(poly SimplePolygon) ([]Triangle, error) {
	return TriangulateAll(Polygons{poly}, 0, Config{})
}

// TriangulateAll triangulates a full polygon set — an outer boundary plus
// any holes and any additional disjoint or overlapping shapes — under the
// given precision (<=0 selects a scale-relative default) and Config.
func TriangulateAll(polys Polygons, precision float64, cfg Config) ([]Triangle, error) {
	idx := make(PolygonsIdx, len(polys))
	next := 0
	for i, poly := range polys {
		p := make(SimplePolygonIdx, len(poly))
		for j, pt := range poly {
			p[j] = IndexedPoint{Pos: pt, Idx: next}
			next++
		}
		idx[i] = p
	}
	return TriangulateIdx(idx, precision, cfg)
}

// TriangulateIdx triangulates a full polygon set whose vertices already
// carry the caller's own indices, under the given precision (<=0 selects a
// scale-relative default) and Config.
func TriangulateIdx(polys PolygonsIdx, precision float64, cfg Config) ([]Triangle, error) {
	sweepPolys := make(sweep.PolygonsIdx, len(polys))
	for i, poly := range polys {
		p := make(sweep.SimplePolygonIdx, len(poly))
		for j, pt := range poly {
			p[j] = sweep.IndexedPoint{Pos: sweep.Point{X: pt.Pos.X, Y: pt.Pos.Y}, Idx: pt.Idx}
		}
		sweepPolys[i] = p
	}

	sweepTriangles, err := sweep.TriangulateIdx(sweepPolys, precision, sweep.Config(cfg))
	if err != nil {
		return nil, err
	}

	triangles := make([]Triangle, len(sweepTriangles))
	for i, t := range sweepTriangles {
		triangles[i] = Triangle(t)
	}
	return triangles, nil
}
