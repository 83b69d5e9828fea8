package sweep

import (
	"fmt"

	"github.com/zalo/manifold/internal/dbg"
)

// TriangulateIdx decomposes polys into y-monotone pieces via a two-pass
// topological sweep and triangulates each piece, returning CCW index
// triples into the caller's own vertex ids. precision <= 0 selects a
// scale-relative default. Any invariant violation is returned as a
// *TopologyError or *GeometryError rather than panicking across the
// package boundary.
func TriangulateIdx(polys PolygonsIdx, precision float64, cfg Config) (triangles []Triangle, err error) {
	defer func() {
		err = recoverTriangulateError(recover())
		if _, ok := err.(*GeometryError); ok && cfg.Verbose {
			dbg.DumpFailure(err.Error(), dumpPolys(polys), nil)
		}
	}()

	if cfg.Verbose {
		dbg.Trace("sweep:start", fmt.Sprintf("%d contours", len(polys)))
	}

	m := buildMonotones(polys, precision, cfg)
	if cfg.Verbose {
		dbg.Trace("sweep:done", fmt.Sprintf("precision=%g", m.precision))
		m.dump("post-sweep")
	}

	triangles = m.triangulate()
	if cfg.Verbose {
		dbg.Trace("triangulate:done", fmt.Sprintf("%d triangles", len(triangles)))
	}
	return triangles, nil
}

// dumpPolys converts polys to internal/dbg's plain point representation for
// DumpFailure, which cannot import this package's own types.
func dumpPolys(polys PolygonsIdx) [][]dbg.IndexedPoint {
	out := make([][]dbg.IndexedPoint, len(polys))
	for i, poly := range polys {
		p := make([]dbg.IndexedPoint, len(poly))
		for j, v := range poly {
			p[j] = dbg.IndexedPoint{X: v.Pos.X, Y: v.Pos.Y, Idx: v.Idx}
		}
		out[i] = p
	}
	return out
}

// dump renders the current vertex ring's edges through internal/dbg when
// Config.Verbose requests step-by-step tracing.
func (m *monotones) dump(label string) {
	var segments []dbg.Segment
	seen := map[*vert]bool{}
	for el := m.seq.Front(); el != nil; el = el.Next() {
		v := el.Value.(*vert)
		if seen[v] {
			continue
		}
		seen[v] = true
		segments = append(segments, dbg.Segment{
			A:      dbg.Point{X: v.pos.X, Y: v.pos.Y},
			B:      dbg.Point{X: v.right.pos.X, Y: v.right.pos.Y},
			Active: false,
		})
	}
	dbg.DrawSegments(label+"-"+dbg.Name(m)+".png", 20, segments)
}
