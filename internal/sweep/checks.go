package sweep

// checkTopology audits that the emitted triangles form a closed 2-manifold
// surface over their shared edges: every directed halfedge (a, b) must have
// exactly one opposing (b, a) elsewhere in the set, except for polys' own
// boundary edges, whose true opposite lies outside the triangulated region
// entirely and so is never going to appear as a triangle halfedge. It is
// grounded on the free function of the same name in the source this
// package generalizes (CheckTopology, built on Polygons2Edges), gated
// behind Config.IntermediateChecks since it costs O(n) extra allocation on
// top of a production triangulation.
func checkTopology(triangles []Triangle, polys PolygonsIdx) {
	type halfedge struct{ a, b int }

	boundary := map[halfedge]bool{}
	for _, poly := range polys {
		for i := range poly {
			boundary[halfedge{poly[i].Idx, poly[(i+1)%len(poly)].Idx}] = true
		}
	}

	seen := map[halfedge]int{}
	for _, t := range triangles {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			seen[halfedge{a, b}]++
		}
	}
	for he, count := range seen {
		if count != 1 {
			topologyErrorf("internal error: halfedge %d->%d appears %d times, expected 1", he.a, he.b, count)
		}
		if boundary[he] {
			continue
		}
		if _, ok := seen[halfedge{he.b, he.a}]; !ok {
			topologyErrorf("internal error: halfedge %d->%d has no opposing halfedge", he.a, he.b)
		}
	}
}

// checkGeometry audits that every emitted triangle winds CCW (or is exactly
// colinear, which is legitimate at 2*precision per the reflex-chain
// algorithm's own tolerance), checked against the source verts directly
// rather than the caller-facing mesh indices, since those indices carry no
// positional meaning of their own and may repeat across separate input
// polygons.
func checkGeometry(triangles []vertTriangle, precision float64) {
	for _, t := range triangles {
		if ccw(t[0].pos, t[1].pos, t[2].pos, precision) < 0 {
			geometryErrorf("internal error: triangle (%d,%d,%d) is not CCW", t[0].meshIdx, t[1].meshIdx, t[2].meshIdx)
		}
	}
}
