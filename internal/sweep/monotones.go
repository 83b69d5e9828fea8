package sweep

import "container/list"

// monotones is the sweep engine for one Triangulate call: it builds the
// vertex ring from the caller's polygons, runs the forward and backward
// sweep passes to decompose the ring into y-monotone pieces without ever
// computing a segment intersection, then walks each piece through the
// reflex-chain triangulator.
type monotones struct {
	seq      *list.List // Value: *vert, in the order verts are visited/reordered by the sweep
	active   *list.List // Value: *edge, west to east, currently crossing the sweep line
	inactive *list.List // Value: *edge, retired by removePair, awaiting the backward sweep

	precision float64
	cfg       Config
	polys     PolygonsIdx // the caller's own input, kept only for checkTopology's boundary fold-in
}

// buildMonotones constructs the vertex ring for polys and runs both sweep
// passes, leaving m.seq decomposed into one or more y-monotone cycles ready
// for triangulate. The largest absolute input coordinate (boundingCoordinate)
// resolves a precision <= 0 into a scale-relative default.
func buildMonotones(polys PolygonsIdx, precision float64, cfg Config) *monotones {
	m := &monotones{
		seq:       list.New(),
		active:    list.New(),
		inactive:  list.New(),
		precision: resolvePrecision(precision, boundingCoordinate(polys)),
		cfg:       cfg,
		polys:     polys,
	}

	for _, poly := range polys {
		if len(poly) < 3 {
			topologyErrorf("simple polygon needs at least 3 vertices, got %d", len(poly))
		}
		first := m.appendVert(poly[0])
		prev := first
		for _, p := range poly[1:] {
			v := m.appendVert(p)
			link(prev, v)
			prev = v
		}
		link(prev, first)
	}

	if m.cfg.IntermediateChecks {
		m.checkRing()
	}

	if m.sweepForward() {
		return m
	}
	if m.cfg.IntermediateChecks {
		m.checkRing()
	}
	if m.sweepBack() {
		return m
	}
	if m.cfg.IntermediateChecks {
		m.checkRing()
	}
	return m
}

func (m *monotones) appendVert(p IndexedPoint) *vert {
	v := &vert{pos: p.Pos, meshIdx: p.Idx}
	v.elem = m.seq.PushBack(v)
	return v
}

// checkRing audits the two invariants a well-formed vertex ring must
// maintain between sweep passes: the ring is its own inverse (v.left.right
// == v.right.left == v) and no vertex is its own neighbor.
func (m *monotones) checkRing() {
	for el := m.seq.Front(); el != nil; el = el.Next() {
		v := el.Value.(*vert)
		if v.left.right != v || v.right.left != v {
			topologyErrorf("internal error: vertex ring is not a closed cycle at meshIdx %d", v.meshIdx)
		}
		if v.left == v || v.right == v {
			topologyErrorf("internal error: degenerate single-vertex cycle at meshIdx %d", v.meshIdx)
		}
	}
}

// triangulate walks each y-monotone cycle in m.seq and triangulates it with
// the reflex-chain algorithm, then checks the total triangle count against
// the topological guarantee: n ring vertices (across every split copy)
// decomposed into k monotone cycles always yield exactly n-2*k triangles.
//
// Ranks are assigned by overwriting each vert's index with its position in
// m.seq, exactly as Monotones::Triangulate does: the ring already encodes
// valid sweep order after both passes, so ranks are read off list position
// rather than recomputed from height, and since every rank is positive,
// assigning them also resets vert.processed() to false for the walk below
// without a separate reset pass.
func (m *monotones) triangulate() []Triangle {
	rank := 1
	for el := m.seq.Front(); el != nil; el = el.Next() {
		el.Value.(*vert).index = rank
		rank++
	}
	total := rank - 1

	var vertTriangles []vertTriangle
	cycles := 0

	// Each monotone cycle triangulates independently of every other one,
	// so this loop could in principle fan the cycles out across
	// goroutines; left serial since a single triangulation call is not
	// expected to have enough cycles for that to pay for its own
	// coordination overhead.
	for el := m.seq.Front(); el != nil; el = el.Next() {
		start := el.Value.(*vert)
		if start.processed() {
			continue
		}
		cycles++

		t := newTriangulator(start, m.precision)
		start.setProcessed(true)
		vr, vl := start.right, start.left
		for vr != vl {
			if vr.index < vl.index {
				t.processVert(vr, true, false)
				vr.setProcessed(true)
				vr = vr.right
			} else {
				t.processVert(vl, false, false)
				vl.setProcessed(true)
				vl = vl.left
			}
		}
		t.processVert(vr, true, true)
		vr.setProcessed(true)

		if t.numTriangles() == 0 {
			topologyErrorf("internal error: monotone produced no triangles")
		}
		vertTriangles = append(vertTriangles, t.triangles...)
	}

	if len(vertTriangles) != total-2*cycles {
		topologyErrorf("internal error: triangulated %d triangles from %d vertices across %d monotone cycles, expected %d",
			len(vertTriangles), total, cycles, total-2*cycles)
	}

	if m.cfg.IntermediateChecks {
		checkGeometry(vertTriangles, 2*m.precision)
	}

	triangles := make([]Triangle, len(vertTriangles))
	for i, tr := range vertTriangles {
		triangles[i] = Triangle{tr[0].meshIdx, tr[1].meshIdx, tr[2].meshIdx}
	}

	if m.cfg.IntermediateChecks {
		checkTopology(triangles, m.polys)
	}

	return triangles
}
