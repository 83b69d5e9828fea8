package sweep

import "container/list"

// edge represents one polygon edge currently crossing the sweep line. The
// sweep line is horizontal and moves south to north; among the active
// edges, west and east partners of one open monotone always sit at
// adjacent positions in the active list, the west one backward-winding,
// the east one forward-winding.
type edge struct {
	south *vert

	forward     bool // true: south -> north follows the ring's right pointers (east side)
	linked2east bool // true if this edge is the east member of its pair
	flipped     bool
	eastCertain bool

	linked *edge // the pair partner (west <-> east)
	next   *edge // Merge bookkeeping: "reopen here on the backward sweep"

	minDegenerateY float64

	elem *list.Element // this edge's position in whichever of active/inactive it currently lives in
}

// north returns the far end of the edge from south, following the ring in
// whichever direction this edge's winding indicates.
func (e *edge) north() *vert {
	if e.forward {
		return e.south.right
	}
	return e.south.left
}

// eastOf reports where this edge currently lies relative to v: +1 if the
// edge is east of v, -1 if it is west of v, 0 within precision of colinear
// (ambiguous). The bounding-box
// short circuit avoids a ccw call whenever vert is unambiguously clear of
// the edge's x-span.
func (e *edge) eastOf(v *vert, precision float64) int {
	n := e.north()
	if e.south.pos.X-precision > v.pos.X && n.pos.X-precision > v.pos.X {
		return 1
	}
	if e.south.pos.X+precision < v.pos.X && n.pos.X+precision < v.pos.X {
		return -1
	}
	return ccw(e.south.pos, n.pos, v.pos, precision)
}

func linkEdges(a, b *edge) {
	a.linked = b
	b.linked = a
}

// activeNext/activePrev walk whichever list (active or inactive) e
// currently belongs to. A nil result means "off the end", matching
// activeEdges_.end() in the source this is grounded on.
func activeNext(e *edge) *edge {
	if n := e.elem.Next(); n != nil {
		return n.Value.(*edge)
	}
	return nil
}

func activePrev(e *edge) *edge {
	if p := e.elem.Prev(); p != nil {
		return p.Value.(*edge)
	}
	return nil
}
