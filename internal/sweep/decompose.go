package sweep

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/zalo/manifold/internal/dbg"
)

// vertType classifies a vertex's role in the current sweep pass, following
// which of its ring neighbors have already been swept.
type vertType int

const (
	startType vertType = iota
	forwardType
	backwardType
	mergeType
	endType
	skipType
)

func (t vertType) String() string {
	switch t {
	case startType:
		return "Start"
	case forwardType:
		return "Forward"
	case backwardType:
		return "Backward"
	case mergeType:
		return "Merge"
	case endType:
		return "End"
	case skipType:
		return "Skip"
	default:
		return "Unknown"
	}
}

// traced logs vtype's classification of v when Config.Verbose requests
// step-by-step tracing, then returns vtype unchanged, so every
// classification return site in processVert/placeStart stays a single
// expression. Mirrors the original's PRINT(...) calls scattered through
// ProcessVert itself, rather than a single trace at the call site.
func (m *monotones) traced(v *vert, vtype vertType) vertType {
	if m.cfg.Verbose {
		dbg.Trace("sweep:classify", fmt.Sprintf("%s (mesh_idx=%d) -> %s", dbg.Name(v), v.meshIdx, vtype))
	}
	return vtype
}

// overlapAssert mirrors OVERLAP_ASSERT: a violated invariant is fatal unless
// Config.ProcessOverlaps is set, in which case the caller aborts its current
// sweep pass instead and lets the still-partially-decomposed ring fall
// through to the triangulator's unconditional final-vertex emission, which
// guarantees topological closure even from a bad decomposition.
func (m *monotones) overlapAssert(condition bool, format string, args ...interface{}) bool {
	if condition {
		return false
	}
	if !m.cfg.ProcessOverlaps {
		geometryErrorf(format, args...)
	}
	return true
}

// processVert classifies v against its ring neighbors' processed state and,
// for Forward/Backward/Merge/End, carries the relevant active edge forward
// onto v. Start vertices are left untouched here; placeStart finishes them.
func (m *monotones) processVert(v *vert) vertType {
	if v.right.processed() {
		if v.left.processed() {
			edgeR := v.right.edgeL
			edgeL := v.left.edgeR
			if m.nextActive(edgeR) != edgeL && m.nextActive(edgeL) != edgeR {
				return m.traced(v, skipType)
			}
			edgeR.south = v
			edgeL.south = v
			v.edgeR = edgeR
			v.edgeL = edgeL
			linkEdges(edgeL.linked, edgeR.linked)
			if m.nextActive(edgeR) == edgeL {
				return m.traced(v, endType)
			}
			return m.traced(v, mergeType)
		}

		bwdEdge := v.right.edgeL
		fwdEdge := m.nextActive(bwdEdge)
		if fwdEdge == nil {
			topologyErrorf("internal error: backward vertex has no active east neighbor")
		}
		if !v.isPast(v.right, m.precision) &&
			!fwdEdge.south.right.isPast(v, m.precision) &&
			v.isPast(fwdEdge.south, m.precision) &&
			v.pos.X > fwdEdge.south.right.pos.X+m.precision {
			return m.traced(v, skipType)
		}
		updateEdge(bwdEdge, v)
		return m.traced(v, backwardType)
	}

	if v.left.processed() {
		fwdEdge := v.left.edgeR
		bwdEdge := m.prevActive(fwdEdge)
		if bwdEdge == nil {
			topologyErrorf("internal error: forward vertex has no active west neighbor")
		}
		if !v.isPast(v.left, m.precision) &&
			!bwdEdge.south.left.isPast(v, m.precision) &&
			v.isPast(bwdEdge.south, m.precision) &&
			v.pos.X < bwdEdge.south.left.pos.X-m.precision {
			return m.traced(v, skipType)
		}
		updateEdge(fwdEdge, v)
		return m.traced(v, forwardType)
	}

	return m.traced(v, startType)
}

// placeStart finishes classifying a vertex whose neighbors are both
// unprocessed. It locates v against the active list to decide whether it
// opens an outer boundary or a hole, occasionally nudging that placement one
// slot east or west when the two disagree within precision, and inserts the
// pair of new active edges v opens.
func (m *monotones) placeStart(v *vert) vertType {
	eastEdge := m.firstActive()
	for eastEdge != nil && eastEdge.eastOf(v, 0) <= 0 {
		eastEdge = m.nextActive(eastEdge)
	}

	isHole := ccw(v.left.pos, v.pos, v.right.pos, 0) < 0
	holeCertain := ccw(v.left.pos, v.pos, v.right.pos, m.precision) != 0
	shouldBeStart := eastEdge == nil || !eastEdge.forward

	if isHole == shouldBeStart {
		switch {
		case !holeCertain:
			isHole = !isHole
		case eastEdge != nil && eastEdge.eastOf(v, m.precision) <= 0:
			eastEdge = m.nextActive(eastEdge)
		case eastEdge != m.firstActive() && m.prevActive(eastEdge) != nil && m.prevActive(eastEdge).eastOf(v, m.precision) >= 0:
			eastEdge = m.prevActive(eastEdge)
		default:
			// Only this single one-slot nudge is tried. When three or more
			// edges meet within precision at v's height and one nudge is not
			// enough, v is returned as Skip, and sweepForward raises a
			// GeometryError (or abandons the pass under ProcessOverlaps) if
			// it cannot place v before the sweep moves past it.
			return m.traced(v, skipType)
		}
	}

	eastCertain := eastEdge == nil || eastEdge.eastOf(v, m.precision) > 0
	newEast := &edge{south: v, forward: !isHole, eastCertain: eastCertain}
	m.insertActiveBefore(eastEdge, newEast)
	newWest := &edge{south: v, forward: isHole, eastCertain: holeCertain}
	m.insertActiveBefore(newEast, newWest)

	if isHole {
		v.edgeR = newWest
		v.edgeL = newEast
	} else {
		v.edgeR = newEast
		v.edgeL = newWest
	}
	linkEdges(newEast, newWest)
	return m.traced(v, startType)
}

// sweepForward walks the vertex ring from south to north, classifying and
// consuming one vertex at a time and reordering m.seq into sweep order. It
// performs no splits: at every Merge and End it retires the edge pair via
// removePair, whose next pointers tell sweepBack where to split later. It
// returns true if it gave up early on an unresolvable overlap under
// Config.ProcessOverlaps.
func (m *monotones) sweepForward() bool {
	nextAttached := &vertHeap{}
	heap.Init(nextAttached)

	var starts []*vert
	for el := m.seq.Front(); el != nil; el = el.Next() {
		if v := el.Value.(*vert); v.isStart() {
			starts = append(starts, v)
		}
	}
	// Sorted so the smallest sweep height sits at the end of the slice,
	// ready to be popped with a cheap slice truncation. Starts are
	// independent of each other until a Merge links two of their
	// descendant chains together, so sorting them could in principle run
	// concurrently with the scan above; left serial here since a single
	// sort.Slice over a modest vertex count is not the sweep's bottleneck.
	sort.Slice(starts, func(i, j int) bool { return below(starts[j].pos, starts[i].pos) })

	var skipped []*vert
	insertAt := m.seq.Front()

	for insertAt != nil {
		v := insertAt.Value.(*vert)
		advance := false

		switch {
		case nextAttached.Len() > 0 && (len(starts) == 0 || !isPast((*nextAttached)[0].pos, starts[len(starts)-1].pos, m.precision)):
			v = heap.Pop(nextAttached).(*vert)
		case len(starts) > 0:
			v = starts[len(starts)-1]
			starts = starts[:len(starts)-1]
		default:
			advance = true
		}

		if advance {
			insertAt = insertAt.Next()
		}

		if v.processed() {
			continue
		}

		if m.overlapAssert(len(skipped) == 0 || !v.isPast(skipped[len(skipped)-1], m.precision),
			"polygon is not epsilon-valid: no skipped vertex is a valid Start here") {
			return true
		}

		if m.cfg.Verbose {
			dbg.Trace("sweep:forward", fmt.Sprintf("visiting %s (mesh_idx=%d)", dbg.Name(v), v.meshIdx))
		}
		vtype := m.processVert(v)
		if vtype == startType {
			vtype = m.placeStart(v)
		}

		if vtype == skipType {
			if m.overlapAssert(insertAt != nil && insertAt.Next() != nil,
				"polygon is not epsilon-valid: skip landed on the final vertex") {
				return true
			}
			if m.overlapAssert(nextAttached.Len() > 0 || len(starts) > 0,
				"polygon is not epsilon-valid: nothing left queued after a skip") {
				return true
			}
			skipped = append(skipped, v)
			continue
		}

		if v.elem == insertAt {
			insertAt = insertAt.Next()
		} else {
			m.seq.MoveBefore(v.elem, insertAt)
		}

		switch vtype {
		case backwardType:
			heap.Push(nextAttached, v.left)
		case forwardType:
			heap.Push(nextAttached, v.right)
		case startType:
			heap.Push(nextAttached, v.left)
			heap.Push(nextAttached, v.right)
		case mergeType:
			m.removePair(v.edgeL)
		case endType:
			m.removePair(v.edgeR)
		}

		v.setProcessed(true)
		for len(skipped) > 0 {
			starts = append(starts, skipped[len(skipped)-1])
			skipped = skipped[:len(skipped)-1]
		}
	}
	return false
}

// sweepBack walks the vertex sequence built by sweepForward in reverse,
// reopening the edge pairs sweepForward retired and slicing off the
// remaining monotone pieces. By construction it must never need to Skip; if
// it would, that is a fatal internal error, not a modeled overlap.
func (m *monotones) sweepBack() bool {
	for el := m.seq.Front(); el != nil; el = el.Next() {
		el.Value.(*vert).setProcessed(false)
	}

	el := m.seq.Back()
	for el != nil {
		v := el.Value.(*vert)
		prev := el.Prev()

		if !v.processed() {
			if m.cfg.Verbose {
				dbg.Trace("sweep:back", fmt.Sprintf("visiting %s (mesh_idx=%d)", dbg.Name(v), v.meshIdx))
			}
			vtype := m.processVert(v)
			if vtype == skipType {
				topologyErrorf("internal error: skip should not happen on the backward sweep")
			}

			switch vtype {
			case mergeType:
				v = m.checkSplit(v, v.edgeR)
				westOf := m.prevActive(v.edgeL)
				m.checkSplit(v, westOf)
				westOf.next = v.edgeL
			case endType:
				m.checkSplit(v, v.edgeR)
			}

			switch vtype {
			case mergeType, endType:
				m.deactivate(v.edgeR)
				m.deactivate(v.edgeL)
			case forwardType:
				m.checkSplit(v, m.prevActive(v.edgeL))
			case backwardType:
				m.checkSplit(v, v.edgeR)
			case startType:
				if m.reopenStart(v) {
					return true
				}
			}

			v.setProcessed(true)
		}

		el = prev
	}
	return false
}

// reopenStart handles a backward-sweep Start: v's edgeL/edgeR still point at
// the pair of edges sweepForward's matching End or Merge retired into the
// inactive list. It reactivates that pair (possibly flipping which one is
// west), and if the reactivated pair opens a hole, splits the vertex so the
// hole gets its own bridge back into the ring.
func (m *monotones) reopenStart(v *vert) bool {
	westEdge := v.edgeL
	eastEdge := v.edgeR
	eastOf := westEdge.next

	if m.nextActive(eastEdge) == westEdge {
		westEdge, eastEdge = eastEdge, westEdge
	}
	if !westEdge.flipped {
		westEdge, eastEdge = eastEdge, westEdge
		if eastOf == nil {
			eastOf = m.firstActive()
		} else {
			eastOf = m.nextActive(eastOf)
		}
	}

	m.activateBefore(eastOf, eastEdge)
	m.activateBefore(eastEdge, westEdge)
	westEdge.forward = !westEdge.forward
	eastEdge.forward = !eastEdge.forward
	isHole := westEdge.forward

	if isHole {
		westOf := m.prevActive(westEdge)
		if westOf == nil {
			topologyErrorf("internal error: reopened hole start has no west neighbor")
		}
		var split *vert
		switch {
		case westOf.next != nil:
			split = westOf.next.south
		case eastOf != nil && below(westOf.south.pos, eastOf.south.pos):
			split = eastOf.south
		default:
			split = westOf.south
		}
		eastVert := m.splitVerts(v, split)
		westOf.next = nil
		updateEdge(eastEdge, eastVert)
		updateEdge(westEdge, v)
	} else {
		v.edgeL = westEdge
		v.edgeR = eastEdge
	}
	westEdge.next = nil
	eastEdge.next = nil
	return false
}
