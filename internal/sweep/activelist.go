package sweep

// firstActive and lastActive expose the westmost/eastmost active edges, or
// nil if the active list is empty. Comparing a candidate edge against
// firstActive with == is how the sweep tests "is this iterator begin()",
// including the degenerate case where the list is empty and begin() == end().
func (m *monotones) firstActive() *edge {
	if el := m.active.Front(); el != nil {
		return el.Value.(*edge)
	}
	return nil
}

func (m *monotones) lastActive() *edge {
	if el := m.active.Back(); el != nil {
		return el.Value.(*edge)
	}
	return nil
}

// nextActive and prevActive treat nil as one-past-the-end in both
// directions: the predecessor of nil is the last active edge, and the
// successor of nil is nil again.
func (m *monotones) nextActive(e *edge) *edge {
	if e == nil {
		return nil
	}
	return activeNext(e)
}

func (m *monotones) prevActive(e *edge) *edge {
	if e == nil {
		return m.lastActive()
	}
	return activePrev(e)
}

// insertActiveBefore inserts e into the active list immediately before mark,
// or at the end if mark is nil.
func (m *monotones) insertActiveBefore(mark, e *edge) {
	if mark == nil {
		e.elem = m.active.PushBack(e)
	} else {
		e.elem = m.active.InsertBefore(e, mark.elem)
	}
}

// deactivate moves e from the active list to the end of the inactive list.
func (m *monotones) deactivate(e *edge) {
	m.active.Remove(e.elem)
	e.elem = m.inactive.PushBack(e)
}

// activateBefore moves e from the inactive list back into the active list,
// immediately before mark (or at the end if mark is nil). This is how the
// backward sweep reopens a pair of edges RemovePair retired during the
// forward sweep.
func (m *monotones) activateBefore(mark, e *edge) {
	m.inactive.Remove(e.elem)
	m.insertActiveBefore(mark, e)
}

// removePair retires west and its immediate active successor together: both
// move to the inactive list, and their next pointers record where the
// backward sweep should reopen them.
func (m *monotones) removePair(west *edge) {
	east := m.nextActive(west)
	if east == nil {
		topologyErrorf("internal error: removePair called on an edge with no active partner")
	}
	nextEast := m.nextActive(east)
	west.next = nextEast
	east.next = nextEast
	m.deactivate(west)
	m.deactivate(east)
}

// updateEdge reseats e's south endpoint at v, and points v back at e as both
// of its active edges. This is what carries a Forward or Backward vertex's
// active edge forward to the newly processed vertex.
func updateEdge(e *edge, v *vert) {
	e.south = v
	v.edgeL = e
	v.edgeR = e
}

// splitVerts implements a Merge event: it duplicates north and south into
// two new ring vertices, both already processed, and rewires the ring so
// that what was one cycle through north and south becomes two: one running
// north.left -> northEast -> southEast -> south.right, the other running
// south -> north directly. This is the graph-level move that turns the
// polygon into two independently sweepable monotone pieces.
func (m *monotones) splitVerts(north, south *vert) *vert {
	northEast := &vert{pos: north.pos, meshIdx: north.meshIdx, left: north.left, right: north.right, edgeL: north.edgeL, edgeR: north.edgeR}
	northEast.elem = m.seq.InsertBefore(northEast, north.elem)
	link(north.left, northEast)
	northEast.setProcessed(true)

	southEast := &vert{pos: south.pos, meshIdx: south.meshIdx, left: south.left, right: south.right, edgeL: south.edgeL, edgeR: south.edgeR}
	southEast.elem = m.seq.InsertAfter(southEast, south.elem)
	link(southEast, south.right)
	southEast.setProcessed(true)

	link(south, north)
	link(northEast, southEast)

	return northEast
}

// checkSplit runs splitVerts against westEdge's queued reopen point, if any,
// clearing the reopen marker once consumed.
func (m *monotones) checkSplit(v *vert, westEdge *edge) *vert {
	if westEdge.next != nil {
		v = m.splitVerts(v, westEdge.next.south)
		westEdge.next = nil
	}
	return v
}
