package sweep

// vertHeap is a min-heap of verts ordered by sweep height, used by
// sweepForward to decide which newly-attached vertex to visit next. It is
// the Go container/heap equivalent of the source's
// std::priority_queue<VertItr, ..., decltype(cmp)> "reversed so the minimum
// element sits at the top".
//
// No third-party priority queue appears anywhere in the example pack, and
// container/heap is the standard idiomatic choice for this in Go; see
// DESIGN.md.
type vertHeap []*vert

func (h vertHeap) Len() int            { return len(h) }
func (h vertHeap) Less(i, j int) bool  { return below(h[i].pos, h[j].pos) }
func (h vertHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *vertHeap) Push(x interface{}) { *h = append(*h, x.(*vert)) }

func (h *vertHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return v
}
