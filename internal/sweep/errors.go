package sweep

import "github.com/pkg/errors"

// Threading an error return through every recursive step of the sweep and
// the reflex-chain triangulator would obscure the geometry with plumbing.
// Instead, invariant failures panic with one of the two typed errors below,
// and Triangulate/TriangulateIdx recover at the public boundary.

// TopologyError means the input isn't a closed set of polygons, or an
// internal bookkeeping invariant (triangle count, halfedge closure) failed.
// It is always fatal to the invocation.
type TopologyError struct{ err error }

func (e *TopologyError) Error() string { return e.err.Error() }
func (e *TopologyError) Unwrap() error { return e.err }

// GeometryError means the input polygons overlap by more than precision, or
// the sweep reached a state with no valid placement. In default mode this
// is fatal; in Config.ProcessOverlaps mode the engine catches it internally
// and falls through to a best-effort triangulation instead.
type GeometryError struct{ err error }

func (e *GeometryError) Error() string { return e.err.Error() }
func (e *GeometryError) Unwrap() error { return e.err }

func topologyErrorf(format string, args ...interface{}) {
	panic(&TopologyError{errors.Errorf(format, args...)})
}

func geometryErrorf(format string, args ...interface{}) {
	panic(&GeometryError{errors.Errorf(format, args...)})
}

// recoverTriangulateError converts a panic raised by topologyErrorf or
// geometryErrorf into a returned error. Any other panic is re-raised: it
// indicates a real bug, not a modeled failure mode.
func recoverTriangulateError(r interface{}) error {
	if r == nil {
		return nil
	}
	switch e := r.(type) {
	case *TopologyError:
		return e
	case *GeometryError:
		return e
	default:
		panic(r)
	}
}
