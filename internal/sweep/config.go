package sweep

// Config carries the three read-only knobs an invocation of the sweep
// engine may be run with. It is captured by value at the start of a
// triangulation and never mutated afterward, so unrelated goroutines can
// triangulate concurrently with different configs without any shared,
// mutable, package-level state.
type Config struct {
	// Verbose enables step-by-step tracing of the sweep (vertex
	// classification and visit order) plus best-effort PNG rendering of the
	// vertex ring via internal/dbg.
	Verbose bool

	// IntermediateChecks runs checkRing on the freshly built ring and after
	// each sweep pass, and checkTopology/checkGeometry after triangulation.
	// These are the
	// "debug build" audits from the spec; they cost real time on top of a
	// production triangulation, so they default to off.
	IntermediateChecks bool

	// ProcessOverlaps turns a GeometryError that would otherwise be raised
	// from an ambiguous Skip situation into a "give up and Skip anyway"
	// fallback: the sweep produces a topologically-closed but possibly
	// geometrically-invalid triangulation instead of failing outright.
	ProcessOverlaps bool
}
