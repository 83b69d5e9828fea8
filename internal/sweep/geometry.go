package sweep

import "math"

// Point is a 2D position. It carries no identity of its own; identity lives
// on the vert that wraps it.
type Point struct {
	X, Y float64
}

// kTolerance scales the largest absolute input coordinate into a default
// precision when the caller doesn't supply one.
const kTolerance = 1e-5

// ccw returns +1 if a, b, c turn counter-clockwise by more than eps in
// absolute triangle area, -1 if clockwise by more than eps, and 0 if the
// turn is within eps of colinear. The comparison is scale invariant: the
// raw doubled signed area is compared against eps times the square of the
// longest of the triangle's three edges, so a fixed eps behaves consistently
// whether the triangle is a sliver or a boulder.
func ccw(a, b, c Point, eps float64) int {
	area2 := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)

	abx, aby := b.X-a.X, b.Y-a.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y
	cax, cay := a.X-c.X, a.Y-c.Y
	longest2 := math.Max(abx*abx+aby*aby, math.Max(bcx*bcx+bcy*bcy, cax*cax+cay*cay))

	tol := eps * longest2
	if area2 > tol {
		return 1
	}
	if area2 < -tol {
		return -1
	}
	return 0
}

// below orders two positions by sweep-line height alone, matching the
// vertex ordering the sweep's priority queue and start list are built on.
// Ties are left unresolved on purpose: the epsilon machinery in eastOf and
// isPast is what actually disambiguates near-equal-height vertices, not the
// sort order they arrive in.
func below(p, q Point) bool {
	return p.Y < q.Y
}

// isPast reports whether p's sweep position is strictly beyond q's by more
// than precision, i.e. the sweep line has definitely passed q by the time it
// reaches p.
func isPast(p, q Point, precision float64) bool {
	return p.Y > q.Y+precision
}

// boundingCoordinate returns the largest absolute X or Y coordinate across
// every polygon, used to scale the default precision.
func boundingCoordinate(polys PolygonsIdx) float64 {
	bound := 0.0
	for _, poly := range polys {
		for _, v := range poly {
			bound = math.Max(bound, math.Max(math.Abs(v.Pos.X), math.Abs(v.Pos.Y)))
		}
	}
	return bound
}

// resolvePrecision returns precision unchanged if positive, otherwise
// bound*kTolerance.
func resolvePrecision(precision, bound float64) float64 {
	if precision > 0 {
		return precision
	}
	return bound * kTolerance
}
