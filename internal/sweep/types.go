package sweep

// IndexedPoint pairs a 2D position with the caller's opaque vertex identity.
// The sweep engine never interprets Idx; it only carries it into the output
// triangles verbatim.
type IndexedPoint struct {
	Pos Point
	Idx int
}

// SimplePolygonIdx is one input contour: outer contours are wound CCW, holes
// CW, per the package-level contract.
type SimplePolygonIdx []IndexedPoint

// PolygonsIdx is an ordered set of simple polygons, possibly with holes,
// possibly overlapping within precision.
type PolygonsIdx []SimplePolygonIdx

// Triangle is a CCW index triple into the caller's own vertex ids.
type Triangle [3]int
