package dbg

import (
	"fmt"
	"os"
)

// IndexedPoint is a plain (x, y, idx) triple, decoupled from any specific
// caller type so this package doesn't need to import the engine it debugs.
type IndexedPoint struct {
	X, Y float64
	Idx  int
}

// DumpFailure prints a Go literal of polys to stderr, plus the triangles
// produced (if any) before the failure was raised: something a caller can
// paste directly into a regression fixture. Grounded on the C++ source's
// stdout Dump/PrintFailure, adapted from println-style C++ debug output to
// Go's fmt.Fprint idiom.
func DumpFailure(reason string, polys [][]IndexedPoint, triangles [][3]int) {
	fmt.Fprintln(os.Stderr, "-----------------------------------")
	fmt.Fprintln(os.Stderr, "Triangulation failed:", reason)
	for _, poly := range polys {
		fmt.Fprintln(os.Stderr, "poly := SimplePolygonIdx{")
		for _, v := range poly {
			fmt.Fprintf(os.Stderr, "\t{Pos: Point{X: %.9g, Y: %.9g}, Idx: %d},\n", v.X, v.Y, v.Idx)
		}
		fmt.Fprintln(os.Stderr, "}")
	}
	if len(triangles) > 0 {
		fmt.Fprintln(os.Stderr, "partial triangulation before failure:")
		for _, t := range triangles {
			fmt.Fprintf(os.Stderr, "\t{%d, %d, %d}\n", t[0], t[1], t[2])
		}
	}
}
