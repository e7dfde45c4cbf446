// Pure point-vs-polygon queries for simple polygons.
//
// This package answers three questions about a query point and a
// simple (non-self-intersecting) polygon: is the point strictly
// inside, does it lie on the boundary, and what boundary point is
// closest to it. Every operation is a pure function over value types;
// inputs are never mutated and calls are safe from any number of
// goroutines.
package polygeom

import "polygeom/geom"

type Point = geom.Point
type Polygon = geom.Polygon

// Tolerance bounds the float comparisons used by the boundary tests.
const Tolerance = geom.Tolerance

// NewPolygon validates its vertices and returns a polygon built from a
// copy of them. The core methods on Polygon never validate (a
// malformed polygon gives unspecified numeric results, not an error);
// this constructor is the fail-fast boundary for callers that want
// malformed input rejected with a descriptive error instead.
func NewPolygon(points ...Point) (Polygon, error) {
	return geom.NewPolygon(points...)
}
