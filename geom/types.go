package geom

// Point is a 2D coordinate. Points are plain values: every hand-off
// between caller and library copies them, so mutating a point returned
// by a query never reaches the caller's original, and vice versa.
type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered ring of vertices. The closing edge from the
// last vertex back to the first is implicit. The query operations
// assume the polygon is simple (no self-intersecting edges) and has at
// least three vertices; neither assumption is checked here, and the
// results on a polygon that breaks them are unspecified. NewPolygon is
// the validating boundary for callers that want those preconditions
// enforced.
type Polygon struct {
	Points []Point
}
