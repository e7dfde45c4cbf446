package geom

import (
	"math"

	"github.com/pkg/errors"
)

// NewPolygon builds a polygon after checking the preconditions the
// query operations assume but never verify themselves: at least three
// vertices, finite coordinates, and no duplicate consecutive vertices
// (the implicit closing edge included). The vertex slice is copied, so
// later mutation of the caller's slice cannot reach the polygon.
//
// Simplicity is still assumed, not checked; detecting self
// intersection is out of scope here.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Errorf("polygon needs at least 3 vertices, got %d", len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Polygon{}, errors.Errorf("vertex %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
	}
	n := len(points)
	for i := range points {
		j := CircularIndex(i-1, n)
		if points[i] == points[j] {
			return Polygon{}, errors.Errorf("vertices %d and %d coincide at (%v, %v), making a zero-length edge", j, i, points[i].X, points[i].Y)
		}
	}
	poly := Polygon{Points: make([]Point, n)}
	copy(poly.Points, points)
	return poly, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
