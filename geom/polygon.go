package geom

import "math"

// ContainsPoint reports whether p lies strictly inside the polygon,
// by the even-odd ray casting rule: a horizontal ray from p toward +x
// crosses an odd number of edges iff p is inside. Winding order does
// not matter.
//
// A point exactly on an edge may be reported either way, depending on
// rounding in the crossing computation. Combine with OnEdge when edge
// hits must be exact.
func (poly Polygon) ContainsPoint(p Point) bool {
	inside := false
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		vi := poly.Points[i]
		vj := poly.Points[CircularIndex(i-1, n)]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			// x at which the edge crosses the horizontal through p
			crossX := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// OnEdge reports whether p lies on the boundary of the polygon. A
// point is on an edge when its distances to the two endpoints sum to
// the edge's own length; the comparison is tolerance based (see
// Equal), so hits within Tolerance of an edge count.
func (poly Polygon) OnEdge(p Point) bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		vi := poly.Points[i]
		vj := poly.Points[CircularIndex(i-1, n)]
		if Equal(Dist(vi, p)+Dist(p, vj), Dist(vi, vj)) {
			return true
		}
	}
	return false
}

// ClosestPointTo returns the point of the polygon closest to target.
// A target inside the polygon or on its boundary is its own closest
// point, and the result is a copy of it. Otherwise every edge is
// considered in turn: the perpendicular projection of target onto the
// edge, clamped to the segment, is that edge's candidate, and the
// candidate with the smallest Euclidean distance wins. Ties keep the
// earliest edge, so the result is deterministic for a given vertex
// order. A zero-length edge contributes its vertex as the candidate
// rather than dividing by zero.
func (poly Polygon) ClosestPointTo(target Point) Point {
	if poly.ContainsPoint(target) || poly.OnEdge(target) {
		return target
	}

	var closest Point
	minDist := math.Inf(1)
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		vi := poly.Points[i]
		vj := poly.Points[CircularIndex(i-1, n)]
		candidate := closestOnSegment(vi, vj, target)
		if d := Dist(target, candidate); d < minDist {
			minDist = d
			closest = candidate
		}
	}
	return closest
}

// closestOnSegment projects p onto the segment from a to b, clamping
// to the nearer endpoint when the perpendicular foot falls outside the
// segment.
func closestOnSegment(a, b, p Point) Point {
	c := b.X - a.X
	d := b.Y - a.Y
	lenSq := c*c + d*d
	if lenSq == 0 {
		// a and b coincide; the segment is a single point
		return a
	}
	t := ((p.X-a.X)*c + (p.Y-a.Y)*d) / lenSq
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	default:
		return Point{X: a.X + t*c, Y: a.Y + t*d}
	}
}

// Reverse returns a polygon with the vertex order flipped. The query
// operations are orientation agnostic, so the reversed polygon answers
// identically; this exists for callers that need a particular winding
// for rendering or export.
func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Bounds returns the bottom-left and top-right corners of the
// axis-aligned bounding box of the vertices.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return
}
