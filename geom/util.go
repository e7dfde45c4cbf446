package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance
// based. The on-edge test sums two distances and compares against a
// third; under exact equality, rounding in the square roots would
// reject points that are on an edge by any reasonable reading of the
// coordinates.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
