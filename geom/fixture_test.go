package geom

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs polygons. This is not
// a full (or even correct) svg parser. It parses the SVG, finds the
// single polygon element, and converts it into a Polygon.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q should contain exactly one polygon", name)

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		require.Len(t, coords, 2, "invalid point string %q", pointString)
		x, err := strconv.ParseFloat(coords[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(coords[1], 64)
		require.NoError(t, err)
		points = append(points, Point{X: x, Y: y})
	}

	poly, err := NewPolygon(points...)
	require.NoError(t, err, "fixture %q is not a well-formed polygon", name)
	return poly
}

func TestSquareFixture(t *testing.T) {
	poly := loadFixture(t, "square")
	require.Len(t, poly.Points, 4)

	min, max := poly.Bounds()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{10, 10}, max)
	assert.True(t, poly.ContainsPoint(Point{5, 5}))
}

func TestStarFixture(t *testing.T) {
	poly := loadFixture(t, "star")
	require.Len(t, poly.Points, 10)

	// Center and a spike interior are inside; the gaps between spikes
	// and everything past the tips are not.
	assert.True(t, poly.ContainsPoint(Point{100, 100}))
	assert.True(t, poly.ContainsPoint(Point{100, 10}))
	assert.False(t, poly.ContainsPoint(Point{100, 150}))
	assert.False(t, poly.ContainsPoint(Point{100, 190}))
	assert.False(t, poly.ContainsPoint(Point{0, 0}))

	for _, v := range poly.Points {
		assert.True(t, poly.OnEdge(v))
	}

	// Due south of the top spike, the tip itself is the closest point
	got := poly.ClosestPointTo(Point{100, -50})
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
}

func TestStarFixtureClosestPointProperties(t *testing.T) {
	poly := loadFixture(t, "star")
	targets := []Point{
		{100, 150}, {100, 190}, {0, 0}, {200, 0}, {210, 100}, {-10, 100}, {30, 30},
	}
	for _, target := range targets {
		require.False(t, poly.ContainsPoint(target))
		got := poly.ClosestPointTo(target)
		assert.True(t, poly.OnEdge(got), "closest point (%g, %g) for target (%g, %g) is off the boundary", got.X, got.Y, target.X, target.Y)
		for _, v := range poly.Points {
			assert.LessOrEqual(t, Dist(target, got), Dist(target, v)+1e-9)
		}
	}
}
