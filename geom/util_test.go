package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.True(t, Equal(-0.5, -0.5-Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
	assert.False(t, Equal(0, Tolerance))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 5.0, Dist(Point{-3, -4}, Point{0, 0}))
	assert.Equal(t, 0.0, Dist(Point{2, 2}, Point{2, 2}))
}
