package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayIndexing(t *testing.T) {
	arr := NewArray(2, 3, 4)
	assert.Equal(t, 3, arr.NDim())
	assert.Equal(t, 24, arr.Size())

	// Row-major: the last index varies fastest.
	assert.Equal(t, 0, arr.Idx(0, 0, 0))
	assert.Equal(t, 1, arr.Idx(0, 0, 1))
	assert.Equal(t, 4, arr.Idx(0, 1, 0))
	assert.Equal(t, 12, arr.Idx(1, 0, 0))
	assert.Equal(t, 23, arr.Idx(1, 2, 3))

	arr.Set(5, 1, 2, 3)
	assert.Equal(t, 5.0, arr.At(1, 2, 3))
	assert.Equal(t, 5.0, arr.Vals[23])
}

func TestWrapArray(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6}
	arr := WrapArray(vals, 2, 3)
	assert.Equal(t, 4.0, arr.At(1, 0))

	// Wrapping doesn't copy.
	vals[3] = 40
	assert.Equal(t, 40.0, arr.At(1, 0))
}

func TestShapeEquals(t *testing.T) {
	arr := NewArray(2, 3)
	assert.True(t, arr.ShapeEquals([]int{2, 3}))
	assert.False(t, arr.ShapeEquals([]int{3, 2}))
	assert.False(t, arr.ShapeEquals([]int{2, 3, 1}))
	assert.False(t, arr.ShapeEquals([]int{2}))
}
