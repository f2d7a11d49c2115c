package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct(t *testing.T) {
	rows := Product([]float64{1, 2, 3}, []float64{4, 5}, []float64{6, 7})

	expected := [][]float64{
		{1, 4, 6}, {1, 4, 7}, {1, 5, 6}, {1, 5, 7},
		{2, 4, 6}, {2, 4, 7}, {2, 5, 6}, {2, 5, 7},
		{3, 4, 6}, {3, 4, 7}, {3, 5, 6}, {3, 5, 7},
	}
	assert.Equal(t, expected, rows)
}

func TestProductSingleArray(t *testing.T) {
	rows := Product([]float64{3, 1, 2})
	assert.Equal(t, [][]float64{{3}, {1}, {2}}, rows)
}

func TestIntProduct(t *testing.T) {
	rows := IntProduct([]int{0, 1}, []int{0, 1})
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, rows)
}

func TestProductMatchesArrayOrder(t *testing.T) {
	// The p-th Product row of the axis value arrays must land on the
	// p-th element of a flat row-major Array with those dimensions.
	xs, ys := []float64{10, 20, 30}, []float64{1, 2}
	rows := Product(xs, ys)

	arr := NewArray(len(xs), len(ys))
	for i := range xs {
		for j := range ys {
			arr.Set(xs[i]+ys[j], i, j)
		}
	}

	for p, row := range rows {
		assert.Equal(t, row[0]+row[1], arr.Vals[p], "row %d", p)
	}
}
