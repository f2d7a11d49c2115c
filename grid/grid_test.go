package grid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// shuffledColumns builds table columns for a 2 x 3 grid with
// flux(x, y) = x + 10*y, with the rows in scrambled order.
func shuffledColumns() (xs, ys, flux []float64) {
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 0.5, 2} {
			xs = append(xs, x)
			ys = append(ys, y)
			flux = append(flux, x+10*y)
		}
	}

	rand.Seed(7)
	for i := len(xs) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
		ys[i], ys[j] = ys[j], ys[i]
		flux[i], flux[j] = flux[j], flux[i]
	}
	return xs, ys, flux
}

func TestFromColumns(t *testing.T) {
	xs, ys, flux := shuffledColumns()

	raw, err := FromColumns(
		[]string{"x", "y"}, [][]float64{xs, ys},
		[]string{"Hbeta"}, [][]float64{flux},
	)
	assert.NoError(t, err)

	assert.Equal(t, []int{2, 3}, raw.Shape())
	assert.Equal(t, 6, raw.Points())
	assert.Equal(t, [][]float64{{0, 1}, {0, 0.5, 2}}, raw.Values())

	arr := raw.Flux["Hbeta"]
	for i, x := range []float64{0, 1} {
		for j, y := range []float64{0, 0.5, 2} {
			assert.Equal(t, x+10*y, arr.At(i, j), "(%d, %d)", i, j)
		}
	}
}

func TestFromColumnsCleansNonFinite(t *testing.T) {
	xs, ys, flux := shuffledColumns()
	flux[0] = math.NaN()
	flux[1] = math.Inf(1)

	raw, err := FromColumns(
		[]string{"x", "y"}, [][]float64{xs, ys},
		[]string{"Hbeta"}, [][]float64{flux},
	)
	assert.NoError(t, err)

	for _, v := range raw.Flux["Hbeta"].Vals {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestFromColumnsNegativeFlux(t *testing.T) {
	xs, ys, flux := shuffledColumns()
	flux[2] = -1

	_, err := FromColumns(
		[]string{"x", "y"}, [][]float64{xs, ys},
		[]string{"Hbeta"}, [][]float64{flux},
	)
	assert.Error(t, err)
}

func TestFromColumnsNotRectangular(t *testing.T) {
	xs, ys, flux := shuffledColumns()

	// Dropping a row leaves a hole in the grid.
	_, err := FromColumns(
		[]string{"x", "y"}, [][]float64{xs[1:], ys[1:]},
		[]string{"Hbeta"}, [][]float64{flux[1:]},
	)
	assert.Error(t, err)
}

func TestFromColumnsDuplicateGridpoint(t *testing.T) {
	xs, ys, flux := shuffledColumns()

	// Repeating a row keeps the row count consistent with a 2 x 3
	// grid only if another gridpoint goes missing, which must be
	// caught.
	xs[0], ys[0] = xs[1], ys[1]

	_, err := FromColumns(
		[]string{"x", "y"}, [][]float64{xs, ys},
		[]string{"Hbeta"}, [][]float64{flux},
	)
	assert.Error(t, err)
}

func TestNewDescriptionErrors(t *testing.T) {
	_, err := NewDescription([]string{"x"}, [][]float64{{0, 1}, {0, 1}})
	assert.Error(t, err)

	_, err = NewDescription([]string{}, [][]float64{})
	assert.Error(t, err)

	_, err = NewDescription([]string{"x"}, [][]float64{{1, 0}})
	assert.Error(t, err)
}
