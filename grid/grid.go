/*Package grid builds dense flux arrays for rectangular photoionisation
model grids out of flat database tables, one row per gridpoint.

Rows may come in any order and the spacing of parameter values along an
axis may be uneven, but the table must cover a full rectangular grid:
exactly one row for every combination of per-parameter values.
*/
package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/astromodels/fluxgrid/math/resample"
)

// Description records the geometry of a model grid: the name and
// coordinate axis of every parameter, in the order grid arrays are
// indexed.
type Description struct {
	Names []string
	Axes  []*resample.Axis

	// Exact value-to-index lookup per parameter. This is a hashed
	// exact match for placing table rows, not the interpolation
	// search: a row's parameter values always appear verbatim in the
	// axis, so no tolerance is needed.
	valIdx []map[float64]int
}

// NewDescription creates a Description from parameter names and the
// sorted unique coordinate values of each parameter.
func NewDescription(names []string, values [][]float64) (*Description, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf(
			"Got %d parameter names, but %d value arrays.",
			len(names), len(values),
		)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("A grid needs at least one parameter.")
	}

	d := &Description{
		Names:  append([]string{}, names...),
		Axes:   make([]*resample.Axis, len(names)),
		valIdx: make([]map[float64]int, len(names)),
	}
	for p := range names {
		ax, err := resample.NewAxis(values[p])
		if err != nil {
			return nil, fmt.Errorf(
				"Parameter '%s': %s", names[p], err.Error(),
			)
		}
		d.Axes[p] = ax

		d.valIdx[p] = make(map[float64]int)
		for i := 0; i < ax.Len(); i++ {
			d.valIdx[p][ax.Val(i)] = i
		}
	}
	return d, nil
}

// NDim returns the number of grid parameters.
func (d *Description) NDim() int { return len(d.Names) }

// Shape returns the number of gridpoints along each dimension.
func (d *Description) Shape() []int {
	shape := make([]int, len(d.Axes))
	for p, ax := range d.Axes {
		shape[p] = ax.Len()
	}
	return shape
}

// Points returns the total number of gridpoints.
func (d *Description) Points() int {
	n := 1
	for _, ax := range d.Axes {
		n *= ax.Len()
	}
	return n
}

// Values returns a copy of every parameter's coordinate values.
func (d *Description) Values() [][]float64 {
	values := make([][]float64, len(d.Axes))
	for p, ax := range d.Axes {
		values[p] = ax.Vals()
	}
	return values
}

// Raw holds one dense flux array per emission line on the raw,
// unevenly spaced model grid.
type Raw struct {
	*Description
	Lines []string
	Flux  map[string]*resample.Array
}

// FromColumns builds Raw grids from table columns, one row per
// gridpoint. paramCols and lineCols hold one column per parameter and
// emission line respectively, all of equal length.
//
// Non-finite fluxes are replaced with zero. Negative fluxes, tables
// whose row count doesn't match the grid the parameter columns
// describe, and duplicated gridpoints are errors.
func FromColumns(
	params []string, paramCols [][]float64,
	lines []string, lineCols [][]float64,
) (*Raw, error) {
	if len(params) != len(paramCols) {
		return nil, fmt.Errorf(
			"Got %d parameter names, but %d parameter columns.",
			len(params), len(paramCols),
		)
	}
	if len(lines) != len(lineCols) {
		return nil, fmt.Errorf(
			"Got %d line names, but %d flux columns.",
			len(lines), len(lineCols),
		)
	}

	values := make([][]float64, len(paramCols))
	for p, col := range paramCols {
		values[p] = uniqueSorted(col)
	}
	desc, err := NewDescription(params, values)
	if err != nil {
		return nil, err
	}

	nRows := len(paramCols[0])
	if desc.Points() != nRows {
		return nil, fmt.Errorf(
			"The table has %d rows, but its parameter columns describe "+
				"a %v grid of %d points.", nRows, desc.Shape(), desc.Points(),
		)
	}

	raw := &Raw{
		Description: desc,
		Lines:       append([]string{}, lines...),
		Flux:        map[string]*resample.Array{},
	}
	for _, line := range lines {
		arr := resample.NewArray(desc.Shape()...)
		// NaN marks cells no table row has filled yet.
		for i := range arr.Vals {
			arr.Vals[i] = math.NaN()
		}
		raw.Flux[line] = arr
	}

	idx := make([]int, desc.NDim())
	for row := 0; row < nRows; row++ {
		for p := range params {
			i, ok := desc.valIdx[p][paramCols[p][row]]
			if !ok {
				panic("Impossible: column value missing from its own axis.")
			}
			idx[p] = i
		}

		for li, line := range lines {
			arr := raw.Flux[line]
			flat := arr.Idx(idx...)
			if !math.IsNaN(arr.Vals[flat]) {
				return nil, fmt.Errorf(
					"Table row %d repeats a gridpoint that an earlier "+
						"row already filled.", row,
				)
			}

			v := lineCols[li][row]
			if math.IsInf(v, 0) || math.IsNaN(v) {
				v = 0
			}
			if v < 0 {
				return nil, fmt.Errorf(
					"The flux of line '%s' at table row %d is negative (%g).",
					line, row, v,
				)
			}
			arr.Vals[flat] = v
		}
	}
	// Row count matches the gridpoint count and no gridpoint repeats,
	// so every cell is filled: the grid is rectangular and complete.

	return raw, nil
}

func uniqueSorted(vals []float64) []float64 {
	if len(vals) == 0 {
		return nil
	}
	sorted := append([]float64{}, vals...)
	sort.Float64s(sorted)

	out := sorted[0:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
