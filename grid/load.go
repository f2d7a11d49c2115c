package grid

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// LoadTable reads a model grid from a whitespace-separated table file
// and builds the dense flux arrays. params and lines name the grid
// parameters and emission lines; paramCols and lineCols give the table
// column index of each.
func LoadTable(
	file string, params []string, paramCols []int,
	lines []string, lineCols []int,
) (*Raw, error) {
	if len(params) != len(paramCols) {
		return nil, fmt.Errorf(
			"Got %d parameter names, but %d parameter column indices.",
			len(params), len(paramCols),
		)
	}
	if len(lines) != len(lineCols) {
		return nil, fmt.Errorf(
			"Got %d line names, but %d flux column indices.",
			len(lines), len(lineCols),
		)
	}

	colIdxs := append(append([]int{}, paramCols...), lineCols...)
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	return FromColumns(params, cols[:len(params)], lines, cols[len(params):])
}
