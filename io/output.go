package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/astromodels/fluxgrid/math/resample"
)

// WriteGridTable writes a resampled model grid as a whitespace-
// separated text table: one row per gridpoint with the parameter
// values first and one flux column per line after them. Rows appear
// in row-major order, the last parameter varying fastest, matching
// the memory order of the flux arrays.
//
// axes holds the coordinate values of each parameter and flux the
// flattened array of each line; every flux slice must have exactly one
// value per gridpoint.
func WriteGridTable(
	fname string, params []string, axes [][]float64,
	lines []string, flux [][]float64,
) error {
	if len(params) != len(axes) {
		return fmt.Errorf(
			"Got %d parameter names, but %d axes.", len(params), len(axes),
		)
	}
	if len(lines) != len(flux) {
		return fmt.Errorf(
			"Got %d line names, but %d flux arrays.", len(lines), len(flux),
		)
	}

	rows := resample.Product(axes...)
	for li := range flux {
		if len(flux[li]) != len(rows) {
			return fmt.Errorf(
				"The flux array of line '%s' has %d values, but the grid "+
					"has %d points.", lines[li], len(flux[li]), len(rows),
			)
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "#")
	for _, p := range params {
		fmt.Fprintf(w, " %s", p)
	}
	for _, line := range lines {
		fmt.Fprintf(w, " %s", line)
	}
	fmt.Fprintf(w, "\n")

	for p, row := range rows {
		for _, v := range row {
			fmt.Fprintf(w, "%.8g ", v)
		}
		for li := range flux {
			fmt.Fprintf(w, "%.8g ", flux[li][p])
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}
