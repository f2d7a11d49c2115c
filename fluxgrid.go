/*Package fluxgrid resamples photoionisation model flux grids onto
uniformly spaced parameter grids.

Model grids arrive as database tables with one row per gridpoint and
one flux column per emission line, sampled on a rectangular grid whose
per-parameter spacing may be uneven. The grid package turns such a
table into dense flux arrays, and the math/resample package
interpolates those arrays, multilinearly, onto a grid with even
per-parameter spacing, which downstream parameter estimation and
plotting both want. Resampling setup is shared across lines: the
interpolation tables are built once per grid geometry and reused for
every line's flux array.
*/
package fluxgrid

import (
	"log"

	"github.com/astromodels/fluxgrid/grid"
	"github.com/astromodels/fluxgrid/math/resample"
)

// Interpd holds every emission line's flux array resampled onto a
// uniformly spaced grid.
type Interpd struct {
	*grid.Description
	Lines []string
	Flux  map[string]*resample.Array
}

// Interpolate resamples every line of a raw model grid onto a
// uniformly spaced grid with the given number of points along each
// parameter. Negative values left by floating point rounding are
// clamped to zero, so the interpolated fluxes are non-negative like
// their inputs.
func Interpolate(raw *grid.Raw, shape []int) (*Interpd, error) {
	r, err := resample.NewResampler(raw.Axes, shape)
	if err != nil {
		return nil, err
	}

	desc, err := grid.NewDescription(raw.Names, r.OutAxes())
	if err != nil {
		return nil, err
	}

	out := &Interpd{
		Description: desc,
		Lines:       append([]string{}, raw.Lines...),
		Flux:        map[string]*resample.Array{},
	}

	for _, line := range raw.Lines {
		log.Printf("Interpolating %s...", line)
		arr, err := r.Apply(raw.Flux[line])
		if err != nil {
			return nil, err
		}
		clampNegative(arr.Vals)
		out.Flux[line] = arr
	}

	if len(out.Lines) > 0 {
		bytes := out.Flux[out.Lines[0]].Size() * 8
		log.Printf(
			"Interpolated flux arrays: %d bytes for 1 line, %d bytes "+
				"total for all %d lines.",
			bytes, bytes*len(out.Lines), len(out.Lines),
		)
	}

	return out, nil
}

func clampNegative(vals []float64) {
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
	}
}
