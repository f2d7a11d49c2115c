/*Package resample interpolates scalar fields sampled on rectangular
n-dimensional grids with uneven spacing onto grids covering the same
domain with uniform per-axis spacing. Interpolation is multilinear:
linear along each axis, combined multiplicatively across axes.

A Resampler is built once per grid geometry and reused for every field
sharing that geometry; the weight and gather-index tables that dominate
the cost of the interpolation are computed at construction, so each
Apply call is a single gather-multiply-accumulate pass over the
precomputed tables.
*/
package resample

import (
	"gonum.org/v1/gonum/floats"
)

// edge is one of the 2^ndim corners of the grid cell containing an
// output point, with its tables covering every output point at once.
type edge struct {
	// weight[p] is the corner's interpolation weight for the p-th
	// flattened output point.
	weight []float64
	// index[d][p] is the corner's input-grid index along dimension d
	// for the p-th flattened output point.
	index [][]int
}

// Resampler resamples fields from one fixed grid geometry onto a
// uniformly spaced output grid spanning the same domain. The output
// axis bounds equal the input axis bounds, so a Resampler never
// extrapolates.
//
// Apply does not mutate the Resampler or its argument, so one
// Resampler may be shared by concurrent Apply calls.
type Resampler struct {
	ndim              int
	inShape, outShape []int
	strides           []int // row-major strides of the input grid
	outAxes           [][]float64
	edges             []edge // indexed by corner bitmask
}

// NewResampler creates a Resampler from the input grid's axes and the
// requested number of output points along each dimension. Each output
// dimension needs at least 2 points.
//
// Construction is where the time and memory cost of the interpolation
// tables is paid: 2^ndim weight vectors and gather-index tuples, each
// covering every output point. Returns a *ConfigError if the output
// shape doesn't match the axes or an output dimension is too small.
func NewResampler(axes []*Axis, outShape []int) (*Resampler, error) {
	if len(axes) == 0 {
		return nil, configErrorf("A Resampler needs at least one axis.")
	}
	if len(outShape) != len(axes) {
		return nil, configErrorf(
			"Got %d input axes, but the output shape has %d dimensions.",
			len(axes), len(outShape),
		)
	}

	r := &Resampler{
		ndim:     len(axes),
		inShape:  make([]int, len(axes)),
		outShape: append([]int{}, outShape...),
		outAxes:  make([][]float64, len(axes)),
	}

	lowers := make([][]int, r.ndim)
	dists := make([][]float64, r.ndim)
	for d, ax := range axes {
		if outShape[d] < 2 {
			return nil, configErrorf(
				"Output dimension %d has %d points, but needs at least 2.",
				d, outShape[d],
			)
		}
		r.inShape[d] = ax.Len()
		r.outAxes[d], lowers[d], dists[d] = axisWeights(ax, outShape[d])
	}

	r.strides = make([]int, r.ndim)
	r.strides[r.ndim-1] = 1
	for d := r.ndim - 2; d >= 0; d-- {
		r.strides[d] = r.strides[d+1] * r.inShape[d+1]
	}

	r.buildEdges(lowers, dists)
	return r, nil
}

// NewResamplerVals is a convenience wrapper around NewResampler which
// constructs the Axis for each of the given coordinate slices.
func NewResamplerVals(points [][]float64, outShape []int) (*Resampler, error) {
	axes := make([]*Axis, len(points))
	for d := range points {
		ax, err := NewAxis(points[d])
		if err != nil {
			return nil, err
		}
		axes[d] = ax
	}
	return NewResampler(axes, outShape)
}

// axisWeights computes, for a single axis, the uniformly spaced output
// coordinates together with the lower cell edge index and normalized
// cell distance of every output point. The first and last output
// points coincide exactly with the axis bounds, giving distances of
// exactly 0 and 1 there: the final cell's upper edge is hit exactly
// rather than through a zero-width cell.
func axisWeights(ax *Axis, nOut int) (out []float64, lower []int, dist []float64) {
	out = make([]float64, nOut)
	floats.Span(out, ax.Min(), ax.Max())

	lower = make([]int, nOut)
	dist = make([]float64, nOut)
	for i, x := range out {
		j := ax.searchLower(x)
		lower[i] = j
		dist[i] = (x - ax.Val(j)) / (ax.Val(j+1) - ax.Val(j))
	}
	return out, lower, dist
}

// buildEdges fills the 2^ndim edge table. The table is indexed by a
// corner bitmask where bit ndim-1-d holds dimension d's corner side
// (0 = lower cell edge, 1 = upper), so ascending masks enumerate
// corners in the same last-dimension-fastest order as Product.
func (r *Resampler) buildEdges(lowers [][]int, dists [][]float64) {
	// Column d of the product rows is dimension d's per-axis value
	// spread over every flattened output point.
	distRows := Product(dists...)
	lowRows := IntProduct(lowers...)
	n := len(distRows)

	r.edges = make([]edge, 1<<uint(r.ndim))
	for mask := range r.edges {
		e := edge{
			weight: make([]float64, n),
			index:  make([][]int, r.ndim),
		}
		for p := range e.weight {
			e.weight[p] = 1
		}

		for d := 0; d < r.ndim; d++ {
			upper := mask>>uint(r.ndim-1-d)&1 == 1
			idx := make([]int, n)
			if upper {
				// A large distance from the lower edge means the
				// upper edge dominates.
				for p := 0; p < n; p++ {
					e.weight[p] *= distRows[p][d]
					idx[p] = lowRows[p][d] + 1
				}
			} else {
				for p := 0; p < n; p++ {
					e.weight[p] *= 1 - distRows[p][d]
					idx[p] = lowRows[p][d]
				}
			}
			e.index[d] = idx
		}

		r.edges[mask] = e
	}
}

// Apply resamples a single field onto the uniform output grid. The
// field must have the shape of the input axes the Resampler was built
// with; otherwise a *ShapeError is returned.
//
// Every output value is a convex combination of the 2^ndim corner
// values of its containing cell, so it is bounded by the minimum and
// maximum of those corners, and an everywhere-non-negative field
// resamples to non-negative values up to floating point rounding.
// Clamping such rounding residue is left to the caller.
func (r *Resampler) Apply(field *Array) (*Array, error) {
	if !field.ShapeEquals(r.inShape) {
		return nil, shapeErrorf(
			"Field has shape %v, but the Resampler was built for shape %v.",
			field.Shape, r.inShape,
		)
	}

	n := len(r.edges[0].weight)
	out := make([]float64, n)
	buf := make([]float64, n)
	for _, e := range r.edges {
		for p := 0; p < n; p++ {
			flat := 0
			for d, idx := range e.index {
				flat += idx[p] * r.strides[d]
			}
			buf[p] = field.Vals[flat]
		}
		floats.Mul(buf, e.weight)
		floats.Add(out, buf)
	}

	return WrapArray(out, r.outShape...), nil
}

// OutAxes returns a copy of the uniformly spaced output coordinate
// values along each dimension.
func (r *Resampler) OutAxes() [][]float64 {
	out := make([][]float64, r.ndim)
	for d := range r.outAxes {
		out[d] = append([]float64{}, r.outAxes[d]...)
	}
	return out
}

// NDim returns the number of grid dimensions.
func (r *Resampler) NDim() int { return r.ndim }

// InShape returns a copy of the input grid shape.
func (r *Resampler) InShape() []int { return append([]int{}, r.inShape...) }

// OutShape returns a copy of the output grid shape.
func (r *Resampler) OutShape() []int { return append([]int{}, r.outShape...) }
