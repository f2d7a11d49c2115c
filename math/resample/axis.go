package resample

// Axis is the coordinate sequence of one grid dimension. The values
// are strictly increasing, but do not need to be evenly spaced. An
// Axis is immutable once constructed.
type Axis struct {
	vals     []float64
	min, max float64
	dx       float64 // mean spacing, used for search guesses
}

// NewAxis creates an Axis from a sequence of at least two strictly
// increasing coordinate values. The values are copied, so the caller
// is free to reuse the input slice.
//
// Returns a *ConfigError if the values are too few, out of order, or
// contain duplicates.
func NewAxis(vals []float64) (*Axis, error) {
	if len(vals) < 2 {
		return nil, configErrorf(
			"An axis needs at least 2 values, but got %d.", len(vals),
		)
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return nil, configErrorf(
				"Axis values must be strictly increasing, but "+
					"vals[%d] = %g and vals[%d] = %g.",
				i-1, vals[i-1], i, vals[i],
			)
		}
	}

	ax := &Axis{vals: append([]float64{}, vals...)}
	ax.min, ax.max = ax.vals[0], ax.vals[len(ax.vals)-1]
	ax.dx = (ax.max - ax.min) / float64(len(ax.vals)-1)
	return ax, nil
}

func (ax *Axis) Len() int          { return len(ax.vals) }
func (ax *Axis) Min() float64      { return ax.min }
func (ax *Axis) Max() float64      { return ax.max }
func (ax *Axis) Val(i int) float64 { return ax.vals[i] }

// Vals returns a copy of the axis coordinate values.
func (ax *Axis) Vals() []float64 {
	return append([]float64{}, ax.vals...)
}

// searchLower returns the largest index j such that Val(j) <= x,
// clipped to [0, Len()-2] so that j+1 is always a valid index. x must
// be within [Min(), Max()].
func (ax *Axis) searchLower(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - ax.min) / ax.dx)
	if guess >= 0 && guess < len(ax.vals)-1 &&
		ax.vals[guess] <= x && x <= ax.vals[guess+1] {

		return guess
	}

	// Binary search. lo can never pass Len() - 2, which gives us the
	// clipping at the upper domain bound for free.
	lo, hi := 0, len(ax.vals)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= ax.vals[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
