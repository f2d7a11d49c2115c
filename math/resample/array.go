package resample

import (
	"fmt"
)

// Array is a dense n-dimensional array of float64 values, stored as a
// flat row-major slice: the last dimension varies fastest, matching
// the flattening order of Product.
type Array struct {
	Vals  []float64
	Shape []int
}

// NewArray creates a zeroed Array with the given shape.
func NewArray(shape ...int) *Array {
	n := 1
	for _, s := range shape {
		if s <= 0 {
			panic(fmt.Sprintf("Array dimension of size %d is not positive.", s))
		}
		n *= s
	}
	return &Array{
		Vals:  make([]float64, n),
		Shape: append([]int{}, shape...),
	}
}

// WrapArray creates an Array around an existing flat value slice
// without copying it.
func WrapArray(vals []float64, shape ...int) *Array {
	n := 1
	for _, s := range shape {
		if s <= 0 {
			panic(fmt.Sprintf("Array dimension of size %d is not positive.", s))
		}
		n *= s
	}
	if n != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but shape %v needs %d values.", len(vals), shape, n,
		))
	}
	return &Array{Vals: vals, Shape: append([]int{}, shape...)}
}

func (a *Array) NDim() int { return len(a.Shape) }
func (a *Array) Size() int { return len(a.Vals) }

// Idx returns the flat index of the element at the given
// multidimensional index.
func (a *Array) Idx(idx ...int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf(
			"Got %d indices for an Array of %d dimensions.",
			len(idx), len(a.Shape),
		))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= a.Shape[d] {
			panic(fmt.Sprintf(
				"Index %d out of range for dimension %d of size %d.",
				i, d, a.Shape[d],
			))
		}
		flat = flat*a.Shape[d] + i
	}
	return flat
}

func (a *Array) At(idx ...int) float64 { return a.Vals[a.Idx(idx...)] }

func (a *Array) Set(x float64, idx ...int) { a.Vals[a.Idx(idx...)] = x }

// ShapeEquals tests whether the Array has exactly the given shape.
func (a *Array) ShapeEquals(shape []int) bool {
	if len(a.Shape) != len(shape) {
		return false
	}
	for d := range shape {
		if a.Shape[d] != shape[d] {
			return false
		}
	}
	return true
}
