package resample

// Product returns the cartesian product of the given arrays, with one
// row per combination of input values. The last array varies fastest,
// so rows appear in row-major (C) order:
//
//	Product([]float64{1, 2, 3}, []float64{4, 5}) ->
//	    [[1 4] [1 5] [2 4] [2 5] [3 4] [3 5]]
//
// This ordering is the contract which makes flattened per-point
// vectors reshapable back into grids: a flat vector whose p-th element
// corresponds to the p-th Product row of the per-axis coordinate
// arrays is already in the memory order of an Array with those axes as
// its dimensions.
func Product(arrays ...[]float64) [][]float64 {
	n := 1
	for _, a := range arrays {
		n *= len(a)
	}

	flat := make([]float64, n*len(arrays))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = flat[i*len(arrays) : (i+1)*len(arrays)]
	}

	inner := n
	for col, a := range arrays {
		inner /= len(a)
		for i := 0; i < n; i++ {
			rows[i][col] = a[(i/inner)%len(a)]
		}
	}
	return rows
}

// IntProduct is Product for int arrays.
func IntProduct(arrays ...[]int) [][]int {
	n := 1
	for _, a := range arrays {
		n *= len(a)
	}

	flat := make([]int, n*len(arrays))
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = flat[i*len(arrays) : (i+1)*len(arrays)]
	}

	inner := n
	for col, a := range arrays {
		inner /= len(a)
		for i := 0; i < n; i++ {
			rows[i][col] = a[(i/inner)%len(a)]
		}
	}
	return rows
}
