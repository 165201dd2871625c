package grid

import "iter"

// Iter returns the (row, col) multi-indices of an nRows×nCols grid in
// row-major order: rows in the outer loop, columns in the inner loop.
//
// The sequence is lazy and restartable: every range over it starts again at
// (0, 0). Non-positive extents yield an empty sequence.
//
// Complexity: O(1) per pair.
func Iter(nRows, nCols int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := 0; r < nRows; r++ {
			for c := 0; c < nCols; c++ {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// Grid materializes Iter into an (nRows*nCols)×2 table; row i holds the
// multi-index of unit i.
//
// Complexity: O(nRows*nCols) time and memory.
func Grid(nRows, nCols int) [][2]int {
	if nRows <= 0 || nCols <= 0 {
		return [][2]int{}
	}
	out := make([][2]int, 0, nRows*nCols)
	for r, c := range Iter(nRows, nCols) {
		out = append(out, [2]int{r, c})
	}

	return out
}

// UnitIndex maps the cell (row, col) of a grid with nCols columns to its
// row-major unit index.
func UnitIndex(nCols, row, col int) int { return row*nCols + col }

// UnitCoord is the inverse of UnitIndex.
func UnitCoord(nCols, idx int) (row, col int) { return idx / nCols, idx % nCols }
