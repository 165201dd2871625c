// Package grid enumerates the units of a rectangular Self-Organizing Map.
//
// A map of Rows×Cols units is addressed in row-major order: unit index i is
// the cell (i / Cols, i % Cols). Every weight matrix in somkit uses this
// order, so Iter, Grid, UnitIndex and UnitCoord all agree with row i of a
// weight matrix.
//
// Usage:
//
//	for r, c := range grid.Iter(2, 3) {
//		fmt.Println(r, c) // (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
//	}
//
// Dims bundles the map extents with the feature count of the weight vectors;
// the number of units is always derived (Rows*Cols), never stored.
package grid
