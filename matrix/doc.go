// Package matrix provides the dense numeric containers shared by every somkit
// primitive.
//
// Two containers are offered:
//
//   - Dense: a two-dimensional, row-major float64 matrix. Weight matrices,
//     data sets and pairwise distance tables are Dense values.
//   - Array: an N-dimensional, row-major float64 array with an explicit shape.
//     Used where rank itself is part of the contract (best-match input
//     batches may be 1-D or 2-D; rescaling works along any axis).
//
// Column statistics (ColumnMeans, ColumnMinMax, CenterColumns) and a small
// bridge to gonum (ToGonum, FromGonum) complete the package.
//
// Indexing is row-major everywhere: element (i, j) of an r×c Dense lives at
// offset i*c + j, which is also the grid enumeration order of SOM units.
//
// Complexity:
//
//	Rows, Cols, At, Set, RawRowView: O(1).
//	Clone, constructors, statistics: O(r*c).
package matrix
