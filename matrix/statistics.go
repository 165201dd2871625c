// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics used by initializers and PCA: means, extrema, centering.
//   - Fixed i→j traversal on the flat row-major buffer; no randomness.

package matrix

import "fmt"

const (
	opColumnMeans   = "ColumnMeans"
	opColumnMinMax  = "ColumnMinMax"
	opCenterColumns = "CenterColumns"
)

// matrixErrorf prefixes an error with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
//
// Errors:
//   - ErrNilMatrix if X is nil.
//
// Complexity: O(r*c) time, O(c) space.
func ColumnMeans(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opColumnMeans, ErrNilMatrix)
	}
	r, c := X.r, X.c
	means := make([]float64, c)

	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// ColumnMinMax returns the per-column minimum and maximum.
//
// Errors:
//   - ErrNilMatrix if X is nil.
//
// Complexity: O(r*c) time, O(c) space.
func ColumnMinMax(X *Dense) (mins, maxs []float64, err error) {
	if X == nil {
		return nil, nil, matrixErrorf(opColumnMinMax, ErrNilMatrix)
	}
	r, c := X.r, X.c
	mins = make([]float64, c)
	maxs = make([]float64, c)
	copy(mins, X.data[:c])
	copy(maxs, X.data[:c])

	var i, j int
	var v float64
	for i = 1; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = X.data[base+j]
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// CenterColumns subtracts the per-column mean from every element.
// No variance scaling is applied.
//
// Returns the centered copy and the column means.
//
// Errors:
//   - ErrNilMatrix if X is nil.
//
// Complexity: O(r*c) time and space.
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out := X.Clone()
	c := out.c

	var i, j int
	for i = 0; i < out.r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] -= means[j]
		}
	}

	return out, means, nil
}
