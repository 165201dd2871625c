// SPDX-License-Identifier: MIT

// Package matrix - N-dimensional row-major arrays.
//
// Array carries its rank explicitly so that callers can validate it
// (best-match inputs are 1-D or 2-D, rescaling picks an axis). Extents of
// zero are legal: a (0, f) batch holds no samples but still has f features.

package matrix

import "fmt"

// Array is an N-dimensional row-major float64 array.
// The last axis varies fastest.
type Array struct {
	shape []int
	data  []float64
}

// NewArray wraps a copy of data with the given shape.
// A call without shape arguments produces a 1-D array of len(data).
//
// Errors:
//   - ErrShape if any extent is negative.
//   - ErrDataLength if the product of extents differs from len(data).
//
// Complexity: O(len(data)).
func NewArray(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if size != len(data) {
		return nil, fmt.Errorf("NewArray(%v): got %d values: %w", shape, len(data), ErrDataLength)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Array{shape: append([]int(nil), shape...), data: buf}, nil
}

// Zeros allocates a zero-filled array of the given shape.
func Zeros(shape ...int) (*Array, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}

	return &Array{shape: append([]int(nil), shape...), data: make([]float64, size)}, nil
}

// shapeSize returns the product of extents, rejecting negative ones.
func shapeSize(shape []int) (int, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("shape %v: %w", shape, ErrShape)
		}
		size *= n
	}

	return size, nil
}

// Shape returns a copy of the extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// NDim returns the rank.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Dim returns the extent of axis k; negative k counts from the end.
func (a *Array) Dim(k int) (int, error) {
	if k < 0 {
		k += len(a.shape)
	}
	if k < 0 || k >= len(a.shape) {
		return 0, fmt.Errorf("Array.Dim(%d): %w", k, ErrOutOfRange)
	}

	return a.shape[k], nil
}

// Data returns a copy of the row-major values.
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// RawData returns the backing slice without copying.
func (a *Array) RawData() []float64 { return a.data }

// offset converts a multi-index into a flat position.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("Array index %v for shape %v: %w", idx, a.shape, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("Array index %v for shape %v: %w", idx, a.shape, ErrOutOfRange)
		}
		off = off*a.shape[k] + i
	}

	return off, nil
}

// At returns the element at the multi-index idx.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set writes v at the multi-index idx.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Reshape returns a copy with a new shape holding the same number of elements.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return NewArray(a.data, shape...)
}

// AtLeast2D returns a 2-D view of a 0-D or 1-D array: a vector of length n
// becomes a single row (1, n); a scalar becomes (1, 1). Arrays of rank >= 2
// are returned unchanged. The result shares storage with a.
func (a *Array) AtLeast2D() *Array {
	switch len(a.shape) {
	case 0:
		return &Array{shape: []int{1, 1}, data: a.data}
	case 1:
		return &Array{shape: []int{1, a.shape[0]}, data: a.data}
	default:
		return a
	}
}

// Dense copies a 2-D array into a Dense matrix.
//
// Errors:
//   - ErrNotMatrix if the rank is not 2.
//   - ErrInvalidDimensions if either extent is zero.
func (a *Array) Dense() (*Dense, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("Array.Dense: rank %d: %w", len(a.shape), ErrNotMatrix)
	}

	return NewDenseData(a.shape[0], a.shape[1], a.data)
}
