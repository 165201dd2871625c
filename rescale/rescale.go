package rescale

import (
	"fmt"

	"github.com/katalvlaran/somkit/matrix"
	"github.com/viterin/vek"
)

// Defaults matching the common [0, 1] normalization along the last axis.
const (
	DefaultMin = 0.0
	DefaultMax = 1.0
	LastAxis   = -1
)

// MinMax returns a rescaled copy of arr in which every 1-D slice along axis
// spans [newMin, newMax]. Negative axes count from the end.
//
// Errors:
//   - ErrNilArray if arr is nil.
//   - ErrAxis if axis is outside [-ndim, ndim).
//
// Complexity: O(size) time, O(size) space.
func MinMax(arr *matrix.Array, newMin, newMax float64, axis int) (*matrix.Array, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	shape := arr.Shape()
	nd := len(shape)
	if axis < 0 {
		axis += nd
	}
	if axis < 0 || axis >= nd {
		return nil, fmt.Errorf("axis %d for %d dimensions: %w", axis, nd, ErrAxis)
	}

	// A slice is addressed by (outer, inner); its k-th element sits at
	// (outer*n + k)*inner + inner-offset.
	n := shape[axis]
	outer, inner := 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	for _, d := range shape[axis+1:] {
		inner *= d
	}

	out, err := matrix.NewArray(arr.RawData(), shape...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return out, nil
	}
	data := out.RawData()
	span := newMax - newMin
	buf := make([]float64, n)

	var o, in, k int
	for o = 0; o < outer; o++ {
		for in = 0; in < inner; in++ {
			base := o*n*inner + in
			for k = 0; k < n; k++ {
				buf[k] = data[base+k*inner]
			}
			lo, hi := vek.Min(buf), vek.Max(buf)
			for k = 0; k < n; k++ {
				data[base+k*inner] = (buf[k]-lo)/(hi-lo)*span + newMin
			}
		}
	}

	return out, nil
}

// Unit rescales along the last axis into [0, 1].
func Unit(arr *matrix.Array) (*matrix.Array, error) {
	return MinMax(arr, DefaultMin, DefaultMax, LastAxis)
}
