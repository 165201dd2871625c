// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a gonum dense matrix for factorizations that somkit
// delegates to gonum (SVD).
// Complexity: O(r*c).
func ToGonum(m *Dense) *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a Dense.
//
// Errors:
//   - ErrNilMatrix if g is nil.
//   - ErrInvalidDimensions if g has a zero extent.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, ErrNilMatrix
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = g.At(i, j)
		}
	}

	return out, nil
}
