package distance

import (
	"fmt"

	"github.com/katalvlaran/somkit/matrix"
)

// Pairwise returns the a.Rows()×b.Rows() table whose element (i, j) is
// m.Distance(row i of a, row j of b).
//
// Errors:
//   - ErrNilMetric if m is nil.
//   - matrix.ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a and b differ in column count.
//
// Complexity: O(ra*rb*c) time, O(ra*rb) space.
func Pairwise(a, b *matrix.Dense, m Metric) (*matrix.Dense, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.Cols() != b.Cols() {
		return nil, fmt.Errorf("Pairwise: %d vs %d features: %w", a.Cols(), b.Cols(), ErrDimensionMismatch)
	}

	out, err := matrix.NewDense(a.Rows(), b.Rows())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		ai := a.RawRowView(i)
		dst := out.RawRowView(i)
		for j = 0; j < b.Rows(); j++ {
			dst[j] = m.Distance(ai, b.RawRowView(j))
		}
	}

	return out, nil
}
