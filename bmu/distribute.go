package bmu

import "fmt"

// Distribute lists the samples matched by each unit.
//
// The i-th element of bmuIdx is the best-matching unit of sample i. The
// result has exactly nUnits keys, 0..nUnits-1; sample indices are appended
// in input order, and units without matches map to an empty slice.
//
// Errors:
//   - ErrUnitOutOfRange if nUnits < 0 or any index lies outside [0, nUnits).
//
// Complexity: O(nUnits + len(bmuIdx)).
func Distribute(bmuIdx []int, nUnits int) (Assignment, error) {
	if nUnits < 0 {
		return nil, fmt.Errorf("nUnits=%d: %w", nUnits, ErrUnitOutOfRange)
	}
	out := make(Assignment, nUnits)
	for u := 0; u < nUnits; u++ {
		out[u] = []int{}
	}
	for i, u := range bmuIdx {
		if u < 0 || u >= nUnits {
			return nil, fmt.Errorf("sample %d matched unit %d of %d: %w", i, u, nUnits, ErrUnitOutOfRange)
		}
		out[u] = append(out[u], i)
	}

	return out, nil
}
