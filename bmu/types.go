package bmu

// Result holds one (unit index, distance) pair per input sample, in input order.
type Result struct {
	Indices []int     // best-matching unit per sample
	Errors  []float64 // distance from each sample to its best-matching unit
}

// Len returns the number of samples.
func (r Result) Len() int { return len(r.Indices) }

// Assignment maps every unit index in [0, nUnits) to the indices of the
// samples matched to it, in input order. Unmatched units map to an empty,
// non-nil slice.
type Assignment map[int][]int

// Counts returns the number of samples per unit as a slice indexed by unit.
func (a Assignment) Counts() []int {
	out := make([]int, len(a))
	for u, samples := range a {
		if u >= 0 && u < len(out) {
			out[u] = len(samples)
		}
	}

	return out
}
