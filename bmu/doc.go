// Package bmu finds best-matching units (BMUs) and groups samples by the unit
// they matched.
//
// BestMatch compares every input sample with every unit weight vector under a
// distance.Metric and returns, per sample, the index of the closest unit and
// its distance (the quantization error).
//
// Tie-break contract: when several units are at exactly the same minimal
// distance, the unit with the lowest index wins. The search scans units in
// ascending order and only replaces the current best on a strictly smaller
// distance.
//
// Distribute turns the per-sample BMU indices into a per-unit list of sample
// indices; every unit of the map has an entry, empty ones included.
//
// Usage:
//
//	res, err := bmu.BestMatchDense(weights, batch, distance.Euclidean{})
//	if err != nil {
//		return err
//	}
//	hits, err := bmu.Distribute(res.Indices, dims.Units())
package bmu
