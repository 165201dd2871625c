package bmu

import (
	"fmt"

	"github.com/katalvlaran/somkit/distance"
	"github.com/katalvlaran/somkit/matrix"
)

// BestMatch finds the best-matching unit of weights for each sample of inp.
//
// weights must be a 2-D (nUnits, nFeatures) array. inp is a single sample
// (1-D, nFeatures) or a batch (2-D, nSamples×nFeatures).
//
// Validation order:
//  1. weights rank != 2                      → ErrWeightsNotMatrix
//  2. last-axis length of weights != of inp  → ErrFeatureMismatch
//  3. inp rank > 2 (after 1-D promotion)     → ErrInputDims
//
// The full nUnits×nSamples distance table is computed with
// distance.Pairwise, then each column is reduced with a lowest-index-wins
// argmin.
//
// Complexity: O(nUnits*nSamples*nFeatures) time, O(nUnits*nSamples) space.
func BestMatch(weights, inp *matrix.Array, metric distance.Metric) (Result, error) {
	if weights == nil || inp == nil {
		return Result{}, ErrNilInput
	}
	if metric == nil {
		return Result{}, ErrNilMetric
	}
	if weights.NDim() != 2 {
		return Result{}, fmt.Errorf("weights have %d dimensions: %w", weights.NDim(), ErrWeightsNotMatrix)
	}
	wFeat, _ := weights.Dim(-1)
	if inp.NDim() == 0 {
		return Result{}, fmt.Errorf("input is a scalar: %w", ErrFeatureMismatch)
	}
	xFeat, _ := inp.Dim(-1)
	if wFeat != xFeat {
		return Result{}, fmt.Errorf("weights have %d features, input has %d: %w", wFeat, xFeat, ErrFeatureMismatch)
	}
	batch := inp.AtLeast2D()
	if batch.NDim() > 2 {
		return Result{}, fmt.Errorf("input has %d dimensions: %w", batch.NDim(), ErrInputDims)
	}

	nSamples, _ := batch.Dim(0)
	if nSamples == 0 {
		return Result{Indices: []int{}, Errors: []float64{}}, nil
	}
	w, err := weights.Dense()
	if err != nil {
		return Result{}, fmt.Errorf("weights: %w", err)
	}
	x, err := batch.Dense()
	if err != nil {
		return Result{}, fmt.Errorf("input: %w", err)
	}

	return bestMatch(w, x, metric)
}

// BestMatchDense is BestMatch for callers that already hold a Dense batch.
func BestMatchDense(weights, inp *matrix.Dense, metric distance.Metric) (Result, error) {
	if weights == nil || inp == nil {
		return Result{}, ErrNilInput
	}
	if metric == nil {
		return Result{}, ErrNilMetric
	}
	if weights.Cols() != inp.Cols() {
		return Result{}, fmt.Errorf("weights have %d features, input has %d: %w", weights.Cols(), inp.Cols(), ErrFeatureMismatch)
	}

	return bestMatch(weights, inp, metric)
}

// bestMatch reduces the units×samples distance table column by column.
func bestMatch(w, x *matrix.Dense, metric distance.Metric) (Result, error) {
	dists, err := distance.Pairwise(w, x, metric)
	if err != nil {
		return Result{}, err
	}

	nUnits, nSamples := dists.Dims()
	res := Result{
		Indices: make([]int, nSamples),
		Errors:  make([]float64, nSamples),
	}
	raw := dists.RawData()
	var u, s int
	for s = 0; s < nSamples; s++ {
		best, bestIdx := raw[s], 0
		for u = 1; u < nUnits; u++ {
			// strict < keeps the lowest index among equal minima
			if d := raw[u*nSamples+s]; d < best {
				best, bestIdx = d, u
			}
		}
		res.Indices[s] = bestIdx
		res.Errors[s] = best
	}

	return res, nil
}
