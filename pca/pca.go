package pca

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/somkit/matrix"
	"gonum.org/v1/gonum/mat"
)

// PCA centers data, factorizes it and keeps the nComps components with the
// largest singular values.
//
// Errors:
//   - ErrNilData if data is nil.
//   - ErrComponents if nComps < 1 or nComps > min(rows, cols).
//   - ErrFactorization if gonum reports a failed decomposition.
//
// Complexity: O(n·f·min(n,f)) for the SVD, O(n·f·k) for the projection.
func PCA(data *matrix.Dense, nComps int) (Result, error) {
	if data == nil {
		return Result{}, ErrNilData
	}
	n, f := data.Dims()
	if nComps < 1 || nComps > min(n, f) {
		return Result{}, fmt.Errorf("nComps=%d for %dx%d data: %w", nComps, n, f, ErrComponents)
	}

	centered, mean, err := matrix.CenterColumns(data)
	if err != nil {
		return Result{}, err
	}
	xc := matrix.ToGonum(centered)

	var svd mat.SVD
	if ok := svd.Factorize(xc, mat.SVDThin); !ok {
		return Result{}, ErrFactorization
	}
	vals := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v) // f×min(n,f), column j pairs with vals[j]

	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(vals[b], vals[a])
	})
	order = order[:nComps]

	res := Result{Values: make([]float64, nComps), Mean: mean}
	comps := mat.NewDense(nComps, f, nil)
	for k, j := range order {
		res.Values[k] = vals[j]
		for i := 0; i < f; i++ {
			comps.Set(k, i, v.At(i, j))
		}
	}

	var proj mat.Dense
	proj.Mul(xc, comps.T())

	if res.Components, err = matrix.FromGonum(comps); err != nil {
		return Result{}, err
	}
	if res.Projected, err = matrix.FromGonum(&proj); err != nil {
		return Result{}, err
	}

	return res, nil
}
