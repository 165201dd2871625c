package initializer

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/pca"
	"github.com/katalvlaran/somkit/rng"
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
)

// PCABased places the units on a regular lattice in the plane spanned by the
// first two principal components of data, then maps the lattice back into
// feature space: w = p1·v1 + p2·v2 + mean.
//
// The lattice spans the observed min..max of the projected data on each
// component. By default grid rows follow the first component and grid
// columns the second. With WithAdapt, the grid axis with more units follows
// the first component instead.
//
// Without data, DefaultDataSamples rows of integers in
// [DefaultDataLow, DefaultDataHigh) are generated. dims.Features must be at
// least 2, and data needs at least two rows.
type PCABased struct {
	rnd   *rand.Rand
	adapt bool
}

// Kind implements Initializer.
func (*PCABased) Kind() Kind { return KindPCA }

// Adapt reports whether lattice orientation follows the grid aspect.
func (ini *PCABased) Adapt() bool { return ini.adapt }

// Init implements Initializer.
func (ini *PCABased) Init(dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error) {
	w, err := prepare(KindPCA, dims, data)
	if err != nil {
		return nil, err
	}
	if data == nil {
		if data, err = ini.defaultData(dims.Features); err != nil {
			return nil, err
		}
	}

	res, err := pca.PCA(data, pca.DefaultComponents)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", KindPCA, err)
	}
	lows, highs, err := matrix.ColumnMinMax(res.Projected)
	if err != nil {
		return nil, err
	}

	// rowPC is the component laid out along grid rows.
	rowPC, colPC := 0, 1
	if ini.adapt && dims.Cols > dims.Rows {
		rowPC, colPC = 1, 0
	}
	rowCoords := linspace(lows[rowPC], highs[rowPC], dims.Rows)
	colCoords := linspace(lows[colPC], highs[colPC], dims.Cols)

	v := [2][]float64{res.Components.RawRowView(0), res.Components.RawRowView(1)}
	tmp := make([]float64, dims.Features)
	var p [2]float64
	for r, c := range dims.Iter() {
		p[rowPC], p[colPC] = rowCoords[r], colCoords[c]
		dst := w.RawRowView(grid.UnitIndex(dims.Cols, r, c))
		copy(dst, res.Mean)
		vek.MulNumber_Into(tmp, v[0], p[0])
		vek.Add_Inplace(dst, tmp)
		vek.MulNumber_Into(tmp, v[1], p[1])
		vek.Add_Inplace(dst, tmp)
	}

	return w, nil
}

// defaultData draws the synthetic integer data set used without input data.
func (ini *PCABased) defaultData(nFeats int) (*matrix.Dense, error) {
	d, err := matrix.NewDense(DefaultDataSamples, nFeats)
	if err != nil {
		return nil, err
	}
	raw := d.RawData()
	for i := range raw {
		raw[i] = float64(rng.IntN(ini.rnd, DefaultDataLow, DefaultDataHigh))
	}

	return d, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive; n == 1
// yields lo.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	return floats.Span(out, lo, hi)
}
