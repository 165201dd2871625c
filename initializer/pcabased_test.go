package initializer_test

import (
	"testing"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/initializer"
	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/pca"
	"github.com/katalvlaran/somkit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const latticeTol = 1e-8

// planeData builds points with clearly unequal spread along three axes.
func planeData(t *testing.T) *matrix.Dense {
	t.Helper()
	r := rng.New(21)
	d, err := matrix.NewDense(200, 3)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		row := d.RawRowView(i)
		row[0] = 10*r.NormFloat64() + 3
		row[1] = 3*r.NormFloat64() - 1
		row[2] = 0.5 * r.NormFloat64()
	}
	return d
}

// latticeCoords expresses every weight row in the first two PCA axes.
func latticeCoords(w *matrix.Dense, res pca.Result) [][2]float64 {
	out := make([][2]float64, w.Rows())
	for u := range out {
		row := w.RawRowView(u)
		for k := 0; k < 2; k++ {
			v := res.Components.RawRowView(k)
			var s float64
			for j := range row {
				s += (row[j] - res.Mean[j]) * v[j]
			}
			out[u][k] = s
		}
	}
	return out
}

// TestPCABased_LatticeSpansProjection checks corners hit the projected
// extrema and rows/cols follow the first/second component.
func TestPCABased_LatticeSpansProjection(t *testing.T) {
	data := planeData(t)
	res, err := pca.PCA(data, 2)
	require.NoError(t, err)
	lows, highs, err := matrix.ColumnMinMax(res.Projected)
	require.NoError(t, err)

	dims := mustDims(t, 4, 3, 3)
	ini, err := initializer.New(initializer.KindPCA)
	require.NoError(t, err)
	w, err := ini.Init(dims, data)
	require.NoError(t, err)

	coords := latticeCoords(w, res)
	first := coords[grid.UnitIndex(dims.Cols, 0, 0)]
	last := coords[grid.UnitIndex(dims.Cols, dims.Rows-1, dims.Cols-1)]
	assert.InDelta(t, lows[0], first[0], latticeTol)
	assert.InDelta(t, lows[1], first[1], latticeTol)
	assert.InDelta(t, highs[0], last[0], latticeTol)
	assert.InDelta(t, highs[1], last[1], latticeTol)

	for r, c := range dims.Iter() {
		p := coords[grid.UnitIndex(dims.Cols, r, c)]
		assert.InDelta(t, coords[grid.UnitIndex(dims.Cols, r, 0)][0], p[0], latticeTol, "row %d shares PC1", r)
		assert.InDelta(t, coords[grid.UnitIndex(dims.Cols, 0, c)][1], p[1], latticeTol, "col %d shares PC2", c)
	}
}

// TestPCABased_Adapt lays the first component along the longer grid axis.
func TestPCABased_Adapt(t *testing.T) {
	data := planeData(t)
	res, err := pca.PCA(data, 2)
	require.NoError(t, err)
	lows, highs, err := matrix.ColumnMinMax(res.Projected)
	require.NoError(t, err)

	dims := mustDims(t, 2, 5, 3)
	ini, err := initializer.New(initializer.KindPCA, initializer.WithAdapt())
	require.NoError(t, err)
	w, err := ini.Init(dims, data)
	require.NoError(t, err)

	coords := latticeCoords(w, res)
	// along row 0 the first component sweeps its whole range
	assert.InDelta(t, lows[0], coords[grid.UnitIndex(dims.Cols, 0, 0)][0], latticeTol)
	assert.InDelta(t, highs[0], coords[grid.UnitIndex(dims.Cols, 0, 4)][0], latticeTol)
	// along column 0 the second component does
	assert.InDelta(t, lows[1], coords[grid.UnitIndex(dims.Cols, 0, 0)][1], latticeTol)
	assert.InDelta(t, highs[1], coords[grid.UnitIndex(dims.Cols, 1, 0)][1], latticeTol)
}

// TestPCABased_AdaptNoopForTallGrid keeps the default orientation when rows
// already outnumber columns.
func TestPCABased_AdaptNoopForTallGrid(t *testing.T) {
	data := planeData(t)
	dims := mustDims(t, 5, 2, 3)

	plain, err := initializer.New(initializer.KindPCA)
	require.NoError(t, err)
	adapted, err := initializer.New(initializer.KindPCA, initializer.WithAdapt())
	require.NoError(t, err)

	w1, err := plain.Init(dims, data)
	require.NoError(t, err)
	w2, err := adapted.Init(dims, data)
	require.NoError(t, err)
	assert.InDeltaSlice(t, w1.RawData(), w2.RawData(), latticeTol)
}

// TestPCABased_SingleUnitAxis handles a 1×N grid.
func TestPCABased_SingleUnitAxis(t *testing.T) {
	ini, err := initializer.New(initializer.KindPCA)
	require.NoError(t, err)
	w, err := ini.Init(mustDims(t, 1, 4, 3), planeData(t))
	require.NoError(t, err)
	assert.Equal(t, 4, w.Rows())
}

// TestPCABased_TooFewFeatures needs two components.
func TestPCABased_TooFewFeatures(t *testing.T) {
	ini, err := initializer.New(initializer.KindPCA)
	require.NoError(t, err)
	_, err = ini.Init(mustDims(t, 2, 2, 1), nil)
	assert.ErrorIs(t, err, pca.ErrComponents)
}
