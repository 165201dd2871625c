package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/pca"
	"github.com/katalvlaran/somkit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// randomData draws an n×f matrix with anisotropic columns.
func randomData(t *testing.T, n, f int, seed uint64) *matrix.Dense {
	t.Helper()
	r := rng.New(seed)
	m, err := matrix.NewDense(n, f)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		for j := range row {
			row[j] = r.NormFloat64() * float64(j+1)
		}
	}
	return m
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// TestPCA_Orthonormal checks the components form an orthonormal set.
func TestPCA_Orthonormal(t *testing.T) {
	data := randomData(t, 50, 5, 3)
	res, err := pca.PCA(data, 3)
	require.NoError(t, err)
	require.Equal(t, 3, res.Components.Rows())
	require.Equal(t, 5, res.Components.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := dot(res.Components.RawRowView(i), res.Components.RawRowView(j))
			if i == j {
				assert.InDelta(t, 1.0, d, 1e-9, "norm of %d", i)
			} else {
				assert.InDelta(t, 0.0, d, 1e-9, "dot(%d,%d)", i, j)
			}
		}
	}
}

// TestPCA_ValuesDescending checks ordering and that the projection norms
// equal the singular values.
func TestPCA_ValuesDescending(t *testing.T) {
	data := randomData(t, 40, 4, 11)
	res, err := pca.PCA(data, 4)
	require.NoError(t, err)
	assert.IsNonIncreasing(t, res.Values)

	for k := 0; k < 4; k++ {
		col, err := res.Projected.Col(k)
		require.NoError(t, err)
		assert.InDelta(t, res.Values[k], math.Sqrt(dot(col, col)), 1e-8, "component %d", k)
	}
}

// TestPCA_LineData recovers the diagonal direction of collinear points.
func TestPCA_LineData(t *testing.T) {
	data, err := matrix.NewDenseFrom([][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, err)

	res, err := pca.PCA(data, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 1.5}, res.Mean, tol)

	v := res.Components.RawRowView(0)
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(v[0]), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, math.Abs(v[1]), 1e-9)
	assert.InDelta(t, math.Sqrt(10), res.Values[0], 1e-9)
	assert.InDelta(t, 0.0, res.Values[1], 1e-9)

	require.Equal(t, 4, res.Projected.Rows())
	require.Equal(t, 2, res.Projected.Cols())
}

// TestPCA_DefaultComponents uses the initializer default on 3-D data.
func TestPCA_DefaultComponents(t *testing.T) {
	res, err := pca.PCA(randomData(t, 20, 3, 5), pca.DefaultComponents)
	require.NoError(t, err)
	assert.Len(t, res.Values, pca.DefaultComponents)
	assert.Equal(t, 20, res.Projected.Rows())
}

// TestPCA_Errors covers nil data and component bounds.
func TestPCA_Errors(t *testing.T) {
	_, err := pca.PCA(nil, 2)
	assert.ErrorIs(t, err, pca.ErrNilData)

	data := randomData(t, 3, 5, 1)
	_, err = pca.PCA(data, 0)
	assert.ErrorIs(t, err, pca.ErrComponents)
	_, err = pca.PCA(data, 4)
	assert.ErrorIs(t, err, pca.ErrComponents)
}
