package rescale_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/rescale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func mustArray(t *testing.T, data []float64, shape ...int) *matrix.Array {
	t.Helper()
	a, err := matrix.NewArray(data, shape...)
	require.NoError(t, err)
	return a
}

// TestMinMax_Vector checks the documented four-element example.
func TestMinMax_Vector(t *testing.T) {
	in := mustArray(t, []float64{1, 2, 3, 4})
	out, err := rescale.Unit(in)
	require.NoError(t, err)

	got := out.Data()
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, got, eps)
	assert.Equal(t, 0.0, got[0], "min maps exactly")
	assert.Equal(t, 1.0, got[3], "max maps exactly")
	assert.Equal(t, []float64{1, 2, 3, 4}, in.Data(), "input untouched")
}

// TestMinMax_CustomRange maps into [-1, 1].
func TestMinMax_CustomRange(t *testing.T) {
	out, err := rescale.MinMax(mustArray(t, []float64{10, 15, 20}), -1, 1, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, out.Data(), eps)
}

// TestMinMax_Axes rescales a 2×3 array by rows and by columns.
func TestMinMax_Axes(t *testing.T) {
	in := mustArray(t, []float64{
		0, 5, 10,
		2, 4, 6,
	}, 2, 3)

	byRow, err := rescale.MinMax(in, 0, 1, -1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0, 0.5, 1}, byRow.Data(), eps)

	byCol, err := rescale.MinMax(in, 0, 1, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 1, 1, 0, 0}, byCol.Data(), eps)
	assert.Equal(t, []int{2, 3}, byCol.Shape())
}

// TestMinMax_MiddleAxis rescales along axis 1 of a 2×2×2 array.
func TestMinMax_MiddleAxis(t *testing.T) {
	in := mustArray(t, []float64{
		1, 10,
		3, 30,

		5, 0,
		7, 100,
	}, 2, 2, 2)
	out, err := rescale.MinMax(in, 0, 1, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 1, 1, 0, 0, 1, 1}, out.Data(), eps)
}

// TestMinMax_ConstantSliceIsNaN documents the unchecked zero-range case.
func TestMinMax_ConstantSliceIsNaN(t *testing.T) {
	out, err := rescale.Unit(mustArray(t, []float64{2, 2, 2}))
	require.NoError(t, err)
	for _, v := range out.Data() {
		assert.True(t, math.IsNaN(v))
	}
}

// TestMinMax_Errors covers nil input and bad axes.
func TestMinMax_Errors(t *testing.T) {
	_, err := rescale.MinMax(nil, 0, 1, 0)
	assert.ErrorIs(t, err, rescale.ErrNilArray)

	in := mustArray(t, []float64{1, 2, 3, 4}, 2, 2)
	_, err = rescale.MinMax(in, 0, 1, 2)
	assert.ErrorIs(t, err, rescale.ErrAxis)
	_, err = rescale.MinMax(in, 0, 1, -3)
	assert.ErrorIs(t, err, rescale.ErrAxis)
}

// TestMinMax_EmptyAxis returns an empty copy.
func TestMinMax_EmptyAxis(t *testing.T) {
	out, err := rescale.Unit(mustArray(t, nil, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Size())
}
