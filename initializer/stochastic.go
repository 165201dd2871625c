package initializer

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/rng"
	"gonum.org/v1/gonum/stat/distmv"
)

// StochasticMatrix samples weight vectors that are flattened N×N stochastic
// matrices, N² = dims.Features.
//
// For every state s a concentration vector of integers in
// [ConcentrationLow, ConcentrationHigh) is drawn; its own entry (s, s) is
// multiplied by SelfTransitionBoost. Row s of each unit's matrix is a sample
// of Dirichlet(alpha_s), so each of the N row blocks of a weight vector is
// non-negative and sums to 1. data is ignored apart from shape validation.
type StochasticMatrix struct {
	rnd *rand.Rand
}

// Kind implements Initializer.
func (*StochasticMatrix) Kind() Kind { return KindStochastic }

// Init implements Initializer.
//
// Errors:
//   - ErrNotSquare if dims.Features is not a perfect square.
func (ini *StochasticMatrix) Init(dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error) {
	w, err := prepare(KindStochastic, dims, data)
	if err != nil {
		return nil, err
	}
	nStates, ok := perfectSqrt(dims.Features)
	if !ok {
		return nil, fmt.Errorf("%v: %d features: %w", KindStochastic, dims.Features, ErrNotSquare)
	}

	alpha := ini.concentrations(nStates)
	var s, u int
	for s = 0; s < nStates; s++ {
		dir := distmv.NewDirichlet(alpha[s], ini.rnd)
		for u = 0; u < dims.Units(); u++ {
			row := w.RawRowView(u)
			dir.Rand(row[s*nStates : (s+1)*nStates])
		}
	}

	return w, nil
}

// concentrations draws the N×N integer concentration matrix and boosts its diagonal.
func (ini *StochasticMatrix) concentrations(n int) [][]float64 {
	alpha := make([][]float64, n)
	for s := range alpha {
		alpha[s] = make([]float64, n)
		for k := range alpha[s] {
			alpha[s][k] = float64(rng.IntN(ini.rnd, ConcentrationLow, ConcentrationHigh))
		}
		alpha[s][s] *= SelfTransitionBoost
	}

	return alpha
}

// perfectSqrt returns (√n, true) when n is a perfect square.
func perfectSqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := int(math.Round(math.Sqrt(float64(n))))

	return r, r*r == n
}
