package initializer

import (
	"math/rand/v2"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/matrix"
	"gonum.org/v1/gonum/stat/distmv"
)

// Histogram samples each weight vector from the symmetric Dirichlet
// distribution with unit concentrations, so every row is non-negative and
// sums to 1. data is ignored apart from shape validation.
type Histogram struct {
	rnd *rand.Rand
}

// Kind implements Initializer.
func (*Histogram) Kind() Kind { return KindHistogram }

// Init implements Initializer.
func (ini *Histogram) Init(dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error) {
	w, err := prepare(KindHistogram, dims, data)
	if err != nil {
		return nil, err
	}

	alpha := make([]float64, dims.Features)
	for j := range alpha {
		alpha[j] = 1
	}
	dir := distmv.NewDirichlet(alpha, ini.rnd)
	for u := 0; u < dims.Units(); u++ {
		dir.Rand(w.RawRowView(u))
	}

	return w, nil
}
