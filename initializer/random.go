package initializer

import (
	"math/rand/v2"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/matrix"
	"github.com/katalvlaran/somkit/rng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random samples each feature independently and uniformly from [min, max]
// of that feature in data. Without data, each feature's bounds are two
// integers drawn from [DefaultBoundLow, DefaultBoundHigh) and sorted.
type Random struct {
	rnd *rand.Rand
}

// Kind implements Initializer.
func (*Random) Kind() Kind { return KindRandom }

// Init implements Initializer.
func (ini *Random) Init(dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error) {
	w, err := prepare(KindRandom, dims, data)
	if err != nil {
		return nil, err
	}

	var lows, highs []float64
	if data != nil {
		if lows, highs, err = matrix.ColumnMinMax(data); err != nil {
			return nil, err
		}
	} else {
		lows, highs = ini.defaultBounds(dims.Features)
	}

	// feature-major draw order: all units of feature 0, then feature 1, ...
	var i, j int
	raw := w.RawData()
	for j = 0; j < dims.Features; j++ {
		u := distuv.Uniform{Min: lows[j], Max: highs[j], Src: ini.rnd}
		for i = 0; i < dims.Units(); i++ {
			raw[i*dims.Features+j] = u.Rand()
		}
	}

	return w, nil
}

// defaultBounds draws a sorted integer pair per feature.
func (ini *Random) defaultBounds(nFeats int) (lows, highs []float64) {
	lows = make([]float64, nFeats)
	highs = make([]float64, nFeats)
	for j := 0; j < nFeats; j++ {
		a := rng.IntN(ini.rnd, DefaultBoundLow, DefaultBoundHigh)
		b := rng.IntN(ini.rnd, DefaultBoundLow, DefaultBoundHigh)
		lows[j], highs[j] = float64(min(a, b)), float64(max(a, b))
	}

	return lows, highs
}
