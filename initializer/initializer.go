package initializer

import (
	"fmt"

	"github.com/katalvlaran/somkit/grid"
	"github.com/katalvlaran/somkit/matrix"
)

// Initializer produces a (dims.Units() × dims.Features) weight matrix whose
// row i belongs to grid cell (i / dims.Cols, i % dims.Cols).
//
// data is optional; when nil each strategy falls back to its documented
// default. When present its column count must equal dims.Features.
type Initializer interface {
	Kind() Kind
	Init(dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error)
}

// constructors is the dispatch table, indexed by Kind. Read-only.
var constructors = [numKinds]func(o Options) Initializer{
	KindRandom:     func(o Options) Initializer { return &Random{rnd: o.newRand()} },
	KindStochastic: func(o Options) Initializer { return &StochasticMatrix{rnd: o.newRand()} },
	KindPCA:        func(o Options) Initializer { return &PCABased{rnd: o.newRand(), adapt: o.adapt} },
	KindHistogram:  func(o Options) Initializer { return &Histogram{rnd: o.newRand()} },
}

// New builds the Initializer of the given kind.
//
// Errors:
//   - ErrUnknownKind if k is outside the closed set.
//   - ErrOptionNotSupported if an option does not apply to k.
func New(k Kind, opts ...Option) (Initializer, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
	o := gatherOptions(opts...)
	if err := o.validateFor(k); err != nil {
		return nil, fmt.Errorf("%v: %w", k, err)
	}

	return constructors[k](o), nil
}

// Lookup is New keyed by short name ("rnd", "stm", "pca", "hist").
func Lookup(name string, opts ...Option) (Initializer, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	return New(k, opts...)
}

// Weights resolves name, builds the Initializer and runs it once.
func Weights(name string, dims grid.Dims, data *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	ini, err := Lookup(name, opts...)
	if err != nil {
		return nil, err
	}

	return ini.Init(dims, data)
}

// prepare validates dims and data and allocates the output matrix.
func prepare(k Kind, dims grid.Dims, data *matrix.Dense) (*matrix.Dense, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", k, err)
	}
	if data != nil && data.Cols() != dims.Features {
		return nil, fmt.Errorf("%v: data has %d features, dims %d: %w", k, data.Cols(), dims.Features, ErrDataShape)
	}

	return matrix.NewDense(dims.Units(), dims.Features)
}
