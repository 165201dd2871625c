package initializer

import (
	"math/rand/v2"

	"github.com/katalvlaran/somkit/rng"
)

// Defaults for the data-free code paths.
const (
	// DefaultBoundLow and DefaultBoundHigh delimit the integers from which the
	// random strategy draws per-feature bounds when no data is given.
	DefaultBoundLow  = -10
	DefaultBoundHigh = 10

	// DefaultDataSamples is the number of rows of the synthetic data set the
	// PCA strategy generates when no data is given.
	DefaultDataSamples = 300

	// DefaultDataLow and DefaultDataHigh delimit the integers of that data set.
	DefaultDataLow  = -100
	DefaultDataHigh = 100

	// ConcentrationLow and ConcentrationHigh delimit the integer Dirichlet
	// concentrations of the stochastic strategy, [low, high).
	ConcentrationLow  = 1
	ConcentrationHigh = 10

	// SelfTransitionBoost multiplies the diagonal concentrations of the
	// stochastic strategy.
	SelfTransitionBoost = 2.0
)

// Option configures an Initializer.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// through Option setters passed to New or Lookup.
type Options struct {
	seed   uint64      // rng seed; 0 ⇒ rng.DefaultSeed
	source rand.Source // caller-owned source; overrides seed
	stream uint64      // substream id; 0 ⇒ use the base stream directly
	adapt  bool        // PCA lattice orientation
}

// WithSeed selects a deterministic stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithSource injects a caller-owned random source. It takes precedence over
// WithSeed. The source is consumed by the Initializer and must not be used
// concurrently elsewhere.
func WithSource(src rand.Source) Option {
	return func(o *Options) { o.source = src }
}

// WithStream derives an independent substream with the given id from the
// base stream, for running one Initializer per worker.
func WithStream(id uint64) Option {
	return func(o *Options) { o.stream = id }
}

// WithAdapt orients the PCA lattice so that the grid axis with more units
// follows the principal component with the larger singular value.
// Only KindPCA accepts it.
func WithAdapt() Option {
	return func(o *Options) { o.adapt = true }
}

// gatherOptions applies setters over the zero configuration.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validateFor rejects options the given kind does not consume.
func (o Options) validateFor(k Kind) error {
	if o.adapt && k != KindPCA {
		return ErrOptionNotSupported
	}

	return nil
}

// newRand builds the stream owned by a new Initializer.
func (o Options) newRand() *rand.Rand {
	var base *rand.Rand
	if o.source != nil {
		base = rand.New(o.source)
	} else {
		base = rng.New(o.seed)
	}
	if o.stream != 0 {
		return rng.Derive(base, o.stream)
	}

	return base
}
