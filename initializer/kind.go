package initializer

import "fmt"

// Kind enumerates the available initialization strategies.
type Kind int

const (
	// KindRandom samples every feature uniformly within its observed range.
	KindRandom Kind = iota

	// KindStochastic samples flattened stochastic matrices.
	KindStochastic

	// KindPCA spans a lattice over the first two principal components.
	KindPCA

	// KindHistogram samples sum-normalized histograms.
	KindHistogram

	numKinds
)

// Short names accepted by ParseKind and Lookup.
const (
	NameRandom     = "rnd"
	NameStochastic = "stm"
	NamePCA        = "pca"
	NameHistogram  = "hist"
)

var kindNames = [numKinds]string{
	KindRandom:     NameRandom,
	KindStochastic: NameStochastic,
	KindPCA:        NamePCA,
	KindHistogram:  NameHistogram,
}

// ParseKind resolves a short name.
//
// Errors:
//   - ErrUnknownKind for names outside {"rnd", "stm", "pca", "hist"}.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// String returns the short name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every strategy in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for k := range out {
		out[k] = Kind(k)
	}

	return out
}
