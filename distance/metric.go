package distance

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/viterin/vek"
)

// Metric computes the distance between two equally long vectors.
type Metric interface {
	Distance(a, b []float64) float64
	String() string
}

// Metric names.
const (
	NameEuclidean   = "euclidean"
	NameSqEuclidean = "sqeuclidean"
	NameCityblock   = "cityblock"
	NameManhattan   = "manhattan"
	NameChebyshev   = "chebyshev"
	NameCosine      = "cosine"
	NameCorrelation = "correlation"
)

// Euclidean is the L2 distance.
type Euclidean struct{}

func (Euclidean) Distance(a, b []float64) float64 { return vek.Distance(a, b) }
func (Euclidean) String() string                  { return NameEuclidean }

// SqEuclidean is the squared L2 distance.
type SqEuclidean struct{}

func (SqEuclidean) Distance(a, b []float64) float64 {
	d := vek.Sub(a, b)

	return vek.Dot(d, d)
}
func (SqEuclidean) String() string { return NameSqEuclidean }

// Cityblock is the L1 distance.
type Cityblock struct{}

func (Cityblock) Distance(a, b []float64) float64 { return vek.ManhattanDistance(a, b) }
func (Cityblock) String() string                  { return NameCityblock }

// Chebyshev is the L∞ distance.
type Chebyshev struct{}

func (Chebyshev) Distance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	d := vek.Sub(a, b)
	vek.Abs_Inplace(d)

	return vek.Max(d)
}
func (Chebyshev) String() string { return NameChebyshev }

// Cosine is one minus the cosine similarity.
type Cosine struct{}

func (Cosine) Distance(a, b []float64) float64 {
	return math.Abs(1 - vek.CosineSimilarity(a, b))
}
func (Cosine) String() string { return NameCosine }

// Correlation is one minus the Pearson correlation.
type Correlation struct{}

func (Correlation) Distance(a, b []float64) float64 {
	ca := vek.SubNumber(a, vek.Mean(a))
	cb := vek.SubNumber(b, vek.Mean(b))

	return math.Abs(1 - vek.CosineSimilarity(ca, cb))
}
func (Correlation) String() string { return NameCorrelation }

// registry maps every accepted name to its metric. Read-only after init.
var registry = map[string]Metric{
	NameEuclidean:   Euclidean{},
	NameSqEuclidean: SqEuclidean{},
	NameCityblock:   Cityblock{},
	NameManhattan:   Cityblock{},
	NameChebyshev:   Chebyshev{},
	NameCosine:      Cosine{},
	NameCorrelation: Correlation{},
}

// Lookup resolves a metric by name. Names are case-insensitive.
//
// Errors:
//   - ErrUnknownMetric if name is not registered.
func Lookup(name string) (Metric, error) {
	m, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}

	return m, nil
}

// MustLookup is Lookup for names known at compile time; it panics on error.
func MustLookup(name string) Metric {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}

	return m
}

// Names returns the registered names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}
