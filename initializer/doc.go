// Package initializer produces initial SOM weight matrices.
//
// Four interchangeable strategies implement the Initializer interface:
//
//	Kind              name    strategy
//	KindRandom        "rnd"   per-feature uniform samples within the data range
//	KindStochastic    "stm"   rows are flattened N×N stochastic matrices (Dirichlet rows)
//	KindPCA           "pca"   regular lattice in the plane of the first two principal components
//	KindHistogram     "hist"  rows are sum-normalized histograms (symmetric Dirichlet)
//
// Strategies are selected through a closed Kind enum; ParseKind and Lookup
// resolve the short names above. The dispatch table is built at package
// initialization and never mutated.
//
// Configuration is explicit and validated at construction:
//
//	WithSeed(seed)      deterministic PCG stream (0 ⇒ rng.DefaultSeed)
//	WithSource(src)     caller-owned rand.Source (takes precedence over WithSeed)
//	WithStream(id)      independent substream for parallel workers
//	WithAdapt()         PCA only: align the longer grid axis with the first component
//
// Concurrency: an Initializer owns its random stream and must not be shared
// between goroutines. Build one per worker (WithStream gives each worker an
// independent, reproducible stream).
//
// Usage:
//
//	ini, err := initializer.Lookup("pca", initializer.WithAdapt(), initializer.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	weights, err := ini.Init(dims, data) // data may be nil
package initializer
