// Package somkit collects the numerical building blocks of a
// Self-Organizing Map (SOM): everything a training loop needs except the
// loop itself.
//
// The module is split into small, single-purpose packages:
//
//	grid/        : row-major enumeration of (row, col) map units
//	schedule/    : linear and exponential decay schedules
//	distance/    : pluggable vector metrics and pairwise distance tables
//	bmu/         : best-matching-unit search and per-unit sample grouping
//	initializer/ : weight initialization strategies (rnd, stm, pca, hist)
//	pca/         : principal components via thin SVD
//	rescale/     : min-max rescaling along any axis
//	matrix/      : the Dense and Array containers shared by all of the above
//	rng/         : seeded, reproducible random streams
//
// Conventions shared by every package:
//
//   - Unit i of an R×C map sits at grid cell (i / C, i % C); weight row i,
//     distance-table row i and Distribute key i all refer to that unit.
//   - Every failure is a sentinel error declared in the package's errors.go,
//     optionally wrapped with context; match with errors.Is.
//   - Randomized strategies take a seed or an injected rand.Source; the same
//     seed always reproduces the same weights.
//   - Operations are synchronous and allocate fresh outputs; inputs are never
//     mutated.
//
// See example_test.go for an end-to-end walk through one training epoch.
package somkit
