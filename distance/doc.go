// Package distance resolves pairwise distance metrics by name and computes
// full distance tables between two sets of row vectors (a cdist).
//
// Supported metrics:
//
//	euclidean    √Σ(a−b)²
//	sqeuclidean  Σ(a−b)²
//	cityblock    Σ|a−b|          (alias: manhattan)
//	chebyshev    max|a−b|
//	cosine       1 − a·b/(‖a‖‖b‖)
//	correlation  cosine distance of the mean-centered vectors
//
// Vector kernels come from github.com/viterin/vek, which dispatches to SIMD
// implementations when the CPU supports them.
//
// Cosine and correlation distances of zero-norm (or constant) vectors are NaN.
//
// The registry is built once at package initialization and never mutated,
// so Lookup is safe for concurrent use.
package distance
