package pca

import "github.com/katalvlaran/somkit/matrix"

// DefaultComponents is the number of components used by the PCA initializer.
const DefaultComponents = 2

// Result holds the outcome of PCA on an n×f data matrix with k components.
type Result struct {
	Values     []float64     // k largest singular values, descending
	Components *matrix.Dense // k×f, row i is the i-th unit-length principal axis
	Projected  *matrix.Dense // n×k, centered data projected onto the components
	Mean       []float64     // per-feature mean removed before factorization
}
