package pca

import "errors"

var (
	// ErrNilData indicates a nil data matrix.
	ErrNilData = errors.New("pca: data is nil")

	// ErrComponents indicates nComps < 1 or more components than min(samples, features).
	ErrComponents = errors.New("pca: invalid number of components")

	// ErrFactorization indicates that the singular value decomposition failed.
	ErrFactorization = errors.New("pca: singular value decomposition failed")
)
