// Package pca performs principal component analysis through a singular value
// decomposition of the column-centered data.
//
// Data are centered by subtracting the per-feature mean; no variance scaling
// is applied. The factorization is delegated to gonum (mat.SVD, thin).
// Components are ordered by descending singular value with a stable sort, so
// equal singular values keep the order reported by the factorization.
//
// Usage:
//
//	res, err := pca.PCA(data, pca.DefaultComponents)
//	if err != nil {
//		return err
//	}
//	// res.Components row k is the k-th unit-length principal axis,
//	// res.Projected holds the centered data expressed in those axes.
package pca
