package grid

import "errors"

// ErrBadDims indicates that a Dims value has a non-positive extent.
var ErrBadDims = errors.New("grid: rows, cols and features must be > 0")
