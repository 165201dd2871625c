package rescale

import "errors"

var (
	// ErrNilArray indicates a nil input array.
	ErrNilArray = errors.New("rescale: array is nil")

	// ErrAxis indicates an axis outside [-ndim, ndim).
	ErrAxis = errors.New("rescale: axis out of range")
)
