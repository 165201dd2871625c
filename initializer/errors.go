package initializer

import "errors"

var (
	// ErrUnknownKind indicates an initializer name or Kind outside the closed set.
	ErrUnknownKind = errors.New("initializer: unknown initializer")

	// ErrOptionNotSupported indicates an option that the selected Kind does not consume.
	ErrOptionNotSupported = errors.New("initializer: option not supported by this initializer")

	// ErrNotSquare indicates a feature count that is not a perfect square (stochastic matrices).
	ErrNotSquare = errors.New("initializer: feature count is not a perfect square")

	// ErrDataShape indicates data whose column count differs from Dims.Features.
	ErrDataShape = errors.New("initializer: data feature count does not match dims")
)
