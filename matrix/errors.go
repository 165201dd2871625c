// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// Panics are reserved for programmer errors in raw accessors (RawRowView).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrDataLength indicates that a backing slice does not match the requested shape.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrNotMatrix indicates that a 2-D view was requested from an Array of another rank.
	ErrNotMatrix = errors.New("matrix: array is not two-dimensional")

	// ErrNilMatrix indicates that a nil *Dense or *Array was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrShape indicates an invalid shape (negative extent or mismatched reshape).
	ErrShape = errors.New("matrix: invalid shape")
)
