// SPDX-License-Identifier: MIT
// Package matrix: shape validators shared by the somkit primitives.
//
// Every validator returns a sentinel from errors.go wrapped with a short tag,
// so callers can match with errors.Is.

package matrix

import "fmt"

// validatorErrorf attaches the validator tag to err.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameCols returns ErrShape when a and b differ in column count.
func ValidateSameCols(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameCols", ErrNilMatrix)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameCols", fmt.Errorf("%d vs %d columns: %w", a.c, b.c, ErrShape))
	}

	return nil
}

// ValidateCols returns ErrShape when m does not have exactly n columns.
func ValidateCols(m *Dense, n int) error {
	if m == nil {
		return validatorErrorf("ValidateCols", ErrNilMatrix)
	}
	if m.c != n {
		return validatorErrorf("ValidateCols", fmt.Errorf("have %d columns, want %d: %w", m.c, n, ErrShape))
	}

	return nil
}
