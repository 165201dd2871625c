package schedule

import "errors"

var (
	// ErrBadSteps indicates a step count that is not an integer >= 1.
	ErrBadSteps = errors.New("schedule: steps must be an integer >= 1")

	// ErrStepOutOfRange indicates At was called with i outside [0, Len()).
	ErrStepOutOfRange = errors.New("schedule: step index out of range")
)
