package schedule

import (
	"fmt"
	"iter"
	"math"
)

// Linear returns the arithmetic progression of steps values from start to
// stop inclusive, with common difference (stop-start)/(steps-1).
// With steps == 1 the only value is start and stop is ignored.
//
// Errors:
//   - ErrBadSteps if steps < 1.
func Linear(start float64, steps int, stop float64) (Schedule, error) {
	if steps < 1 {
		return Schedule{}, fmt.Errorf("Linear(steps=%d): %w", steps, ErrBadSteps)
	}
	s := Schedule{start: start, stop: stop, steps: steps, shape: LinearShape}
	if steps > 1 {
		s.coef = (stop - start) / float64(steps-1)
	}

	return s, nil
}

// Exponential returns the geometric progression of steps values from start
// to stop inclusive, with common ratio exp(ln(stop/start)/(steps-1)).
// With steps == 1 the only value is start and stop is ignored.
//
// start and stop must be non-zero and share a sign; otherwise the values are
// NaN or ±Inf. This is not checked.
//
// Errors:
//   - ErrBadSteps if steps < 1.
func Exponential(start float64, steps int, stop float64) (Schedule, error) {
	if steps < 1 {
		return Schedule{}, fmt.Errorf("Exponential(steps=%d): %w", steps, ErrBadSteps)
	}
	s := Schedule{start: start, stop: stop, steps: steps, shape: ExponentialShape}
	if steps > 1 {
		s.coef = math.Log(stop/start) / float64(steps-1)
	}

	return s, nil
}

// Steps converts a floating-point step count, rejecting values that are not
// integers >= 1 (e.g. 0, -1 or 2.5).
func Steps(v float64) (int, error) {
	if v < 1 || v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 {
		return 0, fmt.Errorf("Steps(%g): %w", v, ErrBadSteps)
	}

	return int(v), nil
}

// Len returns the number of values.
func (s Schedule) Len() int { return s.steps }

// Shape reports the progression kind.
func (s Schedule) Shape() Shape { return s.shape }

// At returns the i-th value.
//
// Errors:
//   - ErrStepOutOfRange if i is outside [0, Len()).
func (s Schedule) At(i int) (float64, error) {
	if i < 0 || i >= s.steps {
		return 0, fmt.Errorf("At(%d) of %d: %w", i, s.steps, ErrStepOutOfRange)
	}

	return s.value(i), nil
}

// value is At without bounds checks.
func (s Schedule) value(i int) float64 {
	if s.steps == 1 {
		return s.start
	}
	if s.shape == ExponentialShape {
		return s.start * math.Exp(s.coef*float64(i))
	}

	return s.coef*float64(i) + s.start
}

// All returns a fresh iterator over the values in order.
func (s Schedule) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < s.steps; i++ {
			if !yield(s.value(i)) {
				return
			}
		}
	}
}

// Values materializes the schedule.
func (s Schedule) Values() []float64 {
	out := make([]float64, s.steps)
	for i := range out {
		out[i] = s.value(i)
	}

	return out
}

// String implements fmt.Stringer.
func (s Schedule) String() string {
	return fmt.Sprintf("%s(%g -> %g, %d steps)", s.shape, s.start, s.stop, s.steps)
}
