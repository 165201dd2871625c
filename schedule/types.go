package schedule

// DefaultStop is the conventional final value of a decay schedule.
const DefaultStop = 1.0

// Shape selects the progression of a Schedule.
type Shape int

const (
	// LinearShape decays by a constant difference.
	LinearShape Shape = iota

	// ExponentialShape decays by a constant ratio.
	ExponentialShape
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case LinearShape:
		return "linear"
	case ExponentialShape:
		return "exponential"
	default:
		return "unknown"
	}
}

// Schedule is a finite decaying sequence of exactly Len() values.
// The zero value is not usable; build one with Linear or Exponential.
type Schedule struct {
	start float64
	stop  float64
	steps int
	shape Shape
	coef  float64 // difference (linear) or log-ratio (exponential) per step
}
