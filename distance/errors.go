package distance

import "errors"

var (
	// ErrUnknownMetric indicates a metric name missing from the registry.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrNilMetric indicates that a nil Metric was supplied.
	ErrNilMetric = errors.New("distance: metric is nil")

	// ErrDimensionMismatch indicates operands with different feature counts.
	ErrDimensionMismatch = errors.New("distance: feature dimensions differ")
)
