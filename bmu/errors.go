package bmu

import "errors"

var (
	// ErrWeightsNotMatrix indicates a weight array whose rank is not exactly 2.
	ErrWeightsNotMatrix = errors.New("bmu: weights must be two-dimensional")

	// ErrInputDims indicates an input batch with more than two dimensions.
	ErrInputDims = errors.New("bmu: input must be one- or two-dimensional")

	// ErrFeatureMismatch indicates weights and inputs of different feature length.
	ErrFeatureMismatch = errors.New("bmu: feature dimensions of weights and input differ")

	// ErrNilMetric indicates a nil distance metric.
	ErrNilMetric = errors.New("bmu: metric is nil")

	// ErrNilInput indicates a nil weights or input array.
	ErrNilInput = errors.New("bmu: nil weights or input")

	// ErrUnitOutOfRange indicates a unit index outside [0, nUnits) or a negative unit count.
	ErrUnitOutOfRange = errors.New("bmu: unit index out of range")
)
