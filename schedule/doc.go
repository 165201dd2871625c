// Package schedule produces annealed parameter sequences for SOM training:
// learning rates and neighborhood radii that decay across epochs.
//
// Two shapes are provided:
//
//   - Linear: arithmetic progression from start to stop (inclusive).
//   - Exponential: geometric progression from start to stop (inclusive).
//
// A Schedule is a small value describing the sequence; nothing is computed
// until values are requested through At, All or Values. Every call to All
// returns a fresh iterator, so a Schedule may be shared and ranged over any
// number of times.
//
// Usage:
//
//	lr, err := schedule.Exponential(0.5, epochs, 0.01)
//	if err != nil {
//		return err
//	}
//	for rate := range lr.All() {
//		// train one epoch with rate
//	}
//
// Exponential schedules require start and stop to be non-zero with the same
// sign; other inputs yield NaN or ±Inf values. This is the caller's
// responsibility and is not validated.
package schedule
