// Package rescale maps array values linearly into a target range, one 1-D
// slice at a time along a chosen axis.
//
// For every slice x along the axis:
//
//	out = (x − min(x)) / (max(x) − min(x)) · (newMax − newMin) + newMin
//
// so the slice minimum lands on newMin and its maximum on newMax.
//
// Constant slices (max == min) divide zero by zero and produce NaN. This is
// not checked; callers must guard against constant slices.
package rescale
