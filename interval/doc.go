// Package interval implements closed floating-point intervals with outward
// rounding, and axis-aligned boxes built from them.
//
// Every arithmetic operation returns an interval guaranteed to contain the
// exact real result for every choice of operands in the input intervals.
// Directed rounding is emulated with error-free transformations (TwoSum,
// FMA residuals): a bound is moved one ulp outward only when the rounded
// result is inexact in the unsafe direction. Elementary functions from the
// math package are widened by two ulps.
//
// An operation that is undefined on part of its input (square root of a
// range reaching below zero, division by a range containing zero, logarithm
// of a non-positive range) returns the invalid interval, whose bounds are
// NaN. Invalid intervals propagate through every operation, so a caller only
// has to check Valid on the final result of an evaluation.
//
// Interval satisfies the num.Scalar constraint and can be used to evaluate
// any function written against it.
package interval
