package core

import "math"

// Epsilon is the tolerance for floating-point comparisons across the tracer.
// Chained transforms and trig accumulate rounding error, so equality on
// tuples, colors and matrices is tolerance-based rather than bitwise.
const Epsilon = 1e-9

// EqualFloats reports whether two floats differ by less than Epsilon
func EqualFloats(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
