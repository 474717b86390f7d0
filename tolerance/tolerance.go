package tolerance

import "math"

// Tolerance is the modeling tolerance: two geometric quantities whose
// difference is below this threshold are considered equal.
//
// It is fixed for the lifetime of a run. Comparisons made under two
// different tolerance values are not composable, so there is exactly one.
const Tolerance = 1.0e-7

// Tolerance2 is the squared modeling tolerance, used for squared-distance
// comparisons that avoid the square root.
const Tolerance2 = Tolerance * Tolerance

// Near reports whether a and b are equal within Tolerance.
func Near(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Near2 reports whether a and b are equal within Tolerance2.
//
// Use this when a and b are squared quantities (squared distances,
// squared norms) so the comparison stays in the squared domain.
func Near2(a, b float64) bool {
	return math.Abs(a-b) < Tolerance2
}

// Zero reports whether x is within Tolerance of zero.
func Zero(x float64) bool {
	return math.Abs(x) < Tolerance
}

// Zero2 reports whether x is within Tolerance2 of zero.
func Zero2(x float64) bool {
	return math.Abs(x) < Tolerance2
}
