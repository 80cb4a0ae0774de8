package core

import "math"

// Epsilon is the tolerance used for floating point comparisons throughout
// the renderer. It also sizes the over/under point offsets that keep
// secondary rays from re-intersecting the surface they start on.
const Epsilon = 1e-4

// EqualApprox reports whether two floats are within Epsilon of each other.
func EqualApprox(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
