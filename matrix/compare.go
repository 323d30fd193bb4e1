// SPDX-License-Identifier: MIT

package matrix

import "math"

// Epsilon is the per-entry tolerance used by Equal.
const Epsilon = 1e-6

// Equal reports whether every pair of corresponding entries differs by
// strictly less than Epsilon. NaN never equals anything, including NaN.
func (m Matrix2x2) Equal(o Matrix2x2) bool {
	return m.EqualWithin(o, Epsilon)
}

// NotEqual is the negation of Equal.
func (m Matrix2x2) NotEqual(o Matrix2x2) bool {
	return !m.Equal(o)
}

// EqualWithin is Equal with a caller-supplied tolerance eps.
// Entries are checked in a, b, c, d order and the check stops at the first
// pair whose absolute difference is not strictly below eps.
func (m Matrix2x2) EqualWithin(o Matrix2x2, eps float64) bool {
	return math.Abs(m.A-o.A) < eps &&
		math.Abs(m.B-o.B) < eps &&
		math.Abs(m.C-o.C) < eps &&
		math.Abs(m.D-o.D) < eps
}
