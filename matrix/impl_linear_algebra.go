// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic queries of Matrix2x2: determinant,
// trace, symmetry, similarity, transpose, inverse and matrix
// multiplication/division.
//
// Purpose:
//   - Keep every closed-form 2×2 kernel in one file.
//   - Route singular-matrix detection through a single place (Inverse) so
//     every dependent operation fails with the same sentinel.
//
// Notes:
//   - Symmetry and similarity use exact float equality; Equal (compare.go)
//     is the only tolerance-based comparison.

package matrix

import "math"

// SingularEpsilon is the determinant magnitude at or below which a matrix
// is treated as singular by Inverse.
const SingularEpsilon = 1e-6

// noNegZero folds -0 into +0 so formatted output never shows "-0.00".
func noNegZero(x float64) float64 { return x + 0.0 }

// Determinant returns a·d − b·c.
// Complexity: O(1).
func (m Matrix2x2) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Eval is the zero-argument query form of the matrix and returns the
// determinant. It is identical to Determinant.
func (m Matrix2x2) Eval() float64 { return m.Determinant() }

// Trace returns a + d.
// Complexity: O(1).
func (m Matrix2x2) Trace() float64 {
	return m.A + m.D
}

// IsSymmetric reports whether b == c exactly (no tolerance).
func (m Matrix2x2) IsSymmetric() bool {
	return m.B == m.C
}

// IsSimilar reports whether m and o have exactly equal determinant AND
// exactly equal trace.
//
// Notes:
//   - This is the trace/determinant criterion only: a necessary condition
//     for similarity of 2×2 matrices, not a sufficient one. For example the
//     identity and | 1 1 ; 0 1 | share both invariants yet are not similar.
func (m Matrix2x2) IsSimilar(o Matrix2x2) bool {
	return m.Determinant() == o.Determinant() && m.Trace() == o.Trace()
}

// Transpose returns a new matrix with b and c swapped.
func (m Matrix2x2) Transpose() Matrix2x2 {
	m.B, m.C = m.C, m.B

	return m
}

// Inverse returns m⁻¹ computed from the adjugate:
//
//	         1    |  d  -b |
//	m⁻¹ = ------- |        |
//	      det(m)  | -c   a |
//
// Implementation:
//   - Stage 1: compute det(m); fail when |det| ≤ SingularEpsilon.
//   - Stage 2: divide every adjugate entry by det(m).
//
// Errors:
//   - ErrSingular (wrapped with the Inverse tag). The error is not recovered
//     anywhere in this package; callers of Div/DivAssign/ScalarDiv see it.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Matrix2x2) Inverse() (Matrix2x2, error) {
	det := m.Determinant()
	if math.Abs(det) <= SingularEpsilon {
		return Matrix2x2{}, matrixErrorf(opInverse, ErrSingular)
	}

	return Matrix2x2{
		A: noNegZero(m.D / det),
		B: noNegZero(-m.B / det),
		C: noNegZero(-m.C / det),
		D: noNegZero(m.A / det),
	}, nil
}

// MulAssign replaces m with the matrix product m × o and returns m.
//
//	a = a1·a2 + b1·c2    b = a1·b2 + b1·d2
//	c = c1·a2 + d1·c2    d = c1·b2 + d1·d2
//
// The product is not commutative: m.MulAssign(o) and o.MulAssign(m)
// generally differ. All four outputs are computed from the original
// entries, so m.MulAssign(m) squares m correctly.
func (m *Matrix2x2) MulAssign(o Matrix2x2) *Matrix2x2 {
	*m = Matrix2x2{
		A: noNegZero(m.A*o.A + m.B*o.C),
		B: noNegZero(m.A*o.B + m.B*o.D),
		C: noNegZero(m.C*o.A + m.D*o.C),
		D: noNegZero(m.C*o.B + m.D*o.D),
	}

	return m
}

// Mul returns the product m × o without mutating either operand.
func (m Matrix2x2) Mul(o Matrix2x2) Matrix2x2 {
	return *m.MulAssign(o)
}

// DivAssign replaces m with m × o⁻¹ and returns m.
//
// Errors:
//   - ErrSingular (wrapped with Div and Inverse tags) when o is singular.
//     m is left untouched in that case.
func (m *Matrix2x2) DivAssign(o Matrix2x2) (*Matrix2x2, error) {
	inv, err := o.Inverse()
	if err != nil {
		return m, matrixErrorf(opDiv, err)
	}

	return m.MulAssign(inv), nil
}

// Div returns m × o⁻¹ without mutating either operand.
//
// Errors:
//   - ErrSingular when o is singular.
func (m Matrix2x2) Div(o Matrix2x2) (Matrix2x2, error) {
	if _, err := m.DivAssign(o); err != nil {
		return Matrix2x2{}, err
	}

	return m, nil
}
