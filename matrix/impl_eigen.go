// SPDX-License-Identifier: MIT
// Package matrix: closed-form eigenvalues of a 2×2 matrix.
//
// The eigenvalues are the roots of the characteristic polynomial
//
//	λ² − tr·λ + det = 0,    Δ = tr² − 4·det
//
//	Δ ≥ 0: λ₁ = (tr + √Δ)/2,            λ₂ = (tr − √Δ)/2
//	Δ < 0: λ₁ = tr/2 + i·√|Δ|/2,        λ₂ = tr/2 − i·√|Δ|/2
//
// Δ == 0 takes the real branch and yields two equal real roots.

package matrix

import "math"

// Selectors accepted by Eigen.
const (
	EigenFirst  = 1 // root with +√Δ (or +imaginary part)
	EigenSecond = 2 // root with −√Δ (or −imaginary part)
)

// quadDenom is the 2a denominator of the quadratic formula with a = 1.
const quadDenom = 2.0

// Discriminant returns Δ = trace² − 4·det of the characteristic polynomial.
func (m Matrix2x2) Discriminant() float64 {
	tr := m.Trace()

	return tr*tr - 4*m.Determinant()
}

// Eigen returns the n-th eigenvalue, n ∈ {EigenFirst, EigenSecond}.
//
// Returns:
//   - a real Eigenvalue when Δ ≥ 0,
//   - one root of the complex-conjugate pair when Δ < 0.
//
// Errors:
//   - ErrOutOfRange (wrapped with the Eigen tag) for any other n.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Matrix2x2) Eigen(n int) (Eigenvalue, error) {
	if n != EigenFirst && n != EigenSecond {
		return Eigenvalue{}, matrixErrorf(opEigen, ErrOutOfRange)
	}
	first, second := m.Eigenvalues()
	if n == EigenFirst {
		return first, nil
	}

	return second, nil
}

// Eigenvalues returns both roots (λ₁, λ₂) in the order used by Eigen.
func (m Matrix2x2) Eigenvalues() (Eigenvalue, Eigenvalue) {
	var (
		tr    = m.Trace()        // sum of roots
		delta = m.Discriminant() // tr² − 4·det
	)
	if delta >= 0 {
		root := math.Sqrt(delta)

		return RealEigenvalue((tr + root) / quadDenom), RealEigenvalue((tr - root) / quadDenom)
	}

	re := tr / quadDenom
	im := math.Sqrt(math.Abs(delta)) / quadDenom

	return ComplexEigenvalue(re, im), ComplexEigenvalue(re, -im)
}
