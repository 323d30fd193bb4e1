// SPDX-License-Identifier: MIT

// Package matrix: element-wise and scalar operators.
//
// Purpose:
//   - Compound operators (…Assign, Inc, Dec) mutate the receiver in place and
//     return the same pointer, so calls chain on one identity.
//   - Binary operators copy the left operand, apply the compound operator to
//     the copy, and return it. Operands are never mutated.
//   - Scalar-on-left forms are package functions (ScalarAdd, ScalarSub,
//     ScalarMul, ScalarDiv).
//
// Notes:
//   - Scalar division performs no zero check: dividing by 0 yields ±Inf or NaN
//     per IEEE-754, never an error.
package matrix

// ---------- compound: matrix ⊕ matrix ----------

// AddAssign adds o to m entrywise and returns m.
func (m *Matrix2x2) AddAssign(o Matrix2x2) *Matrix2x2 {
	m.A += o.A
	m.B += o.B
	m.C += o.C
	m.D += o.D

	return m
}

// SubAssign subtracts o from m entrywise and returns m.
func (m *Matrix2x2) SubAssign(o Matrix2x2) *Matrix2x2 {
	m.A -= o.A
	m.B -= o.B
	m.C -= o.C
	m.D -= o.D

	return m
}

// ---------- compound: matrix ⊕ scalar ----------

// AddScalarAssign adds s to every entry and returns m.
func (m *Matrix2x2) AddScalarAssign(s float64) *Matrix2x2 {
	m.A += s
	m.B += s
	m.C += s
	m.D += s

	return m
}

// SubScalarAssign subtracts s from every entry and returns m.
func (m *Matrix2x2) SubScalarAssign(s float64) *Matrix2x2 {
	m.A -= s
	m.B -= s
	m.C -= s
	m.D -= s

	return m
}

// MulScalarAssign multiplies every entry by s and returns m.
func (m *Matrix2x2) MulScalarAssign(s float64) *Matrix2x2 {
	m.A = noNegZero(m.A * s)
	m.B = noNegZero(m.B * s)
	m.C = noNegZero(m.C * s)
	m.D = noNegZero(m.D * s)

	return m
}

// DivScalarAssign divides every entry by s and returns m.
// s == 0 is not rejected; entries become ±Inf or NaN.
func (m *Matrix2x2) DivScalarAssign(s float64) *Matrix2x2 {
	m.A /= s
	m.B /= s
	m.C /= s
	m.D /= s

	return m
}

// ---------- unary ----------

// Inc adds 1 to every entry in place and returns m (prefix increment).
func (m *Matrix2x2) Inc() *Matrix2x2 { return m.AddScalarAssign(1) }

// Dec subtracts 1 from every entry in place and returns m (prefix decrement).
func (m *Matrix2x2) Dec() *Matrix2x2 { return m.SubScalarAssign(1) }

// PostInc returns a copy of m taken before adding 1 to every entry in place
// (postfix increment).
func (m *Matrix2x2) PostInc() Matrix2x2 {
	prev := *m
	m.AddScalarAssign(1)

	return prev
}

// PostDec returns a copy of m taken before subtracting 1 from every entry in
// place (postfix decrement).
func (m *Matrix2x2) PostDec() Matrix2x2 {
	prev := *m
	m.SubScalarAssign(1)

	return prev
}

// Neg returns a new matrix with every entry sign-flipped.
func (m Matrix2x2) Neg() Matrix2x2 {
	return Matrix2x2{A: -m.A, B: -m.B, C: -m.C, D: -m.D}
}

// Plus returns an unchanged copy of m (unary plus).
func (m Matrix2x2) Plus() Matrix2x2 { return m }

// ---------- binary (non-mutating) ----------

// Add returns m + o.
func (m Matrix2x2) Add(o Matrix2x2) Matrix2x2 { return *m.AddAssign(o) }

// Sub returns m − o.
func (m Matrix2x2) Sub(o Matrix2x2) Matrix2x2 { return *m.SubAssign(o) }

// AddScalar returns m with s added to every entry.
func (m Matrix2x2) AddScalar(s float64) Matrix2x2 { return *m.AddScalarAssign(s) }

// SubScalar returns m with s subtracted from every entry.
func (m Matrix2x2) SubScalar(s float64) Matrix2x2 { return *m.SubScalarAssign(s) }

// MulScalar returns m with every entry multiplied by s.
func (m Matrix2x2) MulScalar(s float64) Matrix2x2 { return *m.MulScalarAssign(s) }

// DivScalar returns m with every entry divided by s.
func (m Matrix2x2) DivScalar(s float64) Matrix2x2 { return *m.DivScalarAssign(s) }

// ---------- scalar on the left ----------

// ScalarAdd returns s + m, which equals m + s.
func ScalarAdd(s float64, m Matrix2x2) Matrix2x2 { return m.AddScalar(s) }

// ScalarSub returns s − m, computed as −(m − s). Each entry becomes s − x.
func ScalarSub(s float64, m Matrix2x2) Matrix2x2 {
	return m.SubScalar(s).MulScalar(-1)
}

// ScalarMul returns s · m, which equals m · s.
func ScalarMul(s float64, m Matrix2x2) Matrix2x2 { return m.MulScalar(s) }

// ScalarDiv returns s · m⁻¹.
//
// Errors:
//   - ErrSingular (wrapped with the Div and Inverse tags) when m is singular.
func ScalarDiv(s float64, m Matrix2x2) (Matrix2x2, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Matrix2x2{}, matrixErrorf(opDiv, err)
	}

	return ScalarMul(s, inv), nil
}
