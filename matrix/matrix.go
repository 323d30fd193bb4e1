// SPDX-License-Identifier: MIT

// Package matrix - Matrix2x2 construction & copies.
//
// Purpose:
//   - Provide the constructors (zero, positional, identity, from slice).
//   - Expose flat views of the four entries in the fixed a, b, c, d order.
//
// Complexity quicksheet:
//   - Every function here is O(1) time; Slice allocates 4 floats.
package matrix

// size is the number of entries in a Matrix2x2.
const size = 4

// Zero returns the zero matrix. It is equivalent to the zero value
// Matrix2x2{} and exists for readability at call sites.
func Zero() Matrix2x2 { return Matrix2x2{} }

// New returns the matrix
//
//	| a b |
//	| c d |
//
// with entries set positionally.
func New(a, b, c, d float64) Matrix2x2 {
	return Matrix2x2{A: a, B: b, C: c, D: d}
}

// Identity returns the multiplicative identity | 1 0 ; 0 1 |.
func Identity() Matrix2x2 { return New(1, 0, 0, 1) }

// FromSlice builds a matrix from exactly four values in a, b, c, d order.
// Returns ErrBadLength (wrapped with the FromSlice tag) for any other length.
// The input slice is copied; later writes to it do not affect the result.
func FromSlice(vals []float64) (Matrix2x2, error) {
	if len(vals) != size {
		return Matrix2x2{}, matrixErrorf(opFromSlice, ErrBadLength)
	}

	return New(vals[0], vals[1], vals[2], vals[3]), nil
}

// Clone returns an independent copy of m.
// A plain assignment does the same; Clone reads better in chained code.
func (m Matrix2x2) Clone() Matrix2x2 { return m }

// Array returns the entries as a fixed array in a, b, c, d order.
func (m Matrix2x2) Array() [size]float64 {
	return [size]float64{m.A, m.B, m.C, m.D}
}

// Slice returns a freshly allocated slice in a, b, c, d order.
func (m Matrix2x2) Slice() []float64 {
	arr := m.Array()

	return arr[:]
}
