// SPDX-License-Identifier: MIT

// Package matrix - indexed element access.
//
// Index convention (row-major reading order):
//
//	0 → A, 1 → B, 2 → C, 3 → D
//
// At is the read-only form and works on any Matrix2x2 value. Ref is the
// mutable form and needs an addressable matrix. Both reject the same
// indices with ErrOutOfRange.
package matrix

// At returns the entry at index i.
//
// Errors:
//   - ErrOutOfRange (wrapped with the At tag) when i ∉ [0,3].
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Matrix2x2) At(i int) (float64, error) {
	switch i {
	case 0:
		return m.A, nil
	case 1:
		return m.B, nil
	case 2:
		return m.C, nil
	case 3:
		return m.D, nil
	default:
		return 0, matrixErrorf(opAt, ErrOutOfRange)
	}
}

// Ref returns a pointer to the entry at index i, so callers can read and
// write the element in place:
//
//	p, err := m.Ref(2)
//	if err != nil { ... }
//	*p = 7 // m.C == 7
//
// The pointer aliases m and stays valid as long as m does.
//
// Errors:
//   - ErrOutOfRange (wrapped with the Ref tag) when i ∉ [0,3].
func (m *Matrix2x2) Ref(i int) (*float64, error) {
	switch i {
	case 0:
		return &m.A, nil
	case 1:
		return &m.B, nil
	case 2:
		return &m.C, nil
	case 3:
		return &m.D, nil
	default:
		return nil, matrixErrorf(opRef, ErrOutOfRange)
	}
}

// Set assigns v at index i. The matrix is unchanged on error.
func (m *Matrix2x2) Set(i int, v float64) error {
	p, err := m.Ref(i)
	if err != nil {
		return err
	}
	*p = v

	return nil
}
