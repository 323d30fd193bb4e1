// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for invalid Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap the sentinel with their op tag
// (see matrixErrorf), e.g. "Inverse: matrix: inverse undefined".

var (
	// ErrSingular is returned when the absolute determinant is within
	// SingularEpsilon of zero, so the inverse is undefined. Every operation
	// built on Inverse (Div, DivAssign, ScalarDiv) inherits it.
	ErrSingular = errors.New("matrix: inverse undefined")

	// ErrOutOfRange indicates an element index outside [0,3] or an eigenvalue
	// selector outside {1,2}. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of bounds")

	// ErrBadLength is returned by FromSlice when the input does not hold
	// exactly four values.
	ErrBadLength = errors.New("matrix: expected exactly 4 values")
)

// Operation name constants for unified error wrapping.
const (
	opInverse   = "Inverse"
	opDiv       = "Div"
	opAt        = "At"
	opRef       = "Ref"
	opEigen     = "Eigen"
	opFromSlice = "FromSlice"
	opExtract   = "Extract"
	opRender    = "Render"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
