// SPDX-License-Identifier: MIT

// Package matrix implements Matrix2x2, a fixed-size 2×2 matrix of float64
// values that behaves like a scalar: copy it, pass it by value, mutate a local.
//
// The matrix package provides:
//
//   - Algebraic queries: Determinant, Trace, IsSymmetric, IsSimilar,
//     Transpose, Inverse, Discriminant and closed-form Eigen values.
//   - Operators as named methods. Value-receiver methods (Add, Mul, Neg, …)
//     return a fresh matrix; pointer-receiver …Assign methods and Inc/Dec
//     mutate in place and return the receiver for chaining.
//   - Scalar-on-left forms as package functions (ScalarAdd, ScalarSub,
//     ScalarMul, ScalarDiv).
//   - Indexed access (At, Ref, Set) with 0→a, 1→b, 2→c, 3→d.
//   - Tolerance-based comparison (Equal, NotEqual, EqualWithin).
//   - A bordered text layout (String, Render, WriteTo) and prompted input
//     (Extract, Read).
//
// Errors are sentinels (ErrSingular, ErrOutOfRange, ErrBadLength) wrapped with
// an operation tag; match them with errors.Is.
//
// Quick example:
//
//	m := matrix.New(1, 2, 3, 4)
//	inv, err := m.Inverse()
//	if err != nil { ... }
//	fmt.Print(m.Mul(inv)) // identity within Epsilon
//
// A Matrix2x2 carries no locks. Distinct values never share state; a single
// value mutated from several goroutines must be guarded by the caller.
package matrix
