// SPDX-License-Identifier: MIT

// Package mat2 is a small toolkit for 2×2 real matrices: a value type with
// arithmetic, inversion, eigenvalues and a bordered text layout, plus a
// command-line front end.
//
// 🚀 What is in mat2?
//
//	• matrix/          the Matrix2x2 value type and every operation on it
//	• internal/config  environment configuration for the mat2 binary
//	• internal/cli     the cobra command tree (inspect, calc, scalar, compare, eigen)
//	• cmd/mat2/        the binary entry point
//
// ✨ Why mat2?
//
//   - Plain values - assignment copies, no shared storage, zero value is usable
//   - Explicit errors - singular inverses and bad indices return sentinels
//   - One layout - the same bordered rendering in code, tests and the CLI
//
// Quick ASCII example:
//
//	|1.00 2.00|
//	|         |
//	|3.00 4.00|
//
//	is matrix.New(1, 2, 3, 4).String().
//
//	go install github.com/katalvlaran/mat2/cmd/mat2@latest
package mat2
