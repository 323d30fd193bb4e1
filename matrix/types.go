// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types: the Matrix2x2 value and the
// Eigenvalue tagged variant. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"fmt"
	"strconv"
)

// Matrix2x2 is a 2×2 matrix of float64 values laid out as
//
//	| A B |
//	| C D |
//
// It is a plain value: assignment copies all four entries and no two
// variables ever share storage. The zero value is the zero matrix.
//
// Methods with a value receiver never mutate the operand. Methods with a
// pointer receiver whose name ends in "Assign" (and Inc/Dec) mutate the
// receiver in place and return it, so calls can be chained on one identity.
type Matrix2x2 struct {
	A float64 `json:"a" yaml:"a"` // row 0, col 0
	B float64 `json:"b" yaml:"b"` // row 0, col 1
	C float64 `json:"c" yaml:"c"` // row 1, col 0
	D float64 `json:"d" yaml:"d"` // row 1, col 1
}

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix2x2{}

// EigenKind tags which shape an Eigenvalue holds.
type EigenKind uint8

const (
	// EigenReal marks a real root; only Eigenvalue.Real is meaningful.
	EigenReal EigenKind = iota

	// EigenComplex marks one root of a complex-conjugate pair.
	EigenComplex
)

// String returns "real" or "complex".
func (k EigenKind) String() string {
	switch k {
	case EigenReal:
		return "real"
	case EigenComplex:
		return "complex"
	default:
		return "EigenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MarshalText encodes the kind as "real" or "complex" for JSON and YAML.
func (k EigenKind) MarshalText() ([]byte, error) {
	switch k {
	case EigenReal, EigenComplex:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("matrix: unknown %s", k)
	}
}

// UnmarshalText decodes "real" or "complex".
func (k *EigenKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "real":
		*k = EigenReal
	case "complex":
		*k = EigenComplex
	default:
		return fmt.Errorf("matrix: unknown eigenvalue kind %q", text)
	}

	return nil
}

// Eigenvalue is one root of the characteristic polynomial
// λ² − trace·λ + det = 0. A real root carries Imag == 0.
type Eigenvalue struct {
	Kind EigenKind `json:"kind" yaml:"kind"`
	Real float64   `json:"real" yaml:"real"`
	Imag float64   `json:"imag,omitempty" yaml:"imag,omitempty"`
}

// RealEigenvalue builds a real root.
func RealEigenvalue(v float64) Eigenvalue {
	return Eigenvalue{Kind: EigenReal, Real: v}
}

// ComplexEigenvalue builds a complex root re + im·i.
func ComplexEigenvalue(re, im float64) Eigenvalue {
	return Eigenvalue{Kind: EigenComplex, Real: re, Imag: im}
}

// IsComplex reports whether the root has an imaginary component.
func (e Eigenvalue) IsComplex() bool { return e.Kind == EigenComplex }

// Values returns the root as a sequence: [real] for a real root and
// [real, imag] for a complex one.
func (e Eigenvalue) Values() []float64 {
	if e.Kind == EigenComplex {
		return []float64{e.Real, e.Imag}
	}

	return []float64{e.Real}
}

// String renders a real root as "%g" and a complex one as "re+imi" / "re-imi".
func (e Eigenvalue) String() string {
	if e.Kind != EigenComplex {
		return strconv.FormatFloat(e.Real, 'g', -1, 64)
	}

	return fmt.Sprintf("%g%+gi", e.Real, e.Imag)
}
