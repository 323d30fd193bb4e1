// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/mat2/internal/config"
	"github.com/katalvlaran/mat2/matrix"
	"gopkg.in/yaml.v3"
)

// report is a command result. JSON and YAML output use the struct tags of
// the concrete type; text output calls writeText.
type report interface {
	writeText(tw *textWriter)
}

// emit renders r to stdout in the configured format.
func (a *app) emit(r report) error {
	w := a.streams.Out
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		tw := &textWriter{w: w, precision: a.cfg.Precision}
		r.writeText(tw)

		return tw.err
	}
}

// textWriter writes labelled lines and matrices, remembering the first
// write error so report code stays linear.
type textWriter struct {
	w         io.Writer
	precision int
	err       error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// number prints a labelled scalar with the configured precision.
func (t *textWriter) number(label string, v float64) {
	t.printf("%-14s%.*f\n", label+":", t.precision, v)
}

// flag prints a labelled boolean.
func (t *textWriter) flag(label string, v bool) {
	t.printf("%-14s%t\n", label+":", v)
}

// matrix prints a label line followed by the bordered layout of m.
func (t *textWriter) matrix(label string, m matrix.Matrix2x2) {
	t.printf("%s:\n", label)
	if t.err != nil {
		return
	}
	t.err = m.Render(t.w, matrix.WithPrecision(t.precision))
}

// eigen prints a labelled eigenvalue, as "re±imi" when complex.
func (t *textWriter) eigen(label string, e matrix.Eigenvalue) {
	if !e.IsComplex() {
		t.number(label, e.Real)

		return
	}
	t.printf("%-14s%.*f%+.*fi\n", label+":", t.precision, e.Real, t.precision, e.Imag)
}

// ---------- reports ----------

// inspectReport is the result of "mat2 inspect".
type inspectReport struct {
	Matrix       matrix.Matrix2x2    `json:"matrix" yaml:"matrix"`
	Determinant  float64             `json:"determinant" yaml:"determinant"`
	Trace        float64             `json:"trace" yaml:"trace"`
	Discriminant float64             `json:"discriminant" yaml:"discriminant"`
	Symmetric    bool                `json:"symmetric" yaml:"symmetric"`
	Transpose    matrix.Matrix2x2    `json:"transpose" yaml:"transpose"`
	Inverse      *matrix.Matrix2x2   `json:"inverse,omitempty" yaml:"inverse,omitempty"`
	InverseError string              `json:"inverse_error,omitempty" yaml:"inverse_error,omitempty"`
	Eigenvalues  []matrix.Eigenvalue `json:"eigenvalues" yaml:"eigenvalues"`
}

func newInspectReport(m matrix.Matrix2x2) inspectReport {
	e1, e2 := m.Eigenvalues()
	r := inspectReport{
		Matrix:       m,
		Determinant:  m.Determinant(),
		Trace:        m.Trace(),
		Discriminant: m.Discriminant(),
		Symmetric:    m.IsSymmetric(),
		Transpose:    m.Transpose(),
		Eigenvalues:  []matrix.Eigenvalue{e1, e2},
	}
	if inv, err := m.Inverse(); err != nil {
		r.InverseError = err.Error()
	} else {
		r.Inverse = &inv
	}

	return r
}

func (r inspectReport) writeText(tw *textWriter) {
	tw.matrix("matrix", r.Matrix)
	tw.number("determinant", r.Determinant)
	tw.number("trace", r.Trace)
	tw.number("discriminant", r.Discriminant)
	tw.flag("symmetric", r.Symmetric)
	tw.matrix("transpose", r.Transpose)
	if r.Inverse != nil {
		tw.matrix("inverse", *r.Inverse)
	} else {
		tw.printf("%-14s%s\n", "inverse:", r.InverseError)
	}
	for i, e := range r.Eigenvalues {
		tw.eigen(fmt.Sprintf("eigenvalue %d", i+1), e)
	}
}

// binaryReport is the result of "mat2 calc".
type binaryReport struct {
	Op     string           `json:"op" yaml:"op"`
	Left   matrix.Matrix2x2 `json:"left" yaml:"left"`
	Right  matrix.Matrix2x2 `json:"right" yaml:"right"`
	Result matrix.Matrix2x2 `json:"result" yaml:"result"`
}

func (r binaryReport) writeText(tw *textWriter) {
	tw.matrix("left", r.Left)
	tw.matrix("right", r.Right)
	tw.matrix(r.Op, r.Result)
}

// scalarReport is the result of "mat2 scalar".
type scalarReport struct {
	Op         string           `json:"op" yaml:"op"`
	Scalar     float64          `json:"scalar" yaml:"scalar"`
	ScalarLeft bool             `json:"scalar_left" yaml:"scalar_left"`
	Matrix     matrix.Matrix2x2 `json:"matrix" yaml:"matrix"`
	Result     matrix.Matrix2x2 `json:"result" yaml:"result"`
}

func (r scalarReport) writeText(tw *textWriter) {
	tw.number("scalar", r.Scalar)
	tw.matrix("matrix", r.Matrix)
	label := "matrix " + r.Op + " scalar"
	if r.ScalarLeft {
		label = "scalar " + r.Op + " matrix"
	}
	tw.matrix(label, r.Result)
}

// compareReport is the result of "mat2 compare".
type compareReport struct {
	Left    matrix.Matrix2x2 `json:"left" yaml:"left"`
	Right   matrix.Matrix2x2 `json:"right" yaml:"right"`
	Equal   bool             `json:"equal" yaml:"equal"`
	Similar bool             `json:"similar" yaml:"similar"`
}

func (r compareReport) writeText(tw *textWriter) {
	tw.matrix("left", r.Left)
	tw.matrix("right", r.Right)
	tw.flag("equal", r.Equal)
	tw.flag("similar", r.Similar)
}

// eigenReport is the result of "mat2 eigen".
type eigenReport struct {
	Matrix     matrix.Matrix2x2  `json:"matrix" yaml:"matrix"`
	N          int               `json:"n" yaml:"n"`
	Eigenvalue matrix.Eigenvalue `json:"eigenvalue" yaml:"eigenvalue"`
}

func (r eigenReport) writeText(tw *textWriter) {
	tw.matrix("matrix", r.Matrix)
	tw.eigen(fmt.Sprintf("eigenvalue %d", r.N), r.Eigenvalue)
}
