// SPDX-License-Identifier: MIT

// Package matrix - textual I/O.
//
// Output layout (width w from FieldWidth, two fractional digits by default):
//
//	|<a> <b>|
//	|       |   ← 2w+1 spaces between the bars
//	|<c> <d>|
//
// Input reads four whitespace-separated numbers a, b, c, d after writing the
// fixed Prompt (Extract, Read).
//
// Complexity quicksheet:
//   - FieldWidth: O(digits); Render/String/WriteTo: O(w); Extract: O(input).
package matrix

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Prompt is written before Extract reads a matrix.
const Prompt = "To create the following 2x2 matrix:\n" +
	"|a b|\n" +
	"|   |\n" +
	"|c d|\n" +
	"enter four numbers a, b, c, d, in that order:\n"

// ---------- Formatting literals ----------
const (
	_fmtBar     = "|"
	_fmtSep     = " "
	_fmtNewline = "\n"

	// nonFiniteDigits is the digit count charged to ±Inf and NaN, the width
	// of "Inf"/"NaN".
	nonFiniteDigits = 3
)

// FieldWidth returns the display width of one entry under the default
// layout: the decimal digit count of the integer part of the largest-magnitude
// entry plus DefaultPadding.
//
// Implementation:
//   - Stage 1: pick the entry whose |x| strictly exceeds the other three,
//     checking a, then b, then c; if none does, use d.
//   - Stage 2: count digits of trunc(|x|); 0 counts as one digit.
//
// Notes:
//   - Ties never pick a, b or c: with |a| == |b| the fallback d is used even
//     when |d| is smaller.
func (m Matrix2x2) FieldWidth() int {
	return m.fieldWidth(DefaultPadding)
}

// fieldWidth is FieldWidth with an explicit padding.
func (m Matrix2x2) fieldWidth(padding int) int {
	return integerDigits(m.largestMagnitude()) + padding
}

// largestMagnitude returns |x| of the entry selected by FieldWidth.
func (m Matrix2x2) largestMagnitude() float64 {
	var (
		a = math.Abs(m.A)
		b = math.Abs(m.B)
		c = math.Abs(m.C)
		d = math.Abs(m.D)
	)
	switch {
	case a > b && a > c && a > d:
		return a
	case b > c && b > d && b > a:
		return b
	case c > a && c > b && c > d:
		return c
	default:
		return d
	}
}

// integerDigits counts decimal digits of trunc(x) for x ≥ 0.
func integerDigits(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nonFiniteDigits
	}

	return len(strconv.FormatFloat(math.Trunc(x), 'f', 0, 64))
}

// layout builds the bordered layout into a string.
func (m Matrix2x2) layout(o Options) string {
	var (
		width = m.fieldWidth(o.padding)
		sb    strings.Builder
	)
	writeRow := func(left, right float64) {
		sb.WriteString(_fmtBar)
		sb.WriteString(fmt.Sprintf("%*.*f", width, o.precision, left))
		sb.WriteString(_fmtSep)
		sb.WriteString(fmt.Sprintf("%*.*f", width, o.precision, right))
		sb.WriteString(_fmtBar)
		sb.WriteString(_fmtNewline)
	}

	writeRow(m.A, m.B)
	sb.WriteString(_fmtBar)
	sb.WriteString(strings.Repeat(_fmtSep, 2*width+1))
	sb.WriteString(_fmtBar)
	sb.WriteString(_fmtNewline)
	writeRow(m.C, m.D)

	return sb.String()
}

// Render writes the bordered layout of m to w.
//
// Errors:
//   - any write error from w, wrapped with the Render tag.
func (m Matrix2x2) Render(w io.Writer, opts ...Option) error {
	if _, err := io.WriteString(w, m.layout(gatherOptions(opts...))); err != nil {
		return matrixErrorf(opRender, err)
	}

	return nil
}

// String returns the bordered layout of m with default options.
func (m Matrix2x2) String() string {
	return m.layout(defaultOptions())
}

// WriteTo implements io.WriterTo with the default layout.
func (m Matrix2x2) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	if err != nil {
		return int64(n), matrixErrorf(opRender, err)
	}

	return int64(n), nil
}

// Extract writes Prompt to prompt (skipped when prompt is nil) and then reads
// four whitespace-separated numbers from in into A, B, C and D.
//
// Errors:
//   - prompt write failures and read/parse failures (io.EOF,
//     io.ErrUnexpectedEOF, syntax errors), wrapped with the Extract tag.
//     m is left untouched on error.
//
// Notes:
//   - fmt.Fscan may read one rune past the last number when in is not an
//     io.RuneScanner; wrap the reader in a bufio.Reader to read several matrices from
//     one stream.
func (m *Matrix2x2) Extract(in io.Reader, prompt io.Writer) error {
	if prompt != nil {
		if _, err := io.WriteString(prompt, Prompt); err != nil {
			return matrixErrorf(opExtract, err)
		}
	}

	var a, b, c, d float64
	if _, err := fmt.Fscan(in, &a, &b, &c, &d); err != nil {
		return matrixErrorf(opExtract, err)
	}
	*m = New(a, b, c, d)

	return nil
}

// Read is Extract into a fresh matrix.
func Read(in io.Reader, prompt io.Writer) (Matrix2x2, error) {
	var m Matrix2x2
	if err := m.Extract(in, prompt); err != nil {
		return Matrix2x2{}, err
	}

	return m, nil
}
