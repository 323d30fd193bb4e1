// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual output.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - The zero-option call reproduces the fixed bordered layout exactly.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits printed after the decimal point.
	DefaultPrecision = 2

	// DefaultPadding is added to the integer digit count of the largest entry
	// to obtain the field width (see FieldWidth).
	DefaultPadding = 3

	// MaxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	MaxPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0,17]"
	panicPaddingInvalid   = "matrix: WithPadding: padding must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	precision int // digits after the decimal point; DefaultPrecision
	padding   int // added to the integer digit count; DefaultPadding
}

// Precision returns the resolved number of fractional digits.
func (o Options) Precision() int { return o.precision }

// Padding returns the resolved field-width padding.
func (o Options) Padding() int { return o.padding }

// WithPrecision sets the number of digits printed after the decimal point.
// Panics if p ∉ [0,17].
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithPadding sets the constant added to the digit count of the largest
// entry when computing the field width. Panics if p < 0.
func WithPadding(p int) Option {
	if p < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = p }
}

// NewOptions resolves opts on top of the defaults. Exposed so callers (and
// tests) can inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// defaultOptions returns the layout used when no Option is supplied.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		padding:   DefaultPadding,
	}
}

// gatherOptions applies user options in order; later options win.
// nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
