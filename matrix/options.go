// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and approximate
// comparison. This file defines:
//   - Option / CloseOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values such as NaN),
//   - gatherOptions / gatherCloseOptions helpers (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Range violations that callers can trigger with data (negative tolerance)
//     are returned as ErrInvalidArgument by the consuming operation, not
//     panicked here.
//   - Options are reusable: an Option never hands its captured slice to a
//     Matrix; New copies it.
package matrix

import (
	"math"

	"github.com/gomlx/exceptions"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFill is the value of every element when neither WithFill nor
	// WithData is given.
	DefaultFill float32 = 0

	// DefaultTransposed is the transposition flag of a new matrix.
	DefaultTransposed = false
)

// Tolerance policy for AllClose/AllCloseScalar.
const (
	// DefaultRelTol is the relative tolerance: |a-b| <= rel*max(|a|,|b|).
	DefaultRelTol = 1e-5

	// DefaultAbsTol is the absolute tolerance: |a-b| <= abs.
	DefaultAbsTol = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRelTolNaN = "matrix: WithRelTol: tolerance must not be NaN"
	panicAbsTolNaN = "matrix: WithAbsTol: tolerance must not be NaN"
)

// ---------- Construction options ----------

// Option configures New and the constructors built on it.
type Option func(*options)

// options stores the effective construction configuration.
type options struct {
	fill       float32
	data       []float32 // nil unless WithData was given
	transposed bool
}

// WithFill broadcasts v to every element. It replaces an earlier WithData.
func WithFill[T Number](v T) Option {
	f := float32(v)

	return func(o *options) {
		o.fill = f
		o.data = nil
	}
}

// WithData sets the physical row-major contents. The values are narrowed to
// float32 once, here; New checks the length against rows*cols. It replaces an
// earlier WithFill.
func WithData[T Number](data []T) Option {
	conv := toFloat32s(data)

	return func(o *options) {
		o.data = conv
		o.fill = DefaultFill
	}
}

// WithTransposed sets the transposition flag. With WithData the data is still
// the physical buffer; the logical shape becomes (cols, rows).
func WithTransposed(t bool) Option {
	return func(o *options) { o.transposed = t }
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) options {
	o := options{fill: DefaultFill, transposed: DefaultTransposed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- Approximate comparison options ----------

// CloseOption configures AllClose and AllCloseScalar.
type CloseOption func(*closeOptions)

type closeOptions struct {
	rel float64
	abs float64
}

// WithRelTol sets the relative tolerance. NaN panics; a negative value makes
// the comparison return ErrInvalidArgument.
func WithRelTol(tol float64) CloseOption {
	if math.IsNaN(tol) {
		exceptions.Panicf(panicRelTolNaN)
	}

	return func(o *closeOptions) { o.rel = tol }
}

// WithAbsTol sets the absolute tolerance. NaN panics; a negative value makes
// the comparison return ErrInvalidArgument.
func WithAbsTol(tol float64) CloseOption {
	if math.IsNaN(tol) {
		exceptions.Panicf(panicAbsTolNaN)
	}

	return func(o *closeOptions) { o.abs = tol }
}

// gatherCloseOptions applies opts over the defaults and validates the result.
func gatherCloseOptions(opts ...CloseOption) (closeOptions, error) {
	o := closeOptions{rel: DefaultRelTol, abs: DefaultAbsTol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := ValidateTolerance(o.rel, o.abs); err != nil {
		return o, err
	}

	return o, nil
}

// toFloat32s narrows any numeric slice into a fresh []float32.
func toFloat32s[T Number](data []T) []float32 {
	out := make([]float32, len(data))
	for k, v := range data {
		out[k] = float32(v)
	}

	return out
}
