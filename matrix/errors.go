// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (with call-site context
// attached through github.com/pkg/errors) and tests check them via errors.Is.
// Panics are reserved for programmer errors (use after Release, NaN options).

package matrix

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmath/index"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// added with errors.Wrapf at the detection site and matrixErrorf at the
// operation boundary; callers still use errors.Is to match.

var (
	// ErrShapeError is returned when a requested shape is invalid (rows<1 or
	// cols<1) or construction data does not hold exactly rows*cols values.
	ErrShapeError = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates operands with incompatible logical shapes,
	// e.g. Add with different shapes, MatMul with a.Cols != b.Rows, or a Set
	// value that does not match the selection.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDivisionByZero signals a divisor that is exactly zero.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrEmptySelection is returned by Get when the selection holds no element.
	ErrEmptySelection = errors.New("matrix: empty selection")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Index sentinels, re-exported so callers of this package need one import.
var (
	// ErrIndexOutOfBounds: a scalar or list position lies outside the axis.
	ErrIndexOutOfBounds = index.ErrIndexOutOfBounds

	// ErrTypeMismatch: a non-numeric value where a number was required, or a
	// value that cannot act as a selector.
	ErrTypeMismatch = index.ErrTypeMismatch

	// ErrIndexArity: a selection with other than one or two axes.
	ErrIndexArity = index.ErrIndexArity

	// ErrInvalidArgument: zero norm exponent, negative tolerance, zero range
	// step, degenerate projection planes.
	ErrInvalidArgument = index.ErrInvalidArgument
)

// matrixErrorf prefixes err with an operation tag; errors.Is still matches the
// underlying sentinel. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return errors.WithMessage(err, tag)
}
