// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels and facades minimal by delegating shape/nil/argument checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Shape checks compare LOGICAL shapes; transposition is honored.

package matrix

import (
	"math"

	"github.com/pkg/errors"
)

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return errors.WithMessage(ErrNilMatrix, "ValidateNotNil")
	}

	return nil
}

// ValidateShape ensures a requested physical shape is constructible:
// rows>=1, cols>=1 and rows*cols representable as int.
//
// Returns ErrShapeError otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return errors.Wrapf(ErrShapeError, "ValidateShape: (%d, %d) has a dimension < 1", rows, cols)
	}
	if rows > math.MaxInt/cols {
		return errors.Wrapf(ErrShapeError, "ValidateShape: (%d, %d) overflows the element count", rows, cols)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal LOGICAL shapes.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns ErrShapeMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return errors.Wrapf(ErrShapeMismatch, "ValidateSameShape: (%d, %d) vs (%d, %d)", ar, ac, br, bc)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateVector3 ensures m is a non-nil 1×3 or 3×1 matrix (logically).
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateVector3(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Shape()
	if r*c != 3 || (r != 1 && c != 1) {
		return errors.Wrapf(ErrShapeMismatch, "ValidateVector3: (%d, %d) is not a 3-vector", r, c)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		ar, ac := a.Shape()
		br, bc := b.Shape()
		return errors.Wrapf(ErrShapeMismatch, "ValidateMulCompatible: (%d, %d) @ (%d, %d)", ar, ac, br, bc)
	}

	return nil
}

// ValidateTolerance ensures both tolerances are non-negative.
//
// Returns ErrInvalidArgument otherwise.
func ValidateTolerance(rel, abs float64) error {
	if rel < 0 || abs < 0 {
		return errors.Wrapf(ErrInvalidArgument, "ValidateTolerance: rel=%g abs=%g must be non-negative", rel, abs)
	}

	return nil
}

// ValidateExponent ensures a norm exponent is usable (non-zero, not NaN).
func ValidateExponent(p float64) error {
	if p == 0 || math.IsNaN(p) {
		return errors.Wrapf(ErrInvalidArgument, "ValidateExponent: p=%g", p)
	}

	return nil
}

// ValidateDivisors returns ErrDivisionByZero if any divisor is exactly zero.
// Complexity: O(n).
func ValidateDivisors(divisors []float32) error {
	for k, d := range divisors {
		if d == 0 {
			return errors.Wrapf(ErrDivisionByZero, "ValidateDivisors: divisor %d is zero", k)
		}
	}

	return nil
}
