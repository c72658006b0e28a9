// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reduce elementwise relations to ONE boolean: AND over all pairs, or OR
//     for OpNotEqual. There is no elementwise boolean matrix.
//   - Provide approximate equality (IsClose/AllClose) with a combined
//     relative/absolute tolerance.
//
// Behavior highlights:
//   - Matrix-vs-Matrix relations pair elements by logical position.
//   - Equal/NotEqual with mismatched shapes are false/true, not errors; every
//     other relation returns ErrShapeMismatch.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/index"
)

// reduce folds op over the given pairs of values.
func reduce(op CompareOp, n int, pair func(k int) (float32, float32)) bool {
	if op == OpNotEqual {
		for k := 0; k < n; k++ {
			if x, y := pair(k); x != y {
				return true
			}
		}
		return false
	}
	for k := 0; k < n; k++ {
		if x, y := pair(k); !op.holds(x, y) {
			return false
		}
	}

	return true
}

// Compare evaluates a op b over all logically paired elements.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrShapeMismatch for differing shapes, except for OpEqual (false) and
//     OpNotEqual (true).
//
// Complexity:
//   - Time O(n); stops at the first deciding pair.
func Compare(a, b *Matrix, op CompareOp) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		switch op {
		case OpEqual:
			return false, nil
		case OpNotEqual:
			return true, nil
		}
		return false, matrixErrorf(opCompare+" "+op.String(), err)
	}

	ad, bd := a.data(), b.data()
	if a.transposed == b.transposed {
		return reduce(op, len(ad), func(k int) (float32, float32) { return ad[k], bd[k] }), nil
	}
	fOffs := index.SelectAll(a.rows, a.cols, a.transposed)
	sOffs := index.SelectAll(b.rows, b.cols, b.transposed)

	return reduce(op, len(fOffs), func(k int) (float32, float32) { return ad[fOffs[k]], bd[sOffs[k]] }), nil
}

// CompareScalar evaluates m[k] op s over every element of m.
func CompareScalar(m *Matrix, s float32, op CompareOp) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	d := m.data()

	return reduce(op, len(d), func(k int) (float32, float32) { return d[k], s }), nil
}

// CompareScalarLeft evaluates s op m[k] over every element of m.
func CompareScalarLeft(s float32, m *Matrix, op CompareOp) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opCompare, err)
	}
	d := m.data()

	return reduce(op, len(d), func(k int) (float32, float32) { return s, d[k] }), nil
}

// Equal reports whether a and b have the same logical shape and elements.
// It never fails: two nil matrices are equal, one nil matrix is not.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	eq, err := Compare(a, b, OpEqual)

	return err == nil && eq
}

// NotEqual is the negation of Equal.
func NotEqual(a, b *Matrix) bool { return !Equal(a, b) }

// IsClose reports whether a and b are approximately equal:
//   - a == b is always close (this covers equal infinities);
//   - otherwise an infinite operand is never close;
//   - otherwise |a-b| <= rel*max(|a|,|b|) or |a-b| <= abs.
//
// The arithmetic is done in float64. NaN is never close to anything.
func IsClose(a, b float32, rel, abs float64) bool {
	if a == b {
		return true
	}
	x, y := float64(a), float64(b)
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)

	return diff <= rel*math.Max(math.Abs(x), math.Abs(y)) || diff <= abs
}

// AllClose reports whether every logically paired element of a and b is
// IsClose under the configured tolerances (DefaultRelTol, DefaultAbsTol).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//   - ErrInvalidArgument for a negative tolerance.
func AllClose(a, b *Matrix, opts ...CloseOption) (bool, error) {
	o, err := gatherCloseOptions(opts...)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ad, bd := a.data(), b.data()
	fOffs := index.SelectAll(a.rows, a.cols, a.transposed)
	sOffs := index.SelectAll(b.rows, b.cols, b.transposed)
	for k, fo := range fOffs {
		if !IsClose(ad[fo], bd[sOffs[k]], o.rel, o.abs) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseScalar reports whether every element of m IsClose to s.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument.
func AllCloseScalar(m *Matrix, s float32, opts ...CloseOption) (bool, error) {
	o, err := gatherCloseOptions(opts...)
	if err != nil {
		return false, matrixErrorf(opAllCloseSc, err)
	}
	if err = ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opAllCloseSc, err)
	}
	for _, v := range m.data() {
		if !IsClose(v, s, o.rel, o.abs) {
			return false, nil
		}
	}

	return true, nil
}
