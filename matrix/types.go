// SPDX-License-Identifier: MIT

// Package matrix: value types shared by the operator set.
// This file contains ONLY small domain types: the Number constraint, the
// two-variant Value returned by Get/MatMul, and the comparison operators.
package matrix

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any Go integer or float type. Values are narrowed to float32 on store.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is the result of a selection or a contraction: either a scalar or a
// Matrix, never both. Callers must handle both variants explicitly.
type Value struct {
	m *Matrix // nil for the scalar variant
	s float32
}

// ScalarValue wraps v as the scalar variant.
func ScalarValue(v float32) Value { return Value{s: v} }

// MatrixValue wraps m as the matrix variant.
func MatrixValue(m *Matrix) Value { return Value{m: m} }

// IsScalar reports whether v holds a scalar.
func (v Value) IsScalar() bool { return v.m == nil }

// Scalar returns the scalar and true, or 0 and false for the matrix variant.
func (v Value) Scalar() (float32, bool) {
	if v.m != nil {
		return 0, false
	}

	return v.s, true
}

// Matrix returns the matrix and true, or nil and false for the scalar variant.
func (v Value) Matrix() (*Matrix, bool) {
	return v.m, v.m != nil
}

// String renders the scalar like String renders matrix elements, or the matrix.
func (v Value) String() string {
	if v.m != nil {
		return v.m.String()
	}

	return formatElem(v.s)
}

// CompareOp selects the relation evaluated by Compare and friends.
type CompareOp uint8

const (
	OpLess CompareOp = iota
	OpLessEqual
	OpEqual
	OpNotEqual
	OpGreaterEqual
	OpGreater
)

var compareOpNames = [...]string{
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpGreaterEqual: ">=",
	OpGreater:      ">",
}

// String implements fmt.Stringer.
func (op CompareOp) String() string {
	if int(op) < len(compareOpNames) {
		return compareOpNames[op]
	}

	return "CompareOp(" + strconv.Itoa(int(op)) + ")"
}

// holds evaluates the relation on one pair of elements.
func (op CompareOp) holds(a, b float32) bool {
	switch op {
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpGreaterEqual:
		return a >= b
	default:
		return a > b
	}
}
