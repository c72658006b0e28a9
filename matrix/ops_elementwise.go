// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise operator set: Matrix⊕Matrix, Matrix⊕scalar,
//     scalar⊕Matrix and the unary Neg/Pos/Abs.
//   - Keep the tight loops in a few private ew* kernels shared by every
//     public operator.
//
// Design:
//   - Matrix⊕Matrix pairs elements by LOGICAL position: each operand is
//     walked in its own index.SelectAll order, so operands with different
//     transposition combine correctly. The result takes the left operand's
//     physical shape and transposition.
//   - Scalar kernels walk the physical buffer directly (every element is
//     treated the same) and keep the operand's transposition.
//   - Results are always fresh buffers; operands are never mutated.
//
// Determinism & Performance:
//   - Same-layout operands take a flat 0..n-1 fast path.
//   - Divisors are checked before the result is allocated.

package matrix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmath/index"
)

// ---------- operation tags ----------

const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opMulScalar  = "MulScalar"
	opDivScalar  = "DivScalar"
	opScalarSub  = "ScalarSub"
	opScalarDiv  = "ScalarDiv"
	opNeg        = "Neg"
	opPos        = "Pos"
	opAbs        = "Abs"
	opMatMul     = "MatMul"
	opNorm       = "Norm"
	opNormalize  = "Normalize"
	opCross      = "Cross"
	opIter       = "Iter"
	opCompare    = "Compare"
	opAllClose   = "AllClose"
	opAllCloseSc = "AllCloseScalar"
)

// ewBinary computes out[p] = f(a[p], b[p]) for every logical position p.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape; optionally reject zero divisors in b.
//   - Stage 2: allocate a result with a's physical layout.
//   - Stage 3: flat loop when a and b share a layout, otherwise pair the
//     SelectAll offsets of both operands.
//
// Complexity:
//   - Time O(n), Space O(n) (plus two offset slices on the mixed-layout path).
func ewBinary(a, b *Matrix, f func(x, y float32) float32, divides bool, tag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ad, bd := a.data(), b.data()
	if divides {
		if err := ValidateDivisors(bd); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	out := newLike(a.rows, a.cols, a.transposed)
	od := out.data()
	if a.transposed == b.transposed {
		// Equal logical shape and flag imply equal physical shape.
		for k := range od {
			od[k] = f(ad[k], bd[k])
		}
		return out, nil
	}

	fOffs := index.SelectAll(a.rows, a.cols, a.transposed)
	sOffs := index.SelectAll(b.rows, b.cols, b.transposed)
	for k, fo := range fOffs {
		od[fo] = f(ad[fo], bd[sOffs[k]])
	}

	return out, nil
}

// ewUnary computes out[k] = f(m[k]) over the physical buffer; the result keeps
// m's layout.
func ewUnary(m *Matrix, f func(x float32) float32, tag string) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	src := m.data()
	out := newLike(m.rows, m.cols, m.transposed)
	od := out.data()
	for k, v := range src {
		od[k] = f(v)
	}

	return out, nil
}

// Add returns the elementwise sum a + b.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (logical shapes differ).
//
// Complexity:
//   - Time O(n), Space O(n).
func Add(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float32) float32 { return x + y }, false, opAdd)
}

// Sub returns the elementwise difference a - b.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
func Sub(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float32) float32 { return x - y }, false, opSub)
}

// Mul returns the elementwise (Hadamard) product a * b. See MatMul for the
// matrix product.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
func Mul(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float32) float32 { return x * y }, false, opMul)
}

// Div returns the elementwise quotient a / b.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//   - ErrDivisionByZero if any element of b is exactly zero.
func Div(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float32) float32 { return x / y }, true, opDiv)
}

// AddScalar returns m + s.
func AddScalar(m *Matrix, s float32) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return x + s }, opAddScalar)
}

// SubScalar returns m - s.
func SubScalar(m *Matrix, s float32) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return x - s }, opSubScalar)
}

// MulScalar returns m * s.
func MulScalar(m *Matrix, s float32) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return x * s }, opMulScalar)
}

// DivScalar returns m / s.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDivisionByZero if s is exactly zero.
func DivScalar(m *Matrix, s float32) (*Matrix, error) {
	if s == 0 {
		return nil, matrixErrorf(opDivScalar, errors.Wrap(ErrDivisionByZero, "scalar divisor"))
	}

	return ewUnary(m, func(x float32) float32 { return x / s }, opDivScalar)
}

// ScalarSub returns s - m.
func ScalarSub(s float32, m *Matrix) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return s - x }, opScalarSub)
}

// ScalarDiv returns s / m. The divisors are the elements of m.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDivisionByZero if any element of m is exactly zero.
func ScalarDiv(s float32, m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}
	if err := ValidateDivisors(m.data()); err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}

	return ewUnary(m, func(x float32) float32 { return s / x }, opScalarDiv)
}

// Neg returns -m with m's shape and transposition in a new buffer.
func Neg(m *Matrix) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return -x }, opNeg)
}

// Pos returns an independent copy of m (unary plus).
func Pos(m *Matrix) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return x }, opPos)
}

// Abs returns |m| elementwise.
func Abs(m *Matrix) (*Matrix, error) {
	return ewUnary(m, func(x float32) float32 { return float32(math.Abs(float64(x))) }, opAbs)
}
