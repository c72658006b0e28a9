// SPDX-License-Identifier: MIT

// Package matrix - matrix product, norms and 3-vector helpers.
//
// Purpose:
//   - MatMul over transposition-aware operands without materializing a
//     transposed copy: each operand is handed to BLAS as its physical
//     row-major General plus a Trans flag when it is a transposed view.
//   - Reproduce the vector contraction convention: (1×K) @ (K×1) is a scalar.
//   - Vector helpers for rendering code: Normalize and the 3-D Cross product.
//
// Determinism & Performance:
//   - gonum blas32 (float32 Sgemm/Sdot); accumulation stays in float32.
//   - One allocation for the result; no temporaries.
package matrix

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/katalvlaran/lvmath/index"
)

// logicalStrides returns the buffer steps for one logical row and one logical
// column: offset(i, j) = i*rowStride + j*colStride.
func (m *Matrix) logicalStrides() (rowStride, colStride int) {
	if m.transposed {
		return 1, m.cols
	}

	return m.cols, 1
}

// general wraps the physical buffer as a row-major blas32.General and returns
// the transpose flag that yields the logical matrix.
func (m *Matrix) general() (blas32.General, blas.Transpose) {
	g := blas32.General{Rows: m.rows, Cols: m.cols, Stride: m.cols, Data: m.data()}
	if m.transposed {
		return g, blas.Trans
	}

	return g, blas.NoTrans
}

// MatMul returns the matrix product a @ b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols() == b.Rows()).
//   - Stage 2: N == M == 1 contracts with blas32.Dot over strided vectors and
//     yields the scalar variant.
//   - Stage 3: otherwise blas32.Gemm (alpha=1, beta=0) into a fresh
//     untransposed N×M matrix.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(N*K*M), Space O(N*M).
func MatMul(a, b *Matrix) (Value, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return Value{}, matrixErrorf(opMatMul, err)
	}
	n, k := a.Shape()
	m := b.Cols()

	if n == 1 && m == 1 {
		_, ack := a.logicalStrides()
		brk, _ := b.logicalStrides()
		x := blas32.Vector{N: k, Data: a.data(), Inc: ack}
		y := blas32.Vector{N: k, Data: b.data(), Inc: brk}
		return ScalarValue(blas32.Dot(x, y)), nil
	}

	ga, ta := a.general()
	gb, tb := b.general()
	out := newLike(n, m, false)
	gc := blas32.General{Rows: n, Cols: m, Stride: m, Data: out.data()}
	blas32.Gemm(ta, tb, 1, ga, gb, 0, gc)

	return MatrixValue(out), nil
}

// Norm returns (Σ|x|^p)^(1/p) over all elements, accumulated in float64.
// p=2 is the Frobenius norm; p=1 the sum of magnitudes.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidArgument for p == 0 or NaN.
//
// Complexity:
//   - Time O(n), Space O(1).
func Norm(m *Matrix, p float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if err := ValidateExponent(p); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var sum float64
	for _, v := range m.data() {
		sum += math.Pow(math.Abs(float64(v)), p)
	}

	return math.Pow(sum, 1/p), nil
}

// Normalize returns m / Norm(m, p) in a new buffer with m's layout. For a
// vector and p=2 this is the unit vector along m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (see Norm).
//   - ErrDivisionByZero when the norm is zero.
func Normalize(m *Matrix, p float64) (*Matrix, error) {
	n, err := Norm(m, p)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	if n == 0 {
		return nil, matrixErrorf(opNormalize, errors.Wrap(ErrDivisionByZero, "zero norm"))
	}

	return ewUnary(m, func(x float32) float32 { return float32(float64(x) / n) }, opNormalize)
}

// Cross returns the 3-D cross product a × b. Each operand must hold exactly
// three elements as a 1×3 or 3×1 vector (either transposition); the result
// is a fresh untransposed matrix with a's logical shape.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrShapeMismatch when either operand is not a 3-vector.
func Cross(a, b *Matrix) (*Matrix, error) {
	if err := ValidateVector3(a); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateVector3(b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	x, y := vector3(a), vector3(b)

	r, c := a.Shape()
	out := newLike(r, c, false)
	od := out.data()
	od[0] = x[1]*y[2] - x[2]*y[1]
	od[1] = x[2]*y[0] - x[0]*y[2]
	od[2] = x[0]*y[1] - x[1]*y[0]

	return out, nil
}

// vector3 reads a validated 3-vector in logical order.
func vector3(m *Matrix) [3]float32 {
	d := m.data()
	var v [3]float32
	for k, off := range index.SelectAll(m.rows, m.cols, m.transposed) {
		v[k] = d[off]
	}

	return v
}
