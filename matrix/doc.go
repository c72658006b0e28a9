// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major, two-dimensional float32 matrix
// with shape-aware indexing and zero-copy transposition.
//
// The matrix package provides:
//
//   - Matrix: a physical (rows, cols) shape, a transposition flag and a
//     reference-counted handle on a buffer.Buffer. The logical shape is
//     (cols, rows) when transposed.
//   - Get/Set through index.Selector values (scalar, list and range per axis),
//     with a two-variant Value result: one selected element is a scalar, more
//     are a fresh untransposed Matrix.
//   - T(): a transposed view sharing the buffer; writes through either handle
//     are visible through both.
//   - Elementwise arithmetic (matrix and scalar operands), MatMul on gonum
//     blas32, unary Neg/Pos/Abs, comparisons reduced to one boolean, AllClose,
//     Norm/Normalize and the 3-vector Cross product.
//   - Row/column iteration, nested-list and constructor-form rendering,
//     little-endian and float16 export, gonum interop, and 4x4 transform
//     builders.
//
// Errors are package sentinels matched with errors.Is; index errors are
// re-exported under the same names. Use after Release panics.
//
// Quick start:
//
//	m, _ := matrix.FromData(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	v, _ := m.T().Get(index.Elem(2), index.Elem(1)) // 6
//	s, _ := v.Scalar()
//
// Matrices are not safe for concurrent mutation; guard shared matrices at the
// call boundary.
package matrix
