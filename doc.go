// SPDX-License-Identifier: MIT

// Package lvmath is a small numeric core for rendering and simulation code:
// dense float32 matrices with shape-aware indexing, zero-copy transposition
// and a quaternion type for rotations.
//
// Everything lives in four subpackages, leaves first:
//
//	buffer/      reference-counted []float32 storage shared by a matrix and its views
//	index/       axis selectors (scalar, list, range) and the linearization algebra
//	matrix/      the Matrix type: Get/Set, arithmetic, MatMul, comparisons, rendering
//	quaternion/  rotation quaternions and their 3×3 / 4×4 matrices
//
// A transposed matrix is the same buffer read with swapped axes:
//
//	m, _ := matrix.FromData(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	mt := m.T()                                     // shape (3, 2), no copy
//	v, _ := mt.Get(index.Elem(2), index.Elem(1))    // scalar 6
//	row, _ := mt.Get(index.Elem(0))                 // fresh 1×2 matrix [[1.0, 4.0]]
//
// Errors are package sentinels matched with errors.Is. Values are not safe for
// concurrent mutation; reference counts are.
package lvmath
