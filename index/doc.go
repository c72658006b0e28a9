// SPDX-License-Identifier: MIT

// Package index implements the index algebra of lvmath: pure functions that
// turn a two-axis selection into a sub-shape and into flat buffer offsets of a
// row-major matrix, honoring a transposition flag.
//
// A selection is an Index, the canonical pair of per-axis Selectors. Each
// Selector is one of:
//
//	Elem(i)          a single position            extent 1
//	Elems(i, j, ...) an ordered list of positions  extent len(list)
//	Range(...)       a start:stop:step range       extent = resolved count
//
// Ranges follow slice semantics familiar from array languages: stop is
// exclusive, the step may be negative, negative endpoints count from the end
// and endpoints are clipped to the axis, so a range never fails because it runs
// past the axis. Scalars and list entries are not wrapped: any position outside
// [0, extent) is ErrIndexOutOfBounds.
//
// Transposition is never applied to data. A matrix with physical shape
// (rows, cols) and transposed=true exposes the logical shape (cols, rows); the
// same buffer is reinterpreted by LinearizeScalar:
//
//	transposed=false: (i, j) -> i*cols + j
//	transposed=true:  (i, j) -> j*cols + i
//
// Offsets produced by Linearize are ordered row-major over the logical axes:
// axis 0 is the outer loop and axis 1 the inner loop.
//
// Example, physical shape (3, 4), not transposed:
//
//	idx := index.Index{index.RangeTo(2), index.All()}
//	r, c, _ := index.SubShape(3, 4, false, idx) // 2, 4
//	offs, _ := index.Linearize(3, 4, false, idx) // [0 1 2 3 4 5 6 7]
package index
