// SPDX-License-Identifier: MIT

// Package index - linearization kernels.
//
// Purpose:
//   - Map logical (i, j) coordinates of a possibly transposed row-major matrix
//     onto flat buffer offsets.
//   - Resolve two-axis selections into sub-shapes and ordered offset lists.
//
// Determinism & Performance:
//   - Offsets are emitted i-major, j-minor over the logical axes.
//   - All functions are pure; the only allocation is the returned slice.
//   - Errors are detected before a result is returned; no partial results.

package index

import (
	"github.com/pkg/errors"
)

// logicalExtents returns the (axis 0, axis 1) extents callers observe.
func logicalExtents(rows, cols int, transposed bool) (int, int) {
	if transposed {
		return cols, rows
	}

	return rows, cols
}

// LinearizeScalar maps the logical coordinate (i, j) to a flat offset of a
// buffer with physical shape (rows, cols).
//
// Implementation:
//   - transposed=false: require 0<=i<rows, 0<=j<cols; offset i*cols + j.
//   - transposed=true:  require 0<=j<rows, 0<=i<cols; offset j*cols + i.
//
// Errors:
//   - ErrIndexOutOfBounds when (i, j) lies outside the logical shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func LinearizeScalar(rows, cols int, transposed bool, i, j int) (int, error) {
	if !transposed {
		if 0 <= i && i < rows && 0 <= j && j < cols {
			return i*cols + j, nil
		}
	} else if 0 <= j && j < rows && 0 <= i && i < cols {
		return j*cols + i, nil
	}
	r, c := logicalExtents(rows, cols, transposed)

	return 0, errors.Wrapf(ErrIndexOutOfBounds, "(%d, %d) outside shape (%d, %d)", i, j, r, c)
}

// SubShape returns the shape of the selection idx on a matrix with physical
// shape (rows, cols).
//
// Behavior highlights:
//   - Scalar selectors contribute 1, lists their length, ranges the number of
//     positions after clipping; the physical extents are swapped when
//     transposed.
//   - Bounds of scalars and lists are not checked here (see Linearize).
//
// Errors:
//   - ErrInvalidArgument for a range with step 0.
func SubShape(rows, cols int, transposed bool, idx Index) (int, int, error) {
	ni, nj := logicalExtents(rows, cols, transposed)
	r, err := Count(idx[0], ni)
	if err != nil {
		return 0, 0, errors.WithMessagef(err, "SubShape%s axis 0", idx)
	}
	c, err := Count(idx[1], nj)
	if err != nil {
		return 0, 0, errors.WithMessagef(err, "SubShape%s axis 1", idx)
	}

	return r, c, nil
}

// Linearize returns the flat offsets selected by idx, ordered row-major over
// the logical axes: the Cartesian product of the axis-0 positions (outer) and
// the axis-1 positions (inner), each pair mapped through LinearizeScalar.
//
// Errors:
//   - ErrIndexOutOfBounds for a scalar or list position outside the axis.
//   - ErrInvalidArgument for a range with step 0.
//
// Complexity:
//   - Time O(p*q), Space O(p*q) for p axis-0 and q axis-1 positions.
func Linearize(rows, cols int, transposed bool, idx Index) ([]int, error) {
	ni, nj := logicalExtents(rows, cols, transposed)
	is, err := Resolve(idx[0], ni)
	if err != nil {
		return nil, errors.WithMessagef(err, "Linearize%s axis 0", idx)
	}
	js, err := Resolve(idx[1], nj)
	if err != nil {
		return nil, errors.WithMessagef(err, "Linearize%s axis 1", idx)
	}

	out := make([]int, 0, len(is)*len(js))
	for _, i := range is {
		for _, j := range js {
			off, err := LinearizeScalar(rows, cols, transposed, i, j)
			if err != nil {
				return nil, errors.WithMessagef(err, "Linearize%s", idx)
			}
			out = append(out, off)
		}
	}

	return out, nil
}

// Complete expands a one-axis selection into the canonical two-axis Index by
// taking the whole of axis 1; a two-axis selection is returned unchanged.
//
// Errors:
//   - ErrIndexArity for zero or more than two selectors.
func Complete(sels ...Selector) (Index, error) {
	switch len(sels) {
	case 1:
		return Index{sels[0], All()}, nil
	case 2:
		return Index{sels[0], sels[1]}, nil
	default:
		return Index{}, errors.Wrapf(ErrIndexArity, "Complete: got %d selectors", len(sels))
	}
}

// SelectAll returns the offsets of every element in logical row-major order.
// It equals Linearize(rows, cols, transposed, Index{All(), All()}) and is used
// to pair elements of operands with different transposition.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func SelectAll(rows, cols int, transposed bool) []int {
	if rows <= 0 || cols <= 0 {
		return []int{}
	}
	out := make([]int, rows*cols)
	if !transposed {
		for k := range out {
			out[k] = k
		}
		return out
	}
	// Logical shape (cols, rows): logical row i is physical column i.
	k := 0
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			out[k] = j*cols + i
			k++
		}
	}

	return out
}
