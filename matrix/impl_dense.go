// SPDX-License-Identifier: MIT

// Package matrix - selection access (Get/Set) over the shared buffer.
//
// Purpose:
//   - Route every read and write through index.Linearize so transposition,
//     ranges and lists share one code path.
//   - Guarantee validate-then-act: Set resolves offsets and checks the value
//     before the first write, so a failed Set leaves the matrix untouched.
//
// Complexity quicksheet:
//   - At/SetAt: O(1); Get/Set: O(k) for k selected elements.
package matrix

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmath/index"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSetAt  = "SetAt"
	ctxGet    = "Get"
	ctxSet    = "Set"
	ctxGetAny = "GetAny"
)

// denseErrorf wraps an error with a method tag and the selection it failed on.
func denseErrorf(method string, idx index.Index, err error) error {
	return errors.WithMessagef(err, "Matrix.%s%s", method, idx)
}

// At returns the element at logical (i, j).
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(i, j int) (float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(ctxAt, err)
	}
	off, err := index.LinearizeScalar(m.rows, m.cols, m.transposed, i, j)
	if err != nil {
		return 0, matrixErrorf(ctxAt, err)
	}

	return m.data()[off], nil
}

// SetAt writes v at logical (i, j).
//
// Errors:
//   - ErrNilMatrix, ErrIndexOutOfBounds.
func (m *Matrix) SetAt(i, j int, v float32) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxSetAt, err)
	}
	off, err := index.LinearizeScalar(m.rows, m.cols, m.transposed, i, j)
	if err != nil {
		return matrixErrorf(ctxSetAt, err)
	}
	m.data()[off] = v

	return nil
}

// Get returns the selection denoted by one or two axis selectors.
//
// Implementation:
//   - Stage 1: index.Complete (one selector takes the whole of axis 1).
//   - Stage 2: index.SubShape + index.Linearize against the logical shape.
//   - Stage 3: one element is the scalar variant; more are copied, in
//     linearized order, into a fresh untransposed matrix of the sub-shape.
//
// Errors:
//   - ErrIndexArity, ErrIndexOutOfBounds, ErrInvalidArgument (zero step).
//   - ErrEmptySelection when nothing is selected.
func (m *Matrix) Get(sels ...index.Selector) (Value, error) {
	if err := ValidateNotNil(m); err != nil {
		return Value{}, matrixErrorf(ctxGet, err)
	}
	idx, err := index.Complete(sels...)
	if err != nil {
		return Value{}, matrixErrorf(ctxGet, err)
	}

	return m.GetIndex(idx)
}

// GetIndex is Get for an already canonical Index.
func (m *Matrix) GetIndex(idx index.Index) (Value, error) {
	if err := ValidateNotNil(m); err != nil {
		return Value{}, matrixErrorf(ctxGet, err)
	}
	r, c, err := index.SubShape(m.rows, m.cols, m.transposed, idx)
	if err != nil {
		return Value{}, denseErrorf(ctxGet, idx, err)
	}
	offs, err := index.Linearize(m.rows, m.cols, m.transposed, idx)
	if err != nil {
		return Value{}, denseErrorf(ctxGet, idx, err)
	}

	src := m.data()
	switch len(offs) {
	case 0:
		return Value{}, denseErrorf(ctxGet, idx, errors.Wrapf(ErrEmptySelection, "sub-shape (%d, %d)", r, c))
	case 1:
		return ScalarValue(src[offs[0]]), nil
	}
	out := newLike(r, c, false)
	dst := out.data()
	for k, off := range offs {
		dst[k] = src[off]
	}

	return MatrixValue(out), nil
}

// GetAny is Get for dynamic keys (see index.Parse).
//
// Errors:
//   - ErrTypeMismatch for a key that is not an integer, integer list or Selector.
func (m *Matrix) GetAny(keys ...any) (Value, error) {
	idx, err := index.Parse(keys...)
	if err != nil {
		return Value{}, matrixErrorf(ctxGetAny, err)
	}

	return m.GetIndex(idx)
}

// Set writes value into the selection. value may be:
//   - a Go number: broadcast to every selected element (SetScalar),
//   - a numeric slice or []any of numbers: row-major values (SetValues),
//   - a *Matrix or a Value: see SetMatrix / SetScalar.
//
// Errors:
//   - ErrTypeMismatch for any other value or a non-numeric element.
//   - Everything SetScalar, SetValues and SetMatrix return.
func (m *Matrix) Set(value any, sels ...index.Selector) error {
	switch v := value.(type) {
	case *Matrix:
		return m.SetMatrix(v, sels...)
	case Value:
		if s, ok := v.Scalar(); ok {
			return m.SetScalar(s, sels...)
		}
		src, _ := v.Matrix()
		return m.SetMatrix(src, sels...)
	}
	if s, ok := numberOf(value); ok {
		return m.SetScalar(s, sels...)
	}
	vals, err := numbersOf(value)
	if err != nil {
		return matrixErrorf(ctxSet, err)
	}

	return m.SetValues(vals, sels...)
}

// SetScalar broadcasts v to every selected element. An empty selection is a
// no-op.
//
// Errors:
//   - ErrIndexArity, ErrIndexOutOfBounds, ErrInvalidArgument.
func (m *Matrix) SetScalar(v float32, sels ...index.Selector) error {
	offs, _, err := m.resolveSet(sels)
	if err != nil {
		return err
	}
	dst := m.data()
	for _, off := range offs {
		dst[off] = v
	}

	return nil
}

// SetValues writes values, in row-major order over the selection.
//
// Errors:
//   - ErrShapeMismatch when len(values) differs from the number of selected
//     elements.
//   - ErrIndexArity, ErrIndexOutOfBounds, ErrInvalidArgument.
func (m *Matrix) SetValues(values []float32, sels ...index.Selector) error {
	offs, idx, err := m.resolveSet(sels)
	if err != nil {
		return err
	}
	if len(values) != len(offs) {
		return denseErrorf(ctxSet, idx, errors.Wrapf(ErrShapeMismatch,
			"%d values for %d selected elements", len(values), len(offs)))
	}
	dst := m.data()
	for k, off := range offs {
		dst[off] = values[k]
	}

	return nil
}

// SetMatrix copies src into the selection. src must have the logical shape of
// the selection; its elements are read in src's own logical row-major order
// and written to the selected offsets positionally, so a transposed source is
// copied as it appears, not as it is stored. A source sharing m's buffer is
// snapshotted before the first write.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//   - ErrIndexArity, ErrIndexOutOfBounds, ErrInvalidArgument.
func (m *Matrix) SetMatrix(src *Matrix, sels ...index.Selector) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxSet, err)
	}
	offs, idx, err := m.resolveSet(sels)
	if err != nil {
		return err
	}
	r, c, err := index.SubShape(m.rows, m.cols, m.transposed, idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	sr, sc := src.Shape()
	if sr != r || sc != c {
		return denseErrorf(ctxSet, idx, errors.Wrapf(ErrShapeMismatch,
			"source shape (%d, %d) vs selection (%d, %d)", sr, sc, r, c))
	}

	srcData := src.data()
	if src.buf == m.buf {
		srcData = append([]float32(nil), srcData...)
	}
	srcOffs := index.SelectAll(src.rows, src.cols, src.transposed)
	dst := m.data()
	for k, off := range offs {
		dst[off] = srcData[srcOffs[k]]
	}

	return nil
}

// resolveSet validates the receiver and resolves the selection into offsets.
func (m *Matrix) resolveSet(sels []index.Selector) ([]int, index.Index, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, index.Index{}, matrixErrorf(ctxSet, err)
	}
	idx, err := index.Complete(sels...)
	if err != nil {
		return nil, idx, matrixErrorf(ctxSet, err)
	}
	offs, err := index.Linearize(m.rows, m.cols, m.transposed, idx)
	if err != nil {
		return nil, idx, denseErrorf(ctxSet, idx, err)
	}

	return offs, idx, nil
}
