// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvmath/index"
)

// Iterator walks a matrix one row at a time, or one column at a time when the
// matrix has a single logical row. Each step is one Get, so rows and columns
// come back as fresh matrices (or scalars for single elements).
//
// The iterator holds its own reference on the buffer from construction until
// it is exhausted, fails or is closed; the source matrix may be released in
// the meantime. It is forward-only and cannot be restarted.
type Iterator struct {
	m       *Matrix // private handle; nil once closed
	idx     int
	idxMax  int
	columns bool

	cur Value
	err error
}

// Iter returns an Iterator over m. Iter on a released matrix panics; on a
// nil matrix it returns an exhausted iterator whose Err is ErrNilMatrix.
func (m *Matrix) Iter() *Iterator {
	if err := ValidateNotNil(m); err != nil {
		return &Iterator{err: matrixErrorf(opIter, err)}
	}
	r, c := m.Shape()
	it := &Iterator{
		m:      &Matrix{buf: m.storage().Retain(), rows: m.rows, cols: m.cols, transposed: m.transposed},
		idxMax: r,
	}
	if r <= 1 {
		it.columns, it.idxMax = true, c
	}
	klog.V(3).Infof("matrix: iterator over (%d, %d) columns=%t", r, c, it.columns)

	return it
}

// Next advances to the next row or column and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.m == nil {
		return false
	}
	if it.idx >= it.idxMax {
		it.Close()
		return false
	}
	idx := index.Index{index.Elem(it.idx), index.All()}
	if it.columns {
		idx = index.Index{index.All(), index.Elem(it.idx)}
	}
	v, err := it.m.GetIndex(idx)
	if err != nil {
		it.err = err
		it.Close()
		return false
	}
	it.cur = v
	it.idx++

	return true
}

// Value returns the row or column produced by the last successful Next.
func (it *Iterator) Value() Value { return it.cur }

// Err returns the error that stopped the iteration, if any.
func (it *Iterator) Err() error { return it.err }

// Close releases the iterator's buffer reference. It is idempotent.
func (it *Iterator) Close() {
	if it.m == nil {
		return
	}
	it.m.Release()
	it.m = nil
}

// All returns a range-over-func sequence of (position, row-or-column).
func (m *Matrix) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		it := m.Iter()
		defer it.Close()
		for k := 0; it.Next(); k++ {
			if !yield(k, it.Value()) {
				return
			}
		}
	}
}
