// SPDX-License-Identifier: MIT

// Package matrix - Matrix handle, construction and shape accessors.
//
// Purpose:
//   - Bind a physical (rows, cols) shape and a transposition flag to a
//     reference-counted buffer.Buffer.
//   - Keep construction strict: shapes below (1, 1) and data of the wrong
//     length are errors, never panics.
//   - Make transposition O(1): T() shares the buffer and flips the flag.
//
// Complexity quicksheet:
//   - New/Zeros/Full/FromData: O(r*c); T/Shape/Rows/Cols/Len: O(1).
package matrix

import (
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvmath/buffer"
)

// Matrix is a dense row-major float32 matrix.
//   - rows, cols are the PHYSICAL extents of the buffer (len == rows*cols).
//   - transposed swaps the logical axes; the logical shape is (cols, rows).
//   - buf may be shared with transposed views; writes through any handle are
//     visible through all of them.
type Matrix struct {
	buf        *buffer.Buffer
	rows, cols int
	transposed bool
}

// New creates a rows×cols matrix.
//
// Implementation:
//   - Stage 1: ValidateShape.
//   - Stage 2: resolve options (WithFill, WithData, WithTransposed).
//   - Stage 3: allocate a fresh buffer; WithData values are copied.
//
// Errors:
//   - ErrShapeError for rows<1, cols<1 or a data length other than rows*cols.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}
	o := gatherOptions(opts...)
	n := rows * cols

	var data []float32
	if o.data != nil {
		if len(o.data) != n {
			return nil, matrixErrorf("New", errors.Wrapf(ErrShapeError,
				"%d values for shape (%d, %d)", len(o.data), rows, cols))
		}
		data = slices.Clone(o.data)
	} else {
		data = make([]float32, n)
		if o.fill != 0 {
			for k := range data {
				data[k] = o.fill
			}
		}
	}

	return &Matrix{
		buf:        must.M1(buffer.FromSlice(data)),
		rows:       rows,
		cols:       cols,
		transposed: o.transposed,
	}, nil
}

// Zeros returns a zero-filled rows×cols matrix.
func Zeros(rows, cols int) (*Matrix, error) {
	return New(rows, cols)
}

// Full returns a rows×cols matrix with every element set to v.
func Full[T Number](rows, cols int, v T) (*Matrix, error) {
	return New(rows, cols, WithFill(v))
}

// FromData returns a rows×cols matrix holding data in row-major order.
func FromData[T Number](rows, cols int, data []T) (*Matrix, error) {
	return New(rows, cols, WithData(data))
}

// FromAny builds a matrix from a dynamic fill value, as an embedding layer
// would receive it:
//   - nil: zeros.
//   - any Go integer or float: broadcast.
//   - a slice of a Go numeric type, or []any of numbers: the row-major data.
//
// Options given after fill (typically WithTransposed) are applied last.
//
// Errors:
//   - ErrTypeMismatch for any other fill value or a non-numeric element.
//   - ErrShapeError for an invalid shape or data length.
func FromAny(rows, cols int, fill any, opts ...Option) (*Matrix, error) {
	var fillOpt Option
	if fill != nil {
		if v, ok := numberOf(fill); ok {
			fillOpt = WithFill(v)
		} else {
			data, err := numbersOf(fill)
			if err != nil {
				return nil, matrixErrorf("FromAny", err)
			}
			fillOpt = WithData(data)
		}
	}

	return New(rows, cols, append([]Option{fillOpt}, opts...)...)
}

// newLike allocates a zeroed matrix with a given physical layout. The shape
// must already be valid.
func newLike(rows, cols int, transposed bool) *Matrix {
	klog.V(3).Infof("matrix: allocating (%d, %d) transposed=%t", rows, cols, transposed)

	return &Matrix{
		buf:        must.M1(buffer.New(rows * cols)),
		rows:       rows,
		cols:       cols,
		transposed: transposed,
	}
}

// storage returns the buffer behind m; a released handle panics.
func (m *Matrix) storage() *buffer.Buffer {
	if m.buf == nil {
		exceptions.Panicf("matrix: use of released (%d, %d) matrix", m.rows, m.cols)
	}

	return m.buf
}

// data returns the live backing slice (panics after Release).
func (m *Matrix) data() []float32 { return m.storage().Data() }

// Shape returns the logical (rows, cols), honoring transposition.
func (m *Matrix) Shape() (int, int) {
	if m == nil {
		return 0, 0
	}
	if m.transposed {
		return m.cols, m.rows
	}

	return m.rows, m.cols
}

// Rows returns the logical number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.Shape()
	return r
}

// Cols returns the logical number of columns.
func (m *Matrix) Cols() int {
	_, c := m.Shape()
	return c
}

// PhysicalShape returns the (rows, cols) of the underlying row-major buffer.
func (m *Matrix) PhysicalShape() (int, int) {
	if m == nil {
		return 0, 0
	}

	return m.rows, m.cols
}

// IsTransposed reports whether m reinterprets its buffer with swapped axes.
func (m *Matrix) IsTransposed() bool { return m != nil && m.transposed }

// Len returns the number of elements.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	return m.rows * m.cols
}

// T returns the transposed view of m: same buffer, flipped flag, O(1).
// The buffer's reference count is incremented; Release the view when done
// with it if the buffer lifetime matters.
func (m *Matrix) T() *Matrix {
	if m == nil {
		return nil
	}
	klog.V(3).Infof("matrix: transposed view of (%d, %d)", m.rows, m.cols)

	return &Matrix{buf: m.storage().Retain(), rows: m.rows, cols: m.cols, transposed: !m.transposed}
}

// SharesStorage reports whether m and o are handles on the same buffer.
func (m *Matrix) SharesStorage(o *Matrix) bool {
	return m != nil && o != nil && m.buf != nil && m.buf == o.buf
}

// Release drops this handle's reference on the buffer. When the last handle
// is released the storage is freed. Release is idempotent per handle: the
// handle forgets its buffer, so a second call cannot steal a reference held
// by a view. Any further access through m panics.
func (m *Matrix) Release() {
	if m == nil || m.buf == nil {
		return
	}
	m.buf.Release()
	m.buf = nil
}

// numberOf converts a dynamic Go number into float32.
func numberOf(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	case int8:
		return float32(x), true
	case int16:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	case uint:
		return float32(x), true
	case uint8:
		return float32(x), true
	case uint16:
		return float32(x), true
	case uint32:
		return float32(x), true
	case uint64:
		return float32(x), true
	}

	return 0, false
}

// numbersOf converts a dynamic sequence of Go numbers into []float32.
func numbersOf(v any) ([]float32, error) {
	switch x := v.(type) {
	case []float32:
		return slices.Clone(x), nil
	case []float64:
		return toFloat32s(x), nil
	case []int:
		return toFloat32s(x), nil
	case []int32:
		return toFloat32s(x), nil
	case []int64:
		return toFloat32s(x), nil
	case []any:
		out := make([]float32, len(x))
		for k, e := range x {
			f, ok := numberOf(e)
			if !ok {
				return nil, errors.Wrapf(ErrTypeMismatch, "element %d: got %T, want a number", k, e)
			}
			out[k] = f
		}
		return out, nil
	}
	// Remaining numeric slice types ([]uint8, []int16, ...) go through reflection.
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, errors.Wrapf(ErrTypeMismatch, "got %T, want nil, a number or a sequence of numbers", v)
	}
	out := make([]float32, rv.Len())
	for k := range out {
		f, ok := numberOf(rv.Index(k).Interface())
		if !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "element %d: got %s, want a number", k, rv.Index(k).Type())
		}
		out[k] = f
	}

	return out, nil
}
