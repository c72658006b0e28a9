// SPDX-License-Identifier: MIT

// Package matrix - export and interop.
//
// Purpose:
//   - Flatten a matrix in LOGICAL row-major order for callers that upload or
//     hand off contiguous data: []float32, little-endian bytes, float16.
//   - Convert to and from gonum.org/v1/gonum/mat (float64) for callers that
//     need decompositions this package does not provide.
package matrix

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"
)

// Values returns a copy of the elements in logical row-major order.
// Complexity: O(n).
func (m *Matrix) Values() []float32 {
	if m == nil {
		return nil
	}
	r, c := m.Shape()
	d := m.data()
	rs, cs := m.logicalStrides()
	out := make([]float32, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, d[i*rs+j*cs])
		}
	}

	return out
}

// Bytes encodes the elements in logical row-major order as little-endian
// IEEE-754 float32, 4 bytes per element (the layout GPU upload buffers expect).
func (m *Matrix) Bytes() []byte {
	vals := m.Values()
	out := make([]byte, 4*len(vals))
	for k, v := range vals {
		binary.LittleEndian.PutUint32(out[4*k:], math.Float32bits(v))
	}

	return out
}

// Float16s converts the elements, in logical row-major order, to IEEE-754
// half precision (round to nearest even; out-of-range values become ±Inf).
func (m *Matrix) Float16s() []float16.Float16 {
	vals := m.Values()
	out := make([]float16.Float16, len(vals))
	for k, v := range vals {
		out[k] = float16.Fromfloat32(v)
	}

	return out
}

// FromFloat16s builds a rows×cols matrix from half-precision row-major data.
//
// Errors:
//   - ErrShapeError for an invalid shape or data length.
func FromFloat16s(rows, cols int, data []float16.Float16) (*Matrix, error) {
	vals := make([]float32, len(data))
	for k, h := range data {
		vals[k] = h.Float32()
	}

	return New(rows, cols, WithData(vals))
}

// ToGonum copies m into a new *mat.Dense with the same logical shape.
func (m *Matrix) ToGonum() *mat.Dense {
	if m == nil {
		return nil
	}
	r, c := m.Shape()
	vals := m.Values()
	data := make([]float64, len(vals))
	for k, v := range vals {
		data[k] = float64(v)
	}

	return mat.NewDense(r, c, data)
}

// FromGonum copies any gonum matrix into a new Matrix, narrowing to float32.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrShapeError for an empty source.
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, errors.WithMessage(ErrNilMatrix, "FromGonum")
	}
	r, c := src.Dims()
	if err := ValidateShape(r, c); err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	out := newLike(r, c, false)
	d := out.data()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d[i*c+j] = float32(src.At(i, j))
		}
	}

	return out, nil
}
