// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or error policy of the kernels.

package matrix

// Dot is MatMul under its linear-algebra name: a (1×K)·(K×1) product is a
// scalar, anything else a matrix.
func Dot(a, b *Matrix) (Value, error) { return MatMul(a, b) }

// ScalarAdd returns s + m (same as AddScalar; addition commutes).
func ScalarAdd(s float32, m *Matrix) (*Matrix, error) { return AddScalar(m, s) }

// ScalarMul returns s * m (same as MulScalar).
func ScalarMul(s float32, m *Matrix) (*Matrix, error) { return MulScalar(m, s) }

// Clone returns an independent copy of m with the same physical shape and
// transposition (unary plus). Clone of nil is nil.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out, _ := Pos(m)

	return out
}

// Contiguous returns an untransposed matrix with m's logical shape and
// elements. Unlike Clone, the physical layout always matches the logical one.
func (m *Matrix) Contiguous() (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Contiguous", err)
	}
	r, c := m.Shape()

	return New(r, c, WithData(m.Values()))
}
