// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

func TestBinary_SameLayout(t *testing.T) {
	a := mustMatrix(t, 2, 2, []float32{1, 2, 3, 4})
	b := mustMatrix(t, 2, 2, []float32{10, 20, 30, 40})

	tests := []struct {
		name string
		fn   func(a, b *matrix.Matrix) (*matrix.Matrix, error)
		want []float32
	}{
		{"Add", matrix.Add, []float32{11, 22, 33, 44}},
		{"Sub", matrix.Sub, []float32{-9, -18, -27, -36}},
		{"Mul", matrix.Mul, []float32{10, 40, 90, 160}},
		{"Div", matrix.Div, []float32{0.1, 0.1, 0.1, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, b)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, got.Values(), 1e-6)
			require.False(t, got.SharesStorage(a))
			require.False(t, got.SharesStorage(b))
		})
	}
	// Operands are untouched.
	requireValues(t, a, 2, 2, []float32{1, 2, 3, 4})
	requireValues(t, b, 2, 2, []float32{10, 20, 30, 40})
}

func TestBinary_MixedTransposition(t *testing.T) {
	// a logical [[1 2] [3 4] [5 6]] untransposed; b the same values stored
	// transposed: physical [[1 3 5] [2 4 6]].
	a := mustSeq(t, 3, 2)
	b := mustMatrix(t, 2, 3, []float32{1, 3, 5, 2, 4, 6}).T()
	require.True(t, matrix.Equal(a, b))

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireValues(t, sum, 3, 2, []float32{2, 4, 6, 8, 10, 12})
	require.False(t, sum.IsTransposed())

	// The left operand decides the physical layout.
	sum2, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, sum2.IsTransposed())
	requireValues(t, sum2, 3, 2, []float32{2, 4, 6, 8, 10, 12})

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	ok, err := matrix.AllCloseScalar(diff, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBinary_AddSubRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		a := randMatrix(t, 4, 5, seed)
		b := randMatrix(t, 5, 4, seed+100).T()

		s, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(s, b)
		require.NoError(t, err)
		ok, err := matrix.AllClose(back, a)
		require.NoError(t, err)
		require.True(t, ok, "seed %d", seed)
	}
}

func TestBinary_Errors(t *testing.T) {
	a := mustSeq(t, 2, 2)
	b := mustSeq(t, 2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.False(t, matrix.Equal(a, b))
	require.True(t, matrix.NotEqual(a, b))

	// (2,3) vs its transpose (3,2) is a logical mismatch too.
	_, err = matrix.Mul(b, b.T())
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Div(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiv_ByZero(t *testing.T) {
	one := mustMatrix(t, 1, 1, []float32{1})
	zero := mustMatrix(t, 1, 1, []float32{0})
	_, err := matrix.Div(one, zero)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	a := mustSeq(t, 2, 2)
	b := mustMatrix(t, 2, 2, []float32{1, 2, 0, 4})
	_, err = matrix.Div(a, b)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	// A zero dividend is fine.
	got, err := matrix.Div(zero, one)
	require.NoError(t, err)
	requireValues(t, got, 1, 1, []float32{0})

	negZero := mustMatrix(t, 1, 1, []float32{float32(math.Copysign(0, -1))})
	_, err = matrix.Div(one, negZero)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestScalarOps_KeepTransposition(t *testing.T) {
	m := mustSeq(t, 2, 3).T() // logical [[1 4] [2 5] [3 6]]

	tests := []struct {
		name string
		fn   func() (*matrix.Matrix, error)
		want []float32
	}{
		{"AddScalar", func() (*matrix.Matrix, error) { return matrix.AddScalar(m, 1) }, []float32{2, 5, 3, 6, 4, 7}},
		{"ScalarAdd", func() (*matrix.Matrix, error) { return matrix.ScalarAdd(1, m) }, []float32{2, 5, 3, 6, 4, 7}},
		{"SubScalar", func() (*matrix.Matrix, error) { return matrix.SubScalar(m, 1) }, []float32{0, 3, 1, 4, 2, 5}},
		{"ScalarSub", func() (*matrix.Matrix, error) { return matrix.ScalarSub(10, m) }, []float32{9, 6, 8, 5, 7, 4}},
		{"MulScalar", func() (*matrix.Matrix, error) { return matrix.MulScalar(m, 2) }, []float32{2, 8, 4, 10, 6, 12}},
		{"ScalarMul", func() (*matrix.Matrix, error) { return matrix.ScalarMul(2, m) }, []float32{2, 8, 4, 10, 6, 12}},
		{"DivScalar", func() (*matrix.Matrix, error) { return matrix.DivScalar(m, 2) }, []float32{0.5, 2, 1, 2.5, 1.5, 3}},
		{"ScalarDiv", func() (*matrix.Matrix, error) { return matrix.ScalarDiv(12, m) }, []float32{12, 3, 6, 2.4, 4, 2}},
		{"Neg", func() (*matrix.Matrix, error) { return matrix.Neg(m) }, []float32{-1, -4, -2, -5, -3, -6}},
		{"Pos", func() (*matrix.Matrix, error) { return matrix.Pos(m) }, []float32{1, 4, 2, 5, 3, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			require.True(t, got.IsTransposed())
			r, c := got.Shape()
			require.Equal(t, [2]int{3, 2}, [2]int{r, c})
			require.InDeltaSlice(t, tt.want, got.Values(), 1e-6)
			require.False(t, got.SharesStorage(m))
		})
	}
}

func TestScalarDivision_Zero(t *testing.T) {
	m := mustSeq(t, 2, 2)
	_, err := matrix.DivScalar(m, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	withZero := mustMatrix(t, 1, 3, []float32{1, 0, 2})
	_, err = matrix.ScalarDiv(1, withZero)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	// Zero numerator over non-zero elements is fine.
	got, err := matrix.ScalarDiv(0, m)
	require.NoError(t, err)
	requireValues(t, got, 2, 2, []float32{0, 0, 0, 0})

	_, err = matrix.DivScalar(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScalarDiv(2, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestUnary_Abs(t *testing.T) {
	m := mustMatrix(t, 2, 2, []float32{-1, 2, -3.5, 0})
	got, err := matrix.Abs(m)
	require.NoError(t, err)
	requireValues(t, got, 2, 2, []float32{1, 2, 3.5, 0})

	n, err := matrix.Neg(m)
	require.NoError(t, err)
	requireValues(t, n, 2, 2, []float32{1, -2, 3.5, 0})

	_, err = matrix.Abs(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
