// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests and
//     benchmarks (seeded random fill, sequential data, value assertions).

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

// seq returns [start, start+1, ..., start+n-1] as float32.
func seq(start float32, n int) []float32 {
	out := make([]float32, n)
	for k := range out {
		out[k] = start + float32(k)
	}

	return out
}

// mustMatrix builds a rows×cols matrix from row-major data or fails the test.
func mustMatrix(tb testing.TB, rows, cols int, data []float32, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows, cols, append([]matrix.Option{matrix.WithData(data)}, opts...)...)
	require.NoError(tb, err)

	return m
}

// mustSeq builds a rows×cols matrix holding 1..rows*cols.
func mustSeq(tb testing.TB, rows, cols int) *matrix.Matrix {
	tb.Helper()
	return mustMatrix(tb, rows, cols, seq(1, rows*cols))
}

// randMatrix fills a rows×cols matrix with values in [-1, 1) from a seeded source.
func randMatrix(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, rows*cols)
	for k := range data {
		data[k] = rng.Float32()*2 - 1
	}

	return mustMatrix(tb, rows, cols, data)
}

// requireValues asserts the logical shape and row-major values of m.
func requireValues(tb testing.TB, m *matrix.Matrix, rows, cols int, want []float32) {
	tb.Helper()
	require.NotNil(tb, m)
	r, c := m.Shape()
	require.Equal(tb, [2]int{rows, cols}, [2]int{r, c}, "shape")
	require.Equal(tb, want, m.Values())
}

// requireScalar asserts that v is the scalar variant holding want.
func requireScalar(tb testing.TB, v matrix.Value, want float32) {
	tb.Helper()
	s, ok := v.Scalar()
	require.True(tb, ok, "expected a scalar, got %s", v)
	require.Equal(tb, want, s)
}

// requireMatrix asserts that v is the matrix variant and returns it.
func requireMatrix(tb testing.TB, v matrix.Value) *matrix.Matrix {
	tb.Helper()
	m, ok := v.Matrix()
	require.True(tb, ok, "expected a matrix, got scalar %s", v)

	return m
}
