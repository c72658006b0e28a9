// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

// collect drains an iterator into row-major value slices (scalars as 1-slices).
func collect(tb testing.TB, it *matrix.Iterator) [][]float32 {
	tb.Helper()
	var out [][]float32
	for it.Next() {
		v := it.Value()
		if s, ok := v.Scalar(); ok {
			out = append(out, []float32{s})
			continue
		}
		out = append(out, requireMatrix(tb, v).Values())
	}
	require.NoError(tb, it.Err())

	return out
}

func TestIterator_Rows(t *testing.T) {
	m := mustSeq(t, 3, 2)
	require.Equal(t, [][]float32{{1, 2}, {3, 4}, {5, 6}}, collect(t, m.Iter()))
}

func TestIterator_SingleRowWalksColumns(t *testing.T) {
	m := mustSeq(t, 1, 3)
	it := m.Iter()
	var got []float32
	for it.Next() {
		v := it.Value()
		require.True(t, v.IsScalar())
		s, _ := v.Scalar()
		got = append(got, s)
	}
	require.Equal(t, []float32{1, 2, 3}, got)

	one := mustMatrix(t, 1, 1, []float32{42})
	require.Equal(t, [][]float32{{42}}, collect(t, one.Iter()))
}

func TestIterator_ColumnVectorYieldsScalars(t *testing.T) {
	m := mustMatrix(t, 3, 1, []float32{7, 8, 9})
	require.Equal(t, [][]float32{{7}, {8}, {9}}, collect(t, m.Iter()))
}

func TestIterator_Transposed(t *testing.T) {
	mt := mustSeq(t, 2, 3).T() // logical [[1 4] [2 5] [3 6]]
	require.Equal(t, [][]float32{{1, 4}, {2, 5}, {3, 6}}, collect(t, mt.Iter()))

	// A transposed single logical row walks its columns.
	col := mustMatrix(t, 3, 1, []float32{1, 2, 3}).T()
	require.Equal(t, [][]float32{{1}, {2}, {3}}, collect(t, col.Iter()))
}

func TestIterator_HoldsBufferReference(t *testing.T) {
	m := mustSeq(t, 2, 2)
	buf := matrix.BufferOf(m)
	it := m.Iter()
	require.EqualValues(t, 2, buf.Refs())

	m.Release()
	require.False(t, buf.Released())

	require.Equal(t, [][]float32{{1, 2}, {3, 4}}, collect(t, it))
	require.True(t, buf.Released(), "exhaustion drops the iterator's reference")
	require.False(t, it.Next())
}

func TestIterator_NilMatrix(t *testing.T) {
	var m *matrix.Matrix
	it := m.Iter()
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), matrix.ErrNilMatrix)
	it.Close()

	for range m.All() {
		t.Fatal("nil matrix yields nothing")
	}
}

func TestIterator_CloseIsIdempotent(t *testing.T) {
	m := mustSeq(t, 3, 3)
	it := m.Iter()
	require.True(t, it.Next())
	it.Close()
	it.Close()
	require.False(t, it.Next())
	require.NoError(t, it.Err())
	require.EqualValues(t, 1, matrix.RefsOf(m))
}

func TestAll_RangeOverFunc(t *testing.T) {
	m := mustSeq(t, 3, 2)
	var positions []int
	var rows [][]float32
	for k, v := range m.All() {
		positions = append(positions, k)
		rows = append(rows, requireMatrix(t, v).Values())
	}
	require.Equal(t, []int{0, 1, 2}, positions)
	require.Equal(t, [][]float32{{1, 2}, {3, 4}, {5, 6}}, rows)

	// Breaking early still releases the iterator's reference.
	for k := range m.All() {
		if k == 0 {
			break
		}
	}
	require.EqualValues(t, 1, matrix.RefsOf(m))
}
