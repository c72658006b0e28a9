// SPDX-License-Identifier: MIT

package index_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/index"
)

var testShapes = [][2]int{{1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 2}, {4, 4}, {5, 7}}

func TestLinearizeScalar_Untransposed(t *testing.T) {
	off, err := index.LinearizeScalar(2, 3, false, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, off)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = index.LinearizeScalar(2, 3, false, ij[0], ij[1])
		require.ErrorIs(t, err, index.ErrIndexOutOfBounds, "(%d,%d)", ij[0], ij[1])
	}
}

func TestLinearizeScalar_Transposed(t *testing.T) {
	// Physical (2,3) seen as logical (3,2).
	off, err := index.LinearizeScalar(2, 3, true, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 5, off)

	_, err = index.LinearizeScalar(2, 3, true, 1, 2)
	require.ErrorIs(t, err, index.ErrIndexOutOfBounds)
	_, err = index.LinearizeScalar(2, 3, true, 3, 0)
	require.ErrorIs(t, err, index.ErrIndexOutOfBounds)
}

func TestLinearizeScalar_Bijection(t *testing.T) {
	for _, sh := range testShapes {
		for _, tr := range []bool{false, true} {
			r, c := sh[0], sh[1]
			if tr {
				r, c = c, r
			}
			seen := make([]bool, sh[0]*sh[1])
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					off, err := index.LinearizeScalar(sh[0], sh[1], tr, i, j)
					require.NoError(t, err)
					require.False(t, seen[off], "shape %v transposed=%v offset %d hit twice", sh, tr, off)
					seen[off] = true
				}
			}
			require.NotContains(t, seen, false)
		}
	}
}

func TestLinearizeScalar_TransposeConsistency(t *testing.T) {
	for _, sh := range testShapes {
		rows, cols := sh[0], sh[1]
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				a, err := index.LinearizeScalar(rows, cols, false, i, j)
				require.NoError(t, err)
				// The transposed view of the same buffer addresses it with swapped coordinates.
				b, err := index.LinearizeScalar(rows, cols, true, j, i)
				require.NoError(t, err)
				require.Equal(t, a, b)
				if rows == cols {
					c, err := index.LinearizeScalar(cols, rows, true, j, i)
					require.NoError(t, err)
					require.Equal(t, a, c)
				}
			}
		}
	}
}

func TestSubShape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		transposed bool
		idx        index.Index
		wantR      int
		wantC      int
	}{
		{"slice-rows", 3, 4, false, index.Index{index.RangeTo(2), index.All()}, 2, 4},
		{"scalar-scalar", 3, 4, false, index.At(1, 1), 1, 1},
		{"scalar-list", 3, 4, false, index.Index{index.Elem(0), index.Elems(0, 2, 2)}, 1, 3},
		{"list-range", 3, 4, false, index.Index{index.Elems(2, 0), index.Range(1)}, 2, 3},
		{"range-scalar-transposed", 3, 4, true, index.Index{index.All(), index.Elem(0)}, 4, 1},
		{"clipped", 3, 4, false, index.Index{index.Range(-10, 10), index.Range(5)}, 3, 0},
		{"reversed-stride", 3, 4, false, index.Index{index.Reversed(), index.All().Stride(3)}, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, err := index.SubShape(tt.rows, tt.cols, tt.transposed, tt.idx)
			require.NoError(t, err)
			require.Equal(t, tt.wantR, r)
			require.Equal(t, tt.wantC, c)
		})
	}
}

func TestSubShape_ZeroStep(t *testing.T) {
	_, _, err := index.SubShape(3, 3, false, index.Index{index.All().Stride(0), index.All()})
	require.ErrorIs(t, err, index.ErrInvalidArgument)
}

func TestLinearize_RowMajorSlice(t *testing.T) {
	offs, err := index.Linearize(3, 4, false, index.Index{index.RangeTo(2), index.All()})
	require.NoError(t, err)

	var manual []int
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			manual = append(manual, i*4+j)
		}
	}
	require.Equal(t, manual, offs)
}

func TestLinearize_AllKindPairs(t *testing.T) {
	// Physical 3x4 buffer holding 0..11; every pair of selector kinds.
	sels := map[string]index.Selector{
		"scalar": index.Elem(1),
		"list":   index.Elems(2, 0),
		"range":  index.Range(0, 3).Stride(2),
	}
	for n0, s0 := range sels {
		for n1, s1 := range sels {
			t.Run(n0+"x"+n1, func(t *testing.T) {
				idx := index.Index{s0, s1}
				offs, err := index.Linearize(3, 4, false, idx)
				require.NoError(t, err)
				is, err := index.Resolve(s0, 3)
				require.NoError(t, err)
				js, err := index.Resolve(s1, 4)
				require.NoError(t, err)
				r, c, err := index.SubShape(3, 4, false, idx)
				require.NoError(t, err)
				require.Len(t, offs, r*c)
				k := 0
				for _, i := range is {
					for _, j := range js {
						require.Equal(t, i*4+j, offs[k])
						k++
					}
				}
			})
		}
	}
}

func TestLinearize_ListByList(t *testing.T) {
	offs, err := index.Linearize(3, 3, false, index.Index{index.Elems(2, 0), index.Elems(1, 2)})
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 1, 2}, offs)
}

func TestLinearize_Transposed(t *testing.T) {
	// Physical (2,3) = [[0 1 2] [3 4 5]], logical (3,2) = [[0 3] [1 4] [2 5]].
	offs, err := index.Linearize(2, 3, true, index.Index{index.Elem(1), index.All()})
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, offs)

	offs, err = index.Linearize(2, 3, true, index.Index{index.All(), index.Elem(1)})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, offs)
}

func TestLinearize_OutOfBoundsNoPartialResult(t *testing.T) {
	offs, err := index.Linearize(2, 2, false, index.Index{index.Elems(0, 5), index.All()})
	require.ErrorIs(t, err, index.ErrIndexOutOfBounds)
	require.Nil(t, offs)

	_, err = index.Linearize(2, 2, false, index.At(-1, 0))
	require.ErrorIs(t, err, index.ErrIndexOutOfBounds)
}

func TestComplete(t *testing.T) {
	idx, err := index.Complete(index.Elem(3))
	require.NoError(t, err)
	require.True(t, idx[0].Equal(index.Elem(3)))
	require.True(t, idx[1].Equal(index.All()))

	idx, err = index.Complete(index.Elems(1, 2), index.Range(1))
	require.NoError(t, err)
	require.Equal(t, "([1 2], 1:)", idx.String())

	_, err = index.Complete()
	require.ErrorIs(t, err, index.ErrIndexArity)
	_, err = index.Complete(index.All(), index.All(), index.All())
	require.ErrorIs(t, err, index.ErrIndexArity)
}

func TestSelectAll_MatchesLinearize(t *testing.T) {
	for _, sh := range testShapes {
		for _, tr := range []bool{false, true} {
			want, err := index.Linearize(sh[0], sh[1], tr, index.Index{index.All(), index.All()})
			require.NoError(t, err)
			require.Equal(t, want, index.SelectAll(sh[0], sh[1], tr), "shape %v transposed=%v", sh, tr)
		}
	}
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, index.SelectAll(2, 3, true))

	sorted := slices.Clone(index.SelectAll(5, 7, true))
	slices.Sort(sorted)
	require.Equal(t, index.SelectAll(5, 7, false), sorted)
}
