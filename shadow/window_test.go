package shadow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/index"
)

func TestFullWindowEqualsBase(t *testing.T) {
	d := buildDCSC(t, index.Shape{Nrows: 8, Ncols: 8}, []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 3, Col: 2, Value: 2},
		{Row: 7, Col: 7, Value: 3},
	})

	w := New[float64](d, 0, d.Shape().Ncols, index.Offset{}, d.Shape())
	require.Equal(t, collectLeaf[float64](d), collectLeaf[float64](w),
		"an offset-free full-shape window must yield the base leaf's tuple sequence")
	require.Equal(t, d.NNZ(), w.NNZ())
}

func TestWindowRemapsCoordinates(t *testing.T) {
	d := buildDCSC(t, index.Shape{Nrows: 8, Ncols: 8}, []index.Tuple[float64]{
		{Row: 5, Col: 5, Value: 1},
		{Row: 1, Col: 6, Value: 3}, // above the row window, must be clipped
		{Row: 6, Col: 7, Value: 2},
	})

	w := New[float64](d, 4, 8, index.Offset{RowOffset: 4, ColOffset: 4}, index.Shape{Nrows: 4, Ncols: 4})
	require.Equal(t, []index.Tuple[float64]{
		{Row: 1, Col: 1, Value: 1},
		{Row: 2, Col: 3, Value: 2},
	}, collectLeaf[float64](w))
}

func TestWindowSkipsColumnsOutsideRowWindow(t *testing.T) {
	d := buildDCSC(t, index.Shape{Nrows: 8, Ncols: 8}, []index.Tuple[float64]{
		{Row: 0, Col: 1, Value: 1}, // col 1 has no rows in [4,7]
		{Row: 5, Col: 2, Value: 2},
	})

	w := New[float64](d, 0, 4, index.Offset{RowOffset: 4}, index.Shape{Nrows: 4, Ncols: 4})
	require.Equal(t, 1, w.NumColumns(), "a column with no rows in the window must be skipped")

	col, ok := w.GetColumn(2)
	require.True(t, ok)
	require.Equal(t, []index.Index{1}, col.Rows)
}

func TestNestedWindowReferencesBaseDirectly(t *testing.T) {
	d := buildDCSC(t, index.Shape{Nrows: 8, Ncols: 8}, []index.Tuple[float64]{
		{Row: 5, Col: 5, Value: 9},
	})

	outer := New[float64](d, 4, 8, index.Offset{RowOffset: 4, ColOffset: 4}, index.Shape{Nrows: 4, Ncols: 4})
	inner := New[float64](outer, 0, 2, index.Offset{RowOffset: 0, ColOffset: 0}, index.Shape{Nrows: 2, Ncols: 2})

	require.Same(t, d, inner.base, "a shadow of a shadow must reference the owning leaf, not an onion")
	require.Equal(t, []index.Tuple[float64]{{Row: 1, Col: 1, Value: 9}}, collectLeaf[float64](inner))
}

func TestWindowColumnLowerBound(t *testing.T) {
	d := buildDCSC(t, index.Shape{Nrows: 4, Ncols: 8}, []index.Tuple[float64]{
		{Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 6, Value: 2},
	})

	w := New[float64](d, 0, 8, index.Offset{}, d.Shape())
	col, ok := w.ColumnLowerBound(3)
	require.True(t, ok)
	require.Equal(t, index.Index(6), col.Col)

	_, ok = w.ColumnLowerBound(7)
	require.False(t, ok)
}
