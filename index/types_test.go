package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafWidthFor(t *testing.T) {
	cases := []struct {
		dim  Index
		want IndexWidth
	}{
		{0, Width16},
		{1, Width16},
		{32767, Width16},
		{32768, Width32},
		{1 << 30, Width32},
		{maxInt32, Width32},
		{maxInt32 + 1, Width64},
		{1 << 40, Width64},
	}
	for _, c := range cases {
		require.Equal(t, c.want, LeafWidthFor(c.dim), "LeafWidthFor(%d)", c.dim)
	}
}

func TestShapeValidAndDim(t *testing.T) {
	require.False(t, Shape{Nrows: 0, Ncols: 5}.Valid(), "zero rows should be invalid")
	require.True(t, Shape{Nrows: 3, Ncols: 5}.Valid())
	require.Equal(t, Index(5), Shape{Nrows: 3, Ncols: 5}.Dim())
}

func TestOffsetAdd(t *testing.T) {
	base := Offset{RowOffset: 4, ColOffset: 8}
	child := Offset{RowOffset: 2, ColOffset: 1}
	require.Equal(t, Offset{RowOffset: 6, ColOffset: 9}, base.Add(child))
}
