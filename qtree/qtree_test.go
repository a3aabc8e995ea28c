package qtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/index"
)

func TestNewInnerRejectsNonPowerOfTwo(t *testing.T) {
	var children [4]Node[float64]
	_, err := NewInner(children, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewInner(children, 0)
	require.ErrorIs(t, err, ErrInvalidArgument, "zero bit must be rejected")
	_, err = NewInner(children, 8)
	require.NoError(t, err, "8 is a valid power of two")
}

func TestChildArithmeticInvalidPosition(t *testing.T) {
	var children [4]Node[float64]
	in, err := NewInner(children, 4)
	require.NoError(t, err)
	_, err = in.Child(Position(99))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestChildShapeAndOffset(t *testing.T) {
	parent := index.Shape{Nrows: 10, Ncols: 10}
	bit := index.Index(8)

	require.Equal(t, index.Shape{Nrows: 8, Ncols: 8}, ChildShape(parent, bit, NW))
	require.Equal(t, index.Shape{Nrows: 8, Ncols: 2}, ChildShape(parent, bit, NE))
	require.Equal(t, index.Shape{Nrows: 2, Ncols: 8}, ChildShape(parent, bit, SW))
	require.Equal(t, index.Shape{Nrows: 2, Ncols: 2}, ChildShape(parent, bit, SE))

	parentOff := index.Offset{RowOffset: 100, ColOffset: 200}
	require.Equal(t, parentOff, ChildOffset(parentOff, bit, NW))
	require.Equal(t, index.Offset{RowOffset: 100, ColOffset: 208}, ChildOffset(parentOff, bit, NE))
	require.Equal(t, index.Offset{RowOffset: 108, ColOffset: 200}, ChildOffset(parentOff, bit, SW))
	require.Equal(t, index.Offset{RowOffset: 108, ColOffset: 208}, ChildOffset(parentOff, bit, SE))
}

func TestChildBitClampsAtOne(t *testing.T) {
	var children [4]Node[float64]
	in, err := NewInner(children, 1)
	require.NoError(t, err)
	require.Equal(t, index.Index(1), in.ChildBit())

	in2, err := NewInner(children, 4)
	require.NoError(t, err)
	require.Equal(t, index.Index(2), in2.ChildBit())
}

func TestRootDiscriminatingBit(t *testing.T) {
	cases := []struct {
		dim  index.Index
		want index.Index
	}{
		{1, 2},
		{7, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 32},
	}
	for _, c := range cases {
		got := RootDiscriminatingBit(index.Shape{Nrows: c.dim, Ncols: c.dim})
		require.Equal(t, c.want, got, "RootDiscriminatingBit(%d)", c.dim)
	}
}

func TestNodeVariants(t *testing.T) {
	e := Empty[float64]()
	require.Equal(t, KindEmpty, e.Kind())
	require.True(t, e.IsEmpty())

	f := Future[float64]()
	require.Equal(t, KindFuture, f.Kind())

	var children [4]Node[float64]
	in, err := NewInner(children, 4)
	require.NoError(t, err)
	n := FromInner(in)
	require.Equal(t, KindInner, n.Kind())
	got, ok := n.AsInner()
	require.True(t, ok)
	require.Equal(t, index.Index(4), got.DiscriminatingBit())
}

func TestAllChildrenEmpty(t *testing.T) {
	var children [4]Node[float64]
	in, _ := NewInner(children, 4)
	require.True(t, in.AllChildrenEmpty())

	children[NW] = Future[float64]()
	in2, _ := NewInner(children, 4)
	require.False(t, in2.AllChildrenEmpty(), "a non-empty child should report false")
}
