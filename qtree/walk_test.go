package qtree

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/index"
)

type fakeLeaf struct {
	shape  index.Shape
	tuples []index.Tuple[float64]
}

func (f *fakeLeaf) Shape() index.Shape      { return f.shape }
func (f *fakeLeaf) Width() index.IndexWidth { return index.LeafWidthFor(f.shape.Dim()) }
func (f *fakeLeaf) NNZ() index.BlockNnn     { return index.BlockNnn(len(f.tuples)) }
func (f *fakeLeaf) NumColumns() int         { return 0 }
func (f *fakeLeaf) ColumnAt(int) ColumnRef[float64] {
	return ColumnRef[float64]{}
}
func (f *fakeLeaf) GetColumn(index.Index) (ColumnRef[float64], bool) {
	return ColumnRef[float64]{}, false
}
func (f *fakeLeaf) ColumnLowerBound(index.Index) (ColumnRef[float64], bool) {
	return ColumnRef[float64]{}, false
}
func (f *fakeLeaf) Tuples() iter.Seq[index.Tuple[float64]] {
	return func(yield func(index.Tuple[float64]) bool) {
		for _, tu := range f.tuples {
			if !yield(tu) {
				return
			}
		}
	}
}

func TestWalkErrEmptyYieldsNothing(t *testing.T) {
	var count int
	err := WalkErr(Empty[float64](), index.Offset{}, func(index.Tuple[float64]) bool {
		count++

		return true
	})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestWalkErrFuturePropagates(t *testing.T) {
	err := WalkErr(Future[float64](), index.Offset{}, func(index.Tuple[float64]) bool { return true })
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestWalkErrInnerTranslatesOffsets(t *testing.T) {
	nw := FromLeaf[float64](&fakeLeaf{shape: index.Shape{Nrows: 4, Ncols: 4}, tuples: []index.Tuple[float64]{{Row: 1, Col: 1, Value: 9}}})
	se := FromLeaf[float64](&fakeLeaf{shape: index.Shape{Nrows: 4, Ncols: 4}, tuples: []index.Tuple[float64]{{Row: 0, Col: 0, Value: 7}}})
	in, err := NewInner([4]Node[float64]{NW: nw, SE: se}, 4)
	require.NoError(t, err)

	var got []index.Tuple[float64]
	require.NoError(t, WalkErr(FromInner(in), index.Offset{}, func(tu index.Tuple[float64]) bool {
		got = append(got, tu)

		return true
	}))

	require.Equal(t, []index.Tuple[float64]{
		{Row: 1, Col: 1, Value: 9},
		{Row: 4, Col: 4, Value: 7},
	}, got)
}
