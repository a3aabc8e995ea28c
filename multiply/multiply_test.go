package multiply

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/construct"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
	"github.com/lvlath-labs/quadmat/semiring"
)

// aTuples/bTuples describe A (2x3) and B (3x2) such that A*B has exactly
// two nonzero entries: (0,0,7) and (1,1,6).
func aTuples() []index.Tuple[float64] {
	return []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: 2},
		{Row: 1, Col: 1, Value: 3},
	}
}

func bTuples() []index.Tuple[float64] {
	return []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
		{Row: 2, Col: 0, Value: 3},
	}
}

func collectSorted[T any](n qtree.Node[T]) []index.Tuple[T] {
	var out []index.Tuple[T]
	_ = qtree.WalkErr(n, index.Offset{}, func(tu index.Tuple[T]) bool {
		out = append(out, tu)

		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

func runMultiply(t *testing.T, cfg config.Config) (qtree.Node[float64], index.Shape) {
	t.Helper()
	shapeA := index.Shape{Nrows: 2, Ncols: 3}
	shapeB := index.Shape{Nrows: 3, Ncols: 2}

	a, err := construct.Build(aTuples(), shapeA, cfg)
	require.NoError(t, err)
	b, err := construct.Build(bTuples(), shapeB, cfg)
	require.NoError(t, err)

	c, cShape, err := Multiply(a, b, shapeA, shapeB, semiring.PlusTimes(), cfg)
	require.NoError(t, err)

	return c, cShape
}

func checkProduct(t *testing.T, c qtree.Node[float64], cShape index.Shape) {
	t.Helper()
	require.Equal(t, index.Shape{Nrows: 2, Ncols: 2}, cShape)
	require.Equal(t, []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 7},
		{Row: 1, Col: 1, Value: 6},
	}, collectSorted(c))
}

// TestMultiplyLeafPairDirect exercises the leaf×leaf kernel directly: both
// operands stay single leaves (well under the default split threshold), so
// the planner never recurses.
func TestMultiplyLeafPairDirect(t *testing.T) {
	cfg := config.New()
	c, cShape := runMultiply(t, cfg)
	require.Equal(t, qtree.KindLeaf, c.Kind())
	checkProduct(t, c, cShape)
}

// TestMultiplyRecursesThroughInnerBlocks forces both operands into real
// quadtree structure (threshold 1), exercising the recursive planner and
// the task queue's nested enqueue path.
func TestMultiplyRecursesThroughInnerBlocks(t *testing.T) {
	cfg := config.New(config.WithLeafSplitThreshold(1))
	c, cShape := runMultiply(t, cfg)
	checkProduct(t, c, cShape)
}

// TestMultiplyDimensionMismatch checks that a genuine dimension mismatch
// between the operands surfaces as ErrNodeTypeMismatch.
func TestMultiplyDimensionMismatch(t *testing.T) {
	cfg := config.New()
	shapeA := index.Shape{Nrows: 2, Ncols: 3}
	shapeB := index.Shape{Nrows: 4, Ncols: 2} // 4 != 3

	a, err := construct.Build(aTuples(), shapeA, cfg)
	require.NoError(t, err)
	b, err := construct.Build(bTuples(), shapeB, cfg)
	require.NoError(t, err)

	_, _, err = Multiply(a, b, shapeA, shapeB, semiring.PlusTimes(), cfg)
	require.ErrorIs(t, err, qtree.ErrNodeTypeMismatch)
}

// TestMultiplyEmptyOperandYieldsEmptyProduct checks that an all-empty
// operand collapses straight to the empty alternative.
func TestMultiplyEmptyOperandYieldsEmptyProduct(t *testing.T) {
	cfg := config.New()
	shapeA := index.Shape{Nrows: 2, Ncols: 3}
	shapeB := index.Shape{Nrows: 3, Ncols: 2}

	a, err := construct.Build[float64](nil, shapeA, cfg)
	require.NoError(t, err)
	b, err := construct.Build(bTuples(), shapeB, cfg)
	require.NoError(t, err)

	c, cShape, err := Multiply(a, b, shapeA, shapeB, semiring.PlusTimes(), cfg)
	require.NoError(t, err)
	require.True(t, c.IsEmpty())
	require.Equal(t, index.Shape{Nrows: 2, Ncols: 2}, cShape)
}

// TestMultiplyShortFatTimesTallSkinny exercises the "don't subdivide the
// destination" rule: the operands recurse, but the 1x1 result must land in
// a single leaf rather than a degenerate inner block.
func TestMultiplyShortFatTimesTallSkinny(t *testing.T) {
	cfg := config.New(config.WithLeafSplitThreshold(4))
	shapeA := index.Shape{Nrows: 1, Ncols: 16}
	shapeB := index.Shape{Nrows: 16, Ncols: 1}

	var aT, bT []index.Tuple[float64]
	for i := index.Index(0); i < 16; i++ {
		aT = append(aT, index.Tuple[float64]{Row: 0, Col: i, Value: 1})
		bT = append(bT, index.Tuple[float64]{Row: i, Col: 0, Value: 1})
	}

	a, err := construct.Build(aT, shapeA, cfg)
	require.NoError(t, err)
	require.Equal(t, qtree.KindInner, a.Kind(), "16 tuples over threshold 4 must subdivide")
	b, err := construct.Build(bT, shapeB, cfg)
	require.NoError(t, err)

	c, cShape, err := Multiply(a, b, shapeA, shapeB, semiring.PlusTimes(), cfg)
	require.NoError(t, err)
	require.Equal(t, index.Shape{Nrows: 1, Ncols: 1}, cShape)
	require.Equal(t, qtree.KindLeaf, c.Kind(), "a 1x1 result must not subdivide")
	require.Equal(t, []index.Tuple[float64]{{Row: 0, Col: 0, Value: 16}}, collectSorted(c))
}

// TestMultiplyFutureOperandIsNotImplemented checks that a future block
// encountered on an operand surfaces ErrNotImplemented end to end, rather
// than only in the unit-level Pair.status computation it's derived from.
func TestMultiplyFutureOperandIsNotImplemented(t *testing.T) {
	cfg := config.New()
	shapeA := index.Shape{Nrows: 2, Ncols: 3}
	shapeB := index.Shape{Nrows: 3, Ncols: 2}

	a := qtree.Future[float64]()
	b, err := construct.Build(bTuples(), shapeB, cfg)
	require.NoError(t, err)

	_, _, err = Multiply(a, b, shapeA, shapeB, semiring.PlusTimes(), cfg)
	require.ErrorIs(t, err, qtree.ErrNotImplemented)
}
