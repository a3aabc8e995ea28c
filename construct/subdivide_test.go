package construct

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// kepnerGilbert returns the canonical 7x7 test matrix's 12 tuples.
func kepnerGilbert() []index.Tuple[float64] {
	coords := [][2]index.Index{
		{1, 0}, {3, 0}, {4, 1}, {6, 1}, {5, 2}, {0, 3},
		{2, 3}, {5, 4}, {2, 5}, {2, 6}, {3, 6}, {4, 6},
	}
	out := make([]index.Tuple[float64], len(coords))
	for i, c := range coords {
		out[i] = index.Tuple[float64]{Row: c[0], Col: c[1], Value: 1.0}
	}

	return out
}

func collect[T any](n qtree.Node[T]) []index.Tuple[T] {
	var out []index.Tuple[T]
	for tu := range qtree.Tuples(n, index.Offset{}) {
		out = append(out, tu)
	}

	return out
}

func sortTuples(ts []index.Tuple[float64]) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Col != ts[j].Col {
			return ts[i].Col < ts[j].Col
		}

		return ts[i].Row < ts[j].Row
	})
}

func requireSameTuples(t *testing.T, want, got []index.Tuple[float64]) {
	t.Helper()
	wantSorted := append([]index.Tuple[float64]{}, want...)
	gotSorted := append([]index.Tuple[float64]{}, got...)
	sortTuples(wantSorted)
	sortTuples(gotSorted)
	require.Equal(t, wantSorted, gotSorted)
}

func TestBuildEmpty(t *testing.T) {
	n, err := Build[float64](nil, index.Shape{Nrows: 10, Ncols: 10}, config.New())
	require.NoError(t, err)
	require.True(t, n.IsEmpty())
}

func TestBuildSingleLeafBelowThreshold(t *testing.T) {
	tuples := kepnerGilbert()
	n, err := Build[float64](tuples, index.Shape{Nrows: 7, Ncols: 7}, config.New())
	require.NoError(t, err)
	require.Equal(t, qtree.KindLeaf, n.Kind(), "12 tuples under the default threshold should yield a single leaf")
	requireSameTuples(t, tuples, collect(n))
}

func TestBuildLeafSplitStress(t *testing.T) {
	tuples := kepnerGilbert()
	cfg := config.New(config.WithLeafSplitThreshold(4))
	n, err := Build[float64](tuples, index.Shape{Nrows: 7, Ncols: 7}, cfg)
	require.NoError(t, err)

	var checkLeaves func(qtree.Node[float64])
	checkLeaves = func(node qtree.Node[float64]) {
		switch node.Kind() {
		case qtree.KindLeaf:
			l, _ := node.AsLeaf()
			require.Greater(t, l.NNZ(), index.BlockNnn(0))
			require.LessOrEqual(t, l.NNZ(), index.BlockNnn(4))
		case qtree.KindInner:
			in, _ := node.AsInner()
			for _, pos := range qtree.Positions {
				child, _ := in.Child(pos)
				checkLeaves(child)
			}
		}
	}
	checkLeaves(n)

	requireSameTuples(t, tuples, collect(n))
}

func TestBuildOffsetSubdivision(t *testing.T) {
	tuples := []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 9, Col: 9, Value: 2},
		{Row: 0, Col: 9, Value: 3},
		{Row: 9, Col: 0, Value: 4},
	}
	cfg := config.New(config.WithLeafSplitThreshold(1))
	n, err := Build[float64](tuples, index.Shape{Nrows: 10, Ncols: 10}, cfg)
	require.NoError(t, err)
	requireSameTuples(t, tuples, collect(n))
}
