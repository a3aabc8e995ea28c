package dcscacc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/leaf"
	"github.com/lvlath-labs/quadmat/semiring"
)

func buildLeaf(t *testing.T, shape index.Shape, tuples []index.Tuple[float64]) *leaf.DCSC[float64] {
	t.Helper()
	b := leaf.NewBuilder[float64](shape, config.New())
	for _, tu := range tuples {
		require.NoError(t, b.Add(tu.Row, tu.Col, tu.Value))
	}

	return b.Finish()
}

func collectTuples(l *leaf.DCSC[float64]) []index.Tuple[float64] {
	var out []index.Tuple[float64]
	for tu := range l.Tuples() {
		out = append(out, tu)
	}

	return out
}

func TestMergeEmpty(t *testing.T) {
	shape := index.Shape{Nrows: 4, Ncols: 4}
	out := Merge[float64](nil, shape, semiring.PlusTimes(), config.New())
	require.Equal(t, index.BlockNnn(0), out.NNZ())
}

func TestMergeSingleReturnedDirectly(t *testing.T) {
	shape := index.Shape{Nrows: 4, Ncols: 4}
	in := buildLeaf(t, shape, []index.Tuple[float64]{{Row: 1, Col: 2, Value: 5}})
	out := Merge[float64]([]*leaf.DCSC[float64]{in}, shape, semiring.PlusTimes(), config.New())
	require.Same(t, in, out, "Merge with one non-empty child should return it unchanged")
}

func TestMergeSumsDuplicates(t *testing.T) {
	shape := index.Shape{Nrows: 4, Ncols: 4}
	a := buildLeaf(t, shape, []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 2, Value: 2},
	})
	b := buildLeaf(t, shape, []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 10},
		{Row: 2, Col: 1, Value: 3},
	})
	out := Merge[float64]([]*leaf.DCSC[float64]{a, b}, shape, semiring.PlusTimes(), config.New())

	require.Equal(t, []index.Tuple[float64]{
		{Row: 0, Col: 0, Value: 11},
		{Row: 2, Col: 1, Value: 3},
		{Row: 1, Col: 2, Value: 2},
	}, collectTuples(out))
}

func TestMergeAscendingColumns(t *testing.T) {
	shape := index.Shape{Nrows: 8, Ncols: 8}
	a := buildLeaf(t, shape, []index.Tuple[float64]{{Row: 0, Col: 5, Value: 1}, {Row: 1, Col: 7, Value: 1}})
	b := buildLeaf(t, shape, []index.Tuple[float64]{{Row: 2, Col: 0, Value: 1}, {Row: 3, Col: 5, Value: 1}})
	c := buildLeaf(t, shape, []index.Tuple[float64]{{Row: 4, Col: 3, Value: 1}})

	out := Merge[float64]([]*leaf.DCSC[float64]{a, b, c}, shape, semiring.PlusTimes(), config.New())
	var prev index.Index = -1
	for i := 0; i < out.NumColumns(); i++ {
		col := out.ColumnAt(i).Col
		require.Greater(t, col, prev, "columns must come out ascending")
		prev = col
	}
	require.Equal(t, index.BlockNnn(5), out.NNZ())
}
