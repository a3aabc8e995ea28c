package matrix

import (
	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
)

// Identity returns the n x n identity matrix, i.e. a matrix whose only
// nonzero entries are (i, i, one) for i in [0, n).
func Identity[T any](n index.Index, one T, cfg config.Config) (Matrix[T], error) {
	tuples := make([]index.Tuple[T], n)
	for i := index.Index(0); i < n; i++ {
		tuples[i] = index.Tuple[T]{Row: i, Col: i, Value: one}
	}

	return New(index.Shape{Nrows: n, Ncols: n}, tuples, cfg)
}

// FullOnes returns the dense nrows x ncols matrix whose every entry is
// value. Every cell is materialized as an explicit tuple: this is meant
// for small shapes used as test fixtures, not as a way to represent a
// large dense matrix.
func FullOnes[T any](shape index.Shape, value T, cfg config.Config) (Matrix[T], error) {
	if !shape.Valid() {
		return Matrix[T]{}, ErrBadShape
	}

	tuples := make([]index.Tuple[T], 0, int64(shape.Nrows)*int64(shape.Ncols))
	for row := index.Index(0); row < shape.Nrows; row++ {
		for col := index.Index(0); col < shape.Ncols; col++ {
			tuples = append(tuples, index.Tuple[T]{Row: row, Col: col, Value: value})
		}
	}

	return New(shape, tuples, cfg)
}

// kepnerGilbertCoords are the 12 (row, col) pairs of the canonical 7x7
// Kepner-Gilbert directed-graph adjacency matrix.
var kepnerGilbertCoords = [][2]index.Index{
	{1, 0}, {3, 0}, {4, 1}, {6, 1}, {5, 2}, {0, 3},
	{2, 3}, {5, 4}, {2, 5}, {2, 6}, {3, 6}, {4, 6},
}

// KepnerGilbert returns the canonical 7x7 Kepner-Gilbert test matrix,
// with every one of its 12 entries set to one.
func KepnerGilbert[T any](one T, cfg config.Config) (Matrix[T], error) {
	tuples := make([]index.Tuple[T], len(kepnerGilbertCoords))
	for i, c := range kepnerGilbertCoords {
		tuples[i] = index.Tuple[T]{Row: c[0], Col: c[1], Value: one}
	}

	return New(index.Shape{Nrows: 7, Ncols: 7}, tuples, cfg)
}
