package matrix

import (
	"iter"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/construct"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// Matrix owns a single block container: a root qtree.Node and the shape
// it spans. The zero Matrix is not valid; construct one with New,
// Identity, FullOnes, KepnerGilbert, or Load.
type Matrix[T any] struct {
	shape index.Shape
	root  qtree.Node[T]
	cfg   config.Config
}

// New builds a Matrix from an unordered set of tuples, subdividing into a
// balanced quadtree. Duplicate (row, col) pairs are rejected by the
// underlying leaf builder, matching construct.Build's contract.
func New[T any](shape index.Shape, tuples []index.Tuple[T], cfg config.Config) (Matrix[T], error) {
	if !shape.Valid() {
		return Matrix[T]{}, ErrBadShape
	}

	root, err := construct.Build(tuples, shape, cfg)
	if err != nil {
		return Matrix[T]{}, err
	}

	return Matrix[T]{shape: shape, root: root, cfg: cfg}, nil
}

// Shape returns the matrix's row and column extent.
func (m Matrix[T]) Shape() index.Shape { return m.shape }

// IsEmpty reports whether the matrix holds zero nonzero entries.
func (m Matrix[T]) IsEmpty() bool { return m.root.IsEmpty() }

// NNZ counts the matrix's nonzero entries by walking the tree. This is
// O(nnz), not O(1): no node caches a running count; aggregates are
// derived on demand.
func (m Matrix[T]) NNZ() int64 {
	var n int64
	for range m.Tuples() {
		n++
	}

	return n
}

// Tuples yields every (row, col, value) entry of the matrix, in the
// NW/NE/SW/SE depth-first order qtree.Tuples walks its tree in.
func (m Matrix[T]) Tuples() iter.Seq[index.Tuple[T]] {
	return qtree.Tuples(m.root, index.Offset{})
}
