package spa

import (
	"github.com/google/btree"

	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/semiring"
)

// mapDegree is the B-tree branching factor used by Map. It is not
// performance-tuned; btree's own default examples use small degrees for
// in-memory ordered sets of this size.
const mapDegree = 32

// rowEntry is the item type stored in Map's backing B-tree, ordered by
// Row alone.
type rowEntry[T any] struct {
	Row   index.Index
	Value T
}

func lessRowEntry[T any](a, b rowEntry[T]) bool {
	return a.Row < b.Row
}

// Map is the ordered-map sparse accumulator, chosen over Dense
// for destination columns whose row dimension makes dense arrays
// wasteful. It is backed by a github.com/google/btree.BTreeG so that
// Gather walks rows in ascending order without a separate sort.
type Map[T any] struct {
	sr   semiring.Semiring[T]
	tree *btree.BTreeG[rowEntry[T]]
}

var _ Accumulator[float64] = (*Map[float64])(nil)

// NewMap constructs a Map accumulator. nrows is accepted for symmetry
// with NewDense's signature but is not otherwise consulted: the B-tree
// only ever holds touched rows.
func NewMap[T any](_ index.Index, sr semiring.Semiring[T]) *Map[T] {
	return &Map[T]{sr: sr, tree: btree.NewG(mapDegree, lessRowEntry[T])}
}

func (m *Map[T]) touch(r index.Index, v T) {
	if old, ok := m.tree.Get(rowEntry[T]{Row: r}); ok {
		m.tree.ReplaceOrInsert(rowEntry[T]{Row: r, Value: m.sr.Add(old.Value, v)})

		return
	}
	m.tree.ReplaceOrInsert(rowEntry[T]{Row: r, Value: v})
}

// Scatter implements Accumulator.
func (m *Map[T]) Scatter(rows []index.Index, values []T) {
	for i, r := range rows {
		m.touch(r, values[i])
	}
}

// ScatterWeighted implements Accumulator.
func (m *Map[T]) ScatterWeighted(rows []index.Index, values []T, beta T) {
	for i, r := range rows {
		m.touch(r, m.sr.Mul(values[i], beta))
	}
}

// Gather implements Accumulator, walking the B-tree in ascending row
// order; no separate sort is needed.
func (m *Map[T]) Gather(outRows *[]index.Index, outValues *[]T) {
	m.tree.Ascend(func(e rowEntry[T]) bool {
		*outRows = append(*outRows, e.Row)
		*outValues = append(*outValues, e.Value)

		return true
	})
}

// IsEmpty implements Accumulator.
func (m *Map[T]) IsEmpty() bool {
	return m.tree.Len() == 0
}

// Clear implements Accumulator. The tree's nodes are dropped rather than
// returned to btree's freelist; accumulator reuse across columns touches
// far fewer rows than it releases.
func (m *Map[T]) Clear() {
	m.tree.Clear(false)
}
