package construct

import "github.com/lvlath-labs/quadmat/index"

// Triples is a transient, unsorted bag of (row, col, value) entries
// shared by every recursive call of Build: subdivide only narrows and
// partitions Triples.perm, never the row/col/value arrays themselves.
type Triples[T any] struct {
	rows   []index.Index
	cols   []index.Index
	values []T
	perm   []int
}

// NewTriples copies tuples into a fresh Triples block with an identity
// permutation.
func NewTriples[T any](tuples []index.Tuple[T]) *Triples[T] {
	n := len(tuples)
	tr := &Triples[T]{
		rows:   make([]index.Index, n),
		cols:   make([]index.Index, n),
		values: make([]T, n),
		perm:   make([]int, n),
	}
	for i, tu := range tuples {
		tr.rows[i] = tu.Row
		tr.cols[i] = tu.Col
		tr.values[i] = tu.Value
		tr.perm[i] = i
	}

	return tr
}

// Len returns the number of triples in the block.
func (tr *Triples[T]) Len() int { return len(tr.perm) }

// partition reorders perm[lo:hi] in place, Lomuto-style, so that every
// index p for which keep(p) holds comes before every index for which it
// doesn't, and returns the boundary position. The kept indices keep their
// relative order; the rejected ones may not.
func partition(perm []int, lo, hi int, keep func(p int) bool) int {
	i := lo
	for j := lo; j < hi; j++ {
		if keep(perm[j]) {
			perm[i], perm[j] = perm[j], perm[i]
			i++
		}
	}

	return i
}
