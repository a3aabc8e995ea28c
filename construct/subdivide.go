package construct

import (
	"sort"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/leaf"
	"github.com/lvlath-labs/quadmat/qtree"
)

// Build constructs a balanced quadtree over shape from tuples.
// Tuples need not be pre-sorted or deduplicated; duplicate (row, col)
// pairs surface as an error from the underlying leaf builder: only the
// multiply path folds duplicates, via the sparse accumulator, never
// construction.
func Build[T any](tuples []index.Tuple[T], shape index.Shape, cfg config.Config) (qtree.Node[T], error) {
	tr := NewTriples(tuples)
	bit := discriminatingBitFor(shape.Dim())

	return subdivide(tr, 0, tr.Len(), shape, index.Offset{}, bit, cfg)
}

// discriminatingBitFor returns the largest power of two <= dim-1, used
// for the top-level call. Every deeper recursion derives its bit by
// halving the parent's (clamped at 1), not by re-deriving this formula
// from the child's own shape.
func discriminatingBitFor(dim index.Index) index.Index {
	if dim <= 1 {
		return 1
	}
	bit := index.Index(1)
	for bit*2 <= dim-1 {
		bit *= 2
	}

	return bit
}

// childBit halves bit for a child inner block, clamped at 1: a child's
// discriminating bit, if it is itself inner, is d >> 1.
func childBit(bit index.Index) index.Index {
	if bit <= 1 {
		return 1
	}

	return bit >> 1
}

// subdivide builds the subtree over [lo, hi) of tr's permutation, which
// covers shape at offset, using bit as this level's discriminating bit.
func subdivide[T any](tr *Triples[T], lo, hi int, shape index.Shape, offset index.Offset, bit index.Index, cfg config.Config) (qtree.Node[T], error) {
	n := hi - lo
	if n == 0 {
		return qtree.Empty[T](), nil
	}

	// A single-cell region can never be split further, so it becomes a
	// leaf no matter how low the threshold is set.
	if n < cfg.LeafSplitThreshold || shape.Dim() <= 1 {
		return buildLeaf(tr, lo, hi, shape, offset, cfg)
	}

	// Column partition on col-offset < bit splits west (NW+SW) from east
	// (NE+SE); then each half is row-partitioned on row-offset < bit to
	// split north from south.
	mid := partition(tr.perm, lo, hi, func(p int) bool { return tr.cols[p]-offset.ColOffset < bit })
	nwEnd := partition(tr.perm, lo, mid, func(p int) bool { return tr.rows[p]-offset.RowOffset < bit })
	neEnd := partition(tr.perm, mid, hi, func(p int) bool { return tr.rows[p]-offset.RowOffset < bit })

	var children [4]qtree.Node[T]
	ranges := [4][2]int{
		qtree.NW: {lo, nwEnd},
		qtree.SW: {nwEnd, mid},
		qtree.NE: {mid, neEnd},
		qtree.SE: {neEnd, hi},
	}
	for _, pos := range qtree.Positions {
		r := ranges[pos]
		childShape := qtree.ChildShape(shape, bit, pos)
		childOffset := qtree.ChildOffset(offset, bit, pos)
		child, err := subdivide(tr, r[0], r[1], childShape, childOffset, childBit(bit), cfg)
		if err != nil {
			return qtree.Node[T]{}, err
		}
		children[pos] = child
	}

	in, err := qtree.NewInner(children, bit)
	if err != nil {
		return qtree.Node[T]{}, err
	}

	return qtree.FromInner(in), nil
}

// buildLeaf sorts tr.perm[lo:hi] by (col, row, input position) and builds
// a single DCSC leaf from it, subtracting offset from every coordinate.
func buildLeaf[T any](tr *Triples[T], lo, hi int, shape index.Shape, offset index.Offset, cfg config.Config) (qtree.Node[T], error) {
	sub := tr.perm[lo:hi]
	sort.Slice(sub, func(i, j int) bool {
		pi, pj := sub[i], sub[j]
		ci, cj := tr.cols[pi], tr.cols[pj]
		if ci != cj {
			return ci < cj
		}
		ri, rj := tr.rows[pi], tr.rows[pj]
		if ri != rj {
			return ri < rj
		}

		return pi < pj
	})

	b := leaf.NewBuilder[T](shape, cfg)
	for _, p := range sub {
		if err := b.Add(tr.rows[p]-offset.RowOffset, tr.cols[p]-offset.ColOffset, tr.values[p]); err != nil {
			return qtree.Node[T]{}, err
		}
	}

	return qtree.FromLeaf[T](b.Finish()), nil
}
