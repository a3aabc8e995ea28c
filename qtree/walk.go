package qtree

import (
	"iter"

	"github.com/lvlath-labs/quadmat/index"
)

// WalkErr walks the subtree rooted at n, translating every leaf's local
// coordinates by offset so visit receives matrix-global tuples. Inner
// blocks are visited NW, NE, SW, SE. It returns ErrNotImplemented if a
// future node is encountered; visit's own return value works like an
// iter.Seq yield func — returning false stops the walk early with a nil
// error.
func WalkErr[T any](n Node[T], offset index.Offset, visit func(index.Tuple[T]) bool) error {
	switch n.Kind() {
	case KindEmpty:
		return nil
	case KindFuture:
		return ErrNotImplemented
	case KindLeaf:
		l, _ := n.AsLeaf()
		for tu := range l.Tuples() {
			if !visit(index.Tuple[T]{
				Row:   tu.Row + offset.RowOffset,
				Col:   tu.Col + offset.ColOffset,
				Value: tu.Value,
			}) {
				return nil
			}
		}

		return nil
	case KindInner:
		in, _ := n.AsInner()
		for _, pos := range Positions {
			child, _ := in.Child(pos)
			childOffset := ChildOffset(offset, in.DiscriminatingBit(), pos)
			if err := WalkErr(child, childOffset, visit); err != nil {
				return err
			}
		}

		return nil
	default:
		return nil
	}
}

// Tuples walks the subtree rooted at n like WalkErr, yielding
// matrix-global tuples as an iter.Seq. A future node silently truncates
// the sequence; callers on a fallible path (e.g. multiply, mmio) should
// use WalkErr directly instead.
func Tuples[T any](n Node[T], offset index.Offset) iter.Seq[index.Tuple[T]] {
	return func(yield func(index.Tuple[T]) bool) {
		_ = WalkErr(n, offset, yield)
	}
}
