package multiply

import (
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
	"github.com/lvlath-labs/quadmat/shadow"
)

// quadrants resolves n's four quadrant children and the discriminating bit
// those children should carry. An inner node yields its real children and
// ChildBit(); a leaf is shadow-subdivided as though it were an
// inner block with discriminating bit bit, so the planner's recursion
// never needs to special-case which side actually has inner structure.
// n is never Empty or Future here — pruneEmpty and plan's dispatch order
// already rule those out before expandPair is reached.
func (e *engine[T]) quadrants(n qtree.Node[T], shape index.Shape, bit index.Index) ([4]qtree.Node[T], index.Index, error) {
	switch n.Kind() {
	case qtree.KindInner:
		in, _ := n.AsInner()
		var children [4]qtree.Node[T]
		for _, pos := range qtree.Positions {
			children[pos], _ = in.Child(pos)
		}

		return children, in.ChildBit(), nil
	case qtree.KindLeaf:
		l, _ := n.AsLeaf()
		in := shadow.Subdivide[T](l, shape, bit)
		var children [4]qtree.Node[T]
		for _, pos := range qtree.Positions {
			children[pos], _ = in.Child(pos)
		}

		return children, in.ChildBit(), nil
	default:
		return [4]qtree.Node[T]{}, 0, qtree.ErrNodeTypeMismatch
	}
}
