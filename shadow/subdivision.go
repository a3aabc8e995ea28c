package shadow

import (
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// Subdivide splits base — addressed by shape in base's own local
// coordinate space — into the four window-shadow quadrants an inner block
// with discriminating bit bit would have. The split is by column range
// only: NW/SW see base-local columns [0, bit), NE/SE see
// [bit, shape.Ncols); north/south separation
// falls entirely out of the resulting window's own row offset and shape,
// not out of anything this function does. A quadrant whose column range or
// resulting window ends up empty is left as the empty alternative rather
// than wrapping a degenerate zero-entry window.
func Subdivide[T any](base qtree.Leaf[T], shape index.Shape, bit index.Index) qtree.Inner[T] {
	var children [4]qtree.Node[T]
	for _, pos := range qtree.Positions {
		childShape := qtree.ChildShape(shape, bit, pos)
		if childShape.Nrows == 0 || childShape.Ncols == 0 {
			children[pos] = qtree.Empty[T]()

			continue
		}

		var colBegin, colEnd index.Index
		switch pos {
		case qtree.NW, qtree.SW:
			colBegin, colEnd = 0, bit
		case qtree.NE, qtree.SE:
			colBegin, colEnd = bit, shape.Ncols
		}
		if colBegin >= colEnd {
			children[pos] = qtree.Empty[T]()

			continue
		}

		childOffset := qtree.ChildOffset(index.Offset{}, bit, pos)
		w := New[T](base, colBegin, colEnd, childOffset, childShape)
		if w.NNZ() == 0 {
			children[pos] = qtree.Empty[T]()

			continue
		}
		children[pos] = qtree.FromLeaf[T](w)
	}

	// The returned Inner's own discriminating bit is bit itself — the same
	// value used to split base here — matching a real Inner block's
	// invariant that DiscriminatingBit() is the bit separating its own
	// children, with ChildBit() (bit>>1, clamped at 1) describing the next
	// level down. bit is a power of two by construction (callers derive it
	// from an existing inner block's own bit via halving), so NewInner
	// cannot fail here.
	in, _ := qtree.NewInner(children, bit)

	return in
}
