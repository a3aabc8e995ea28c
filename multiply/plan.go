package multiply

import (
	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
	"github.com/lvlath-labs/quadmat/semiring"
	"github.com/lvlath-labs/quadmat/taskqueue"
)

// engine carries the state threaded through every recursive plan call: the
// queue work is dispatched through, the semiring, the config, and the
// first error encountered. The queue is single-threaded, so a plain field
// (no mutex) is enough to latch the first error and have every
// already-enqueued sibling task observe it.
type engine[T any] struct {
	q   *taskqueue.Queue
	sr  semiring.Semiring[T]
	cfg config.Config
	err error
}

// fail latches err as the engine's error if none has been recorded yet.
func (e *engine[T]) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Multiply computes a*b over sr via the recursive pair-set planner.
// shapeA and shapeB are the operands' full matrix shapes; Multiply
// returns the product's shape alongside its root node. A dimension mismatch, an
// encountered future node, or a node-kind combination that should never
// arise surfaces as an error wrapping qtree.ErrNodeTypeMismatch or
// qtree.ErrNotImplemented.
func Multiply[T any](a, b qtree.Node[T], shapeA, shapeB index.Shape, sr semiring.Semiring[T], cfg config.Config) (qtree.Node[T], index.Shape, error) {
	dstShape := index.Shape{Nrows: shapeA.Nrows, Ncols: shapeB.Ncols}

	e := &engine[T]{q: taskqueue.New(), sr: sr, cfg: cfg}
	root := PairSet[T]{{
		A: a, B: b,
		AShape: shapeA, BShape: shapeB,
		ABit: operandRootBit(a, shapeA), BBit: operandRootBit(b, shapeB),
	}}

	var dst qtree.Node[T]
	dstBit := qtree.RootDiscriminatingBit(dstShape)
	e.q.Enqueue(priorityFor(index.Offset{}), func() {
		e.fail(e.plan(root, &dst, dstShape, index.Offset{}, dstBit, func() {}))
	})

	return dst, dstShape, e.err
}

// operandRootBit returns the discriminating bit an operand's root pair
// should carry. When n is already an Inner block — the common case, since
// construct.Build subdivides any tree above its leaf threshold — its own
// DiscriminatingBit() is authoritative and is used directly, so the
// planner's bit bookkeeping never drifts from the tree it's actually
// walking. Otherwise (n is a single leaf, never subdivided) the bit is
// only ever notional, consulted solely if that leaf later needs a shadow
// subdivision; it is derived with the same "largest power of two <=
// dim-1" rule construct.Build itself would have used at the root.
func operandRootBit[T any](n qtree.Node[T], shape index.Shape) index.Index {
	if in, ok := n.AsInner(); ok {
		return in.DiscriminatingBit()
	}

	dim := shape.Dim()
	if dim <= 1 {
		return 1
	}
	bit := index.Index(1)
	for bit*2 <= dim-1 {
		bit *= 2
	}

	return bit
}

// priorityFor derives a task's scheduling priority from its destination
// offset: blocks nearer the matrix's own origin are favored, giving a
// deterministic, stable total order (ties, e.g. two root-adjacent blocks,
// fall back to the queue's own enqueue-order tiebreak).
func priorityFor(offset index.Offset) taskqueue.Priority {
	return taskqueue.Priority(-(int64(offset.RowOffset) + int64(offset.ColOffset)))
}

// plan resolves one destination block: it prunes empty pairs, dispatches
// on the pruned set's combined status, and either writes directly to dst
// (empty result, or a leaf-pair multiply) or recurses. done runs once *dst
// holds its final value; for a recursed block that is only after every
// descendant task has finished.
func (e *engine[T]) plan(ps PairSet[T], dst *qtree.Node[T], dstShape index.Shape, dstOffset index.Offset, dstBit index.Index, done func()) error {
	pruned := pruneEmpty(ps)
	st := orStatus(pruned)

	switch {
	case st == 0:
		// Nothing contributes here. This must come before the shape
		// check: a degenerate destination quadrant (zero rows or
		// columns) is fine as long as nothing maps into it.
		*dst = qtree.Empty[T]()
		done()

		return nil
	case !dstShape.Valid():
		return qtree.ErrNodeTypeMismatch
	case st&statusMismatchedDims != 0:
		return qtree.ErrNodeTypeMismatch
	case st&statusHasFuture != 0:
		return qtree.ErrNotImplemented
	case st&statusHasInner != 0:
		return e.recurse(pruned, dst, dstShape, dstOffset, dstBit, done)
	default:
		if err := e.multiplyLeaves(pruned, dst, dstShape); err != nil {
			return err
		}
		done()

		return nil
	}
}

// recurse handles pair sets that still contain inner structure: it
// expands every surviving pair into its four child-pair contributions
// (the eight-way inner×inner emission, with either side shadow-divided
// first if it is currently a leaf), then either merges all four recursive
// pair sets into one job against the same destination slot — when the
// A-side subdivision bit is still at or above the destination
// container's bit — or spawns one task per destination quadrant.
func (e *engine[T]) recurse(pruned PairSet[T], dst *qtree.Node[T], dstShape index.Shape, dstOffset index.Offset, dstBit index.Index, done func()) error {
	var recursiveSets [4]PairSet[T]
	for _, p := range pruned {
		if err := e.expandPair(p, &recursiveSets); err != nil {
			return err
		}
	}

	// ABit already holds each A-side node's own subdivision bit (its
	// parent's bit, halved), so the OR compares against the destination
	// container's bit directly, without another shift.
	aDiscBit := aParentBitsOR(pruned)
	if aDiscBit >= dstBit {
		merged := make(PairSet[T], 0, len(recursiveSets[0])+len(recursiveSets[1])+len(recursiveSets[2])+len(recursiveSets[3]))
		for _, s := range recursiveSets {
			merged = append(merged, s...)
		}
		e.q.Enqueue(priorityFor(dstOffset), func() {
			e.fail(e.plan(merged, dst, dstShape, dstOffset, dstBit, done))
		})

		return nil
	}

	// The inner block created in this slot subdivides by half the
	// container's bit; its own bit then serves as the container bit for
	// each of the four child tasks.
	innerBit := childDiscBit(dstBit)
	children := new([4]qtree.Node[T])
	remaining := 4
	for _, pos := range qtree.Positions {
		pos := pos
		childShape := qtree.ChildShape(dstShape, innerBit, pos)
		childOffset := qtree.ChildOffset(dstOffset, innerBit, pos)
		e.q.Enqueue(priorityFor(childOffset), func() {
			e.fail(e.plan(recursiveSets[pos], &children[pos], childShape, childOffset, innerBit, func() {
				remaining--
				if remaining == 0 {
					e.joinInner(dst, children, innerBit)
					done()
				}
			}))
		})
	}

	return nil
}

// joinInner is the post-recursion cleanup step: once all four child
// subtrees for this destination are complete, collapse an all-empty result back to the
// empty alternative rather than keeping a degenerate Inner block whose
// every child is empty.
func (e *engine[T]) joinInner(dst *qtree.Node[T], children *[4]qtree.Node[T], dstBit index.Index) {
	allEmpty := true
	for _, c := range children {
		if !c.IsEmpty() {
			allEmpty = false

			break
		}
	}
	if allEmpty {
		*dst = qtree.Empty[T]()

		return
	}

	in, err := qtree.NewInner(*children, dstBit)
	if err != nil {
		e.fail(err)

		return
	}
	*dst = qtree.FromInner(in)
}

// childDiscBit halves bit for a child, clamped at 1, mirroring
// qtree.Inner.ChildBit for destinations built directly from a bit value
// rather than from an existing Inner.
func childDiscBit(bit index.Index) index.Index {
	if bit <= 1 {
		return 1
	}

	return bit >> 1
}

// expandPair resolves one pair's four-quadrant structure on each side —
// materializing a shadow subdivision where a side is currently a leaf —
// and appends its eight resulting child-pair contributions into the four
// per-destination-quadrant recursive sets, per the standard 2x2 block
// matrix product: dst[i][j] += sum over k of A[i][k] * B[k][j].
func (e *engine[T]) expandPair(p Pair[T], recursiveSets *[4]PairSet[T]) error {
	aChildren, aBit, err := e.quadrants(p.A, p.AShape, p.ABit)
	if err != nil {
		return err
	}
	bChildren, bBit, err := e.quadrants(p.B, p.BShape, p.BBit)
	if err != nil {
		return err
	}

	aShapeAt := func(pos qtree.Position) index.Shape { return qtree.ChildShape(p.AShape, p.ABit, pos) }
	bShapeAt := func(pos qtree.Position) index.Shape { return qtree.ChildShape(p.BShape, p.BBit, pos) }

	type term struct {
		dst  qtree.Position
		aPos qtree.Position
		bPos qtree.Position
	}
	terms := [8]term{
		{qtree.NW, qtree.NW, qtree.NW}, {qtree.NW, qtree.NE, qtree.SW},
		{qtree.NE, qtree.NW, qtree.NE}, {qtree.NE, qtree.NE, qtree.SE},
		{qtree.SW, qtree.SW, qtree.NW}, {qtree.SW, qtree.SE, qtree.SW},
		{qtree.SE, qtree.SW, qtree.NE}, {qtree.SE, qtree.SE, qtree.SE},
	}
	for _, t := range terms {
		ac, bc := aChildren[t.aPos], bChildren[t.bPos]
		if ac.IsEmpty() || bc.IsEmpty() {
			continue
		}
		recursiveSets[t.dst] = append(recursiveSets[t.dst], Pair[T]{
			A: ac, B: bc,
			AShape: aShapeAt(t.aPos), BShape: bShapeAt(t.bPos),
			ABit: aBit, BBit: bBit,
		})
	}

	return nil
}
