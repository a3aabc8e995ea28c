package multiply

import (
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// status is a bitfield summarizing one or more pairs' node kinds.
// It drives the planner's dispatch order: mismatched dimensions
// take priority over everything else, then an unimplemented future node,
// then whether any pair still has inner structure to recurse through.
type status uint8

const (
	statusHasEmpty status = 1 << iota
	statusHasFuture
	statusHasInner
	statusHasLeaf
	// statusMismatchedDims is never OR'd with any other bit: a pair whose
	// shapes don't compose reports only this bit, regardless of what kind
	// of nodes it holds: nothing downstream can use such a pair.
	statusMismatchedDims status = 1 << 7
)

// Pair is one (A, B) node pair contributing to a destination block.
// AShape/BShape are each side's current local shape; ABit/BBit are
// the bit that side's node subdivides by (an inner block's own
// discriminating bit, or its parent's bit halved) — kept explicitly rather
// than re-derived, since a Leaf or Future node carries no bit of its own,
// but still needs one to be shadow-subdivided as though it were an inner
// block's four quadrants.
type Pair[T any] struct {
	A, B           qtree.Node[T]
	AShape, BShape index.Shape
	ABit, BBit     index.Index
}

func (p Pair[T]) status() status {
	if p.AShape.Ncols != p.BShape.Nrows {
		return statusMismatchedDims
	}

	var s status
	if p.A.IsEmpty() || p.B.IsEmpty() {
		s |= statusHasEmpty
	}
	s |= kindBit(p.A.Kind())
	s |= kindBit(p.B.Kind())

	return s
}

func kindBit(k qtree.Kind) status {
	switch k {
	case qtree.KindFuture:
		return statusHasFuture
	case qtree.KindInner:
		return statusHasInner
	case qtree.KindLeaf:
		return statusHasLeaf
	default:
		return 0
	}
}

// PairSet is a list of pairs all contributing to the same destination
// block.
type PairSet[T any] []Pair[T]

// pruneEmpty drops every pair with either side empty before dispatch. A
// mismatched-dimensions pair is never dropped here: its status
// carries only statusMismatchedDims, never statusHasEmpty, so it survives
// pruning and is caught by the dispatch check that follows.
func pruneEmpty[T any](ps PairSet[T]) PairSet[T] {
	out := make(PairSet[T], 0, len(ps))
	for _, p := range ps {
		if p.status()&statusHasEmpty != 0 {
			continue
		}
		out = append(out, p)
	}

	return out
}

// orStatus ORs every pair's status together.
func orStatus[T any](ps PairSet[T]) status {
	var s status
	for _, p := range ps {
		s |= p.status()
	}

	return s
}

// aParentBitsOR ORs every pair's ABit together: the A-side subdivision
// bits the planner consults, alone, to decide whether the destination
// should subdivide.
func aParentBitsOR[T any](ps PairSet[T]) index.Index {
	var acc index.Index
	for _, p := range ps {
		acc |= p.ABit
	}

	return acc
}
