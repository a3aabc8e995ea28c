package dcscacc

import (
	"container/heap"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/leaf"
	"github.com/lvlath-labs/quadmat/semiring"
	"github.com/lvlath-labs/quadmat/spa"
)

// cursor walks one input leaf's columns in ascending order.
type cursor[T any] struct {
	src *leaf.DCSC[T]
	idx int
}

func (c *cursor[T]) col() index.Index { return c.src.ColumnAt(c.idx).Col }

// cursorHeap is a min-heap of cursors ordered by current column index,
// implementing container/heap.Interface.
type cursorHeap[T any] []*cursor[T]

func (h cursorHeap[T]) Len() int            { return len(h) }
func (h cursorHeap[T]) Less(i, j int) bool  { return h[i].col() < h[j].col() }
func (h cursorHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cursorHeap[T]) Push(x interface{}) { *h = append(*h, x.(*cursor[T])) }
func (h *cursorHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// Merge sums leaves — all of shape dst — column-wise into a single DCSC
// leaf via a column-cursor min-heap. Duplicate (row, col) entries across
// leaves are combined via sr.Add. None of the input leaves is mutated.
func Merge[T any](leaves []*leaf.DCSC[T], dst index.Shape, sr semiring.Semiring[T], cfg config.Config) *leaf.DCSC[T] {
	nonEmpty := make([]*leaf.DCSC[T], 0, len(leaves))
	for _, l := range leaves {
		if l != nil && l.NumColumns() > 0 {
			nonEmpty = append(nonEmpty, l)
		}
	}

	if len(nonEmpty) == 0 {
		return leaf.NewBuilder[T](dst, cfg).Finish()
	}
	if len(nonEmpty) == 1 {
		return nonEmpty[0]
	}

	h := make(cursorHeap[T], 0, len(nonEmpty))
	for _, l := range nonEmpty {
		h = append(h, &cursor[T]{src: l})
	}
	heap.Init(&h)

	b := leaf.NewBuilder[T](dst, cfg)
	acc := spa.New[T](dst.Nrows, sr, cfg, 0)

	for h.Len() > 0 {
		popped := heap.Pop(&h).(*cursor[T])
		colRef := popped.src.ColumnAt(popped.idx)
		acc.Scatter(colRef.Rows, colRef.Values)

		popped.idx++
		if popped.idx < popped.src.NumColumns() {
			heap.Push(&h, popped)
		}

		complete := h.Len() == 0 || h[0].col() > colRef.Col
		if complete {
			var rows []index.Index
			var values []T
			acc.Gather(&rows, &values)
			for i, r := range rows {
				// Builder errors here would signal an SpA contract
				// violation (non-ascending gather); Merge's own
				// precondition (identical dst shape, valid leaves)
				// rules that out.
				_ = b.Add(r, colRef.Col, values[i])
			}
			acc.Clear()
		}
	}

	return b.Finish()
}
