package leaf

import (
	"iter"
	"sort"

	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// DCSC is an immutable Doubly-Compressed Sparse Column leaf block.
// It owns four parallel arrays (colInd, colPtr, rowInd, values)
// plus up to one optional acceleration structure: a full CSC column
// pointer array or a boolean column-presence mask. It implements
// qtree.Leaf[T].
type DCSC[T any] struct {
	shape index.Shape
	width index.IndexWidth

	colInd []index.Index // distinct non-empty columns, ascending
	colPtr []int         // len(colInd)+1, offsets into rowInd/values
	rowInd []index.Index // rows within each column, ascending per column
	values []T           // len(rowInd)

	cscPtr   []int  // optional, len ncols+1; nil if unused
	boolMask []bool // optional, len ncols; nil if unused
}

var _ qtree.Leaf[float64] = (*DCSC[float64])(nil)

// Shape returns the leaf's local shape.
func (d *DCSC[T]) Shape() index.Shape { return d.shape }

// Width returns the smallest index width able to address Shape().
func (d *DCSC[T]) Width() index.IndexWidth { return d.width }

// NNZ returns the number of stored entries.
func (d *DCSC[T]) NNZ() index.BlockNnn { return index.BlockNnn(len(d.rowInd)) }

// NumColumns returns the number of distinct non-empty columns.
func (d *DCSC[T]) NumColumns() int { return len(d.colInd) }

// ColumnAt returns the i'th non-empty column, 0 <= i < NumColumns().
func (d *DCSC[T]) ColumnAt(i int) qtree.ColumnRef[T] {
	return qtree.ColumnRef[T]{
		Col:    d.colInd[i],
		Rows:   d.rowInd[d.colPtr[i]:d.colPtr[i+1]],
		Values: d.values[d.colPtr[i]:d.colPtr[i+1]],
	}
}

// binarySearchCol locates col within colInd by binary search, returning
// its position and whether it is actually present.
func (d *DCSC[T]) binarySearchCol(col index.Index) (pos int, present bool) {
	i := sort.Search(len(d.colInd), func(i int) bool { return d.colInd[i] >= col })
	if i < len(d.colInd) && d.colInd[i] == col {
		return i, true
	}

	return 0, false
}

// GetColumn performs a point lookup for col, honoring whichever
// acceleration structure (if any) was built: a full CSC pointer array
// answers directly from rowInd/values in O(1) without consulting colInd at
// all; a boolean presence mask answers the presence question in O(1) but
// still needs a binary search over colInd to locate the column's slice;
// with neither present, a binary search over colInd alone is used.
func (d *DCSC[T]) GetColumn(col index.Index) (qtree.ColumnRef[T], bool) {
	if d.cscPtr != nil {
		if col < 0 || int(col) >= len(d.cscPtr)-1 {
			return qtree.ColumnRef[T]{}, false
		}
		lo, hi := d.cscPtr[col], d.cscPtr[col+1]
		if lo == hi {
			return qtree.ColumnRef[T]{}, false
		}

		return qtree.ColumnRef[T]{Col: col, Rows: d.rowInd[lo:hi], Values: d.values[lo:hi]}, true
	}

	if d.boolMask != nil && (col < 0 || int(col) >= len(d.boolMask) || !d.boolMask[col]) {
		return qtree.ColumnRef[T]{}, false
	}

	pos, ok := d.binarySearchCol(col)
	if !ok {
		return qtree.ColumnRef[T]{}, false
	}

	return d.ColumnAt(pos), true
}

// ColumnLowerBound returns the smallest non-empty column >= col, or false
// if none exists.
func (d *DCSC[T]) ColumnLowerBound(col index.Index) (qtree.ColumnRef[T], bool) {
	i := sort.Search(len(d.colInd), func(i int) bool { return d.colInd[i] >= col })
	if i >= len(d.colInd) {
		return qtree.ColumnRef[T]{}, false
	}

	return d.ColumnAt(i), true
}

// Tuples yields (row, col, value) triples in column-major ascending order.
func (d *DCSC[T]) Tuples() iter.Seq[index.Tuple[T]] {
	return func(yield func(index.Tuple[T]) bool) {
		for i, col := range d.colInd {
			for k := d.colPtr[i]; k < d.colPtr[i+1]; k++ {
				if !yield(index.Tuple[T]{Row: d.rowInd[k], Col: col, Value: d.values[k]}) {
					return
				}
			}
		}
	}
}
