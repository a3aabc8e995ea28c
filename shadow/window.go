package shadow

import (
	"iter"
	"sort"

	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/qtree"
)

// rowTightenThreshold is the measured size threshold below which two
// linear scans beat two binary searches for tightening a column's row
// range against the shadow's row window.
const rowTightenThreshold = 256

// Window is a non-owning view over a rectangular sub-region of a base
// leaf. It implements qtree.Leaf[T].
type Window[T any] struct {
	base  qtree.Leaf[T] // the ultimate owning leaf; never itself a *Window
	shape index.Shape
	width index.IndexWidth

	// rowOffset/colOffset are the offsets already subtracted from every
	// row/column emitted by this Window, relative to base's own
	// coordinates. A nested shadow recovers these to compose additively.
	rowOffset index.Index
	colOffset index.Index

	cols []qtree.ColumnRef[T] // visible columns, row-tightened and remapped, ascending by Col
	nnz  index.BlockNnn
}

var _ qtree.Leaf[float64] = (*Window[float64])(nil)

// New constructs a window shadow over base spanning base-local columns
// [colBegin, colEnd), restricted to the row window implied by offsets and
// shape (row_begin = offsets.RowOffset, row_inclusive_end =
// offsets.RowOffset + shape.Nrows - 1), with offsets subtracted from every
// emitted row/column so the shadow's own coordinates are zero-based.
//
// If base is itself a *Window, New composes additively: offsets sum, the
// requested [colBegin, colEnd) range (expressed in base's own column
// space, like any other qtree.Leaf[T] consumer would address it) is
// translated into the ultimate base leaf's column space, and the returned
// Window references the ultimate owning leaf directly rather than
// wrapping base — a shadow of a shadow never builds an onion of shadows.
func New[T any](base qtree.Leaf[T], colBegin, colEnd index.Index, offsets index.Offset, shape index.Shape) *Window[T] {
	if w, ok := base.(*Window[T]); ok {
		baseColBegin := w.colOffset + colBegin
		baseColEnd := w.colOffset + colEnd
		composed := index.Offset{
			RowOffset: w.rowOffset + offsets.RowOffset,
			ColOffset: w.colOffset + offsets.ColOffset,
		}

		return build(w.base, baseColBegin, baseColEnd, composed, shape)
	}

	return build(base, colBegin, colEnd, offsets, shape)
}

func build[T any](base qtree.Leaf[T], colBegin, colEnd index.Index, offsets index.Offset, shape index.Shape) *Window[T] {
	w := &Window[T]{
		base:      base,
		shape:     shape,
		width:     index.LeafWidthFor(shape.Dim()),
		rowOffset: offsets.RowOffset,
		colOffset: offsets.ColOffset,
	}

	rowBegin := offsets.RowOffset
	rowInclusiveEnd := offsets.RowOffset + shape.Nrows - 1

	col, ok := base.ColumnLowerBound(colBegin)
	for ok && col.Col < colEnd {
		if rows, values, fits := tighten(col.Rows, col.Values, rowBegin, rowInclusiveEnd); fits {
			remappedRows := make([]index.Index, len(rows))
			for i, r := range rows {
				remappedRows[i] = r - rowBegin
			}
			w.cols = append(w.cols, qtree.ColumnRef[T]{
				Col:    col.Col - offsets.ColOffset,
				Rows:   remappedRows,
				Values: values,
			})
			w.nnz += index.BlockNnn(len(rows))
		}
		col, ok = base.ColumnLowerBound(col.Col + 1)
	}

	return w
}

// tighten narrows a column to the visible row window: fast-reject if the
// column's row range has no intersection with [rowBegin, rowInclusiveEnd],
// otherwise narrow to the intersecting sub-slice using linear scans for
// short columns and binary search for long ones.
func tighten[T any](rows []index.Index, values []T, rowBegin, rowInclusiveEnd index.Index) ([]index.Index, []T, bool) {
	if len(rows) == 0 {
		return nil, nil, false
	}
	firstRow, lastRow := rows[0], rows[len(rows)-1]
	if firstRow > rowInclusiveEnd || lastRow < rowBegin {
		return nil, nil, false
	}

	var start, end int
	if len(rows) < rowTightenThreshold {
		for start = 0; start < len(rows) && rows[start] < rowBegin; start++ {
		}
		for end = len(rows); end > start && rows[end-1] > rowInclusiveEnd; end-- {
		}
	} else {
		start = sort.Search(len(rows), func(i int) bool { return rows[i] >= rowBegin })
		end = sort.Search(len(rows), func(i int) bool { return rows[i] > rowInclusiveEnd })
	}

	if start >= end {
		return nil, nil, false
	}

	return rows[start:end], values[start:end], true
}

// Shape returns the window's local shape.
func (w *Window[T]) Shape() index.Shape { return w.shape }

// Width returns the smallest index width able to address Shape().
func (w *Window[T]) Width() index.IndexWidth { return w.width }

// NNZ returns the number of visible entries, counted once at construction;
// this call is O(1).
func (w *Window[T]) NNZ() index.BlockNnn { return w.nnz }

// NumColumns returns the number of visible non-empty columns.
func (w *Window[T]) NumColumns() int { return len(w.cols) }

// ColumnAt returns the i'th visible column, 0 <= i < NumColumns().
func (w *Window[T]) ColumnAt(i int) qtree.ColumnRef[T] { return w.cols[i] }

// GetColumn performs a point lookup for col in the window's local
// (zero-based) column space.
func (w *Window[T]) GetColumn(col index.Index) (qtree.ColumnRef[T], bool) {
	i := sort.Search(len(w.cols), func(i int) bool { return w.cols[i].Col >= col })
	if i < len(w.cols) && w.cols[i].Col == col {
		return w.cols[i], true
	}

	return qtree.ColumnRef[T]{}, false
}

// ColumnLowerBound returns the smallest visible column >= col, or false if
// none exists.
func (w *Window[T]) ColumnLowerBound(col index.Index) (qtree.ColumnRef[T], bool) {
	i := sort.Search(len(w.cols), func(i int) bool { return w.cols[i].Col >= col })
	if i >= len(w.cols) {
		return qtree.ColumnRef[T]{}, false
	}

	return w.cols[i], true
}

// Tuples yields (row, col, value) triples in column-major ascending order,
// in the window's local coordinates.
func (w *Window[T]) Tuples() iter.Seq[index.Tuple[T]] {
	return func(yield func(index.Tuple[T]) bool) {
		for _, col := range w.cols {
			for i, r := range col.Rows {
				if !yield(index.Tuple[T]{Row: r, Col: col.Col, Value: col.Values[i]}) {
					return
				}
			}
		}
	}
}
