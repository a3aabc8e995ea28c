package leaf

import (
	"fmt"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
)

// Builder constructs a DCSC leaf from a stream of tuples presented in
// (col, row) ascending order. It must accept an
// empty tuple stream; Finish on an empty builder yields an empty leaf.
type Builder[T any] struct {
	shape   index.Shape
	cfg     config.Config
	done    bool
	curCol  index.Index
	haveCol bool

	colInd []index.Index
	colPtr []int
	rowInd []index.Index
	values []T
}

// NewBuilder returns a Builder for leaves of the given shape, consulting
// cfg for the acceleration-structure predicates at Finish time.
func NewBuilder[T any](shape index.Shape, cfg config.Config) *Builder[T] {
	return &Builder[T]{shape: shape, cfg: cfg}
}

// Add appends one (row, col, value) tuple. Tuples must arrive ordered by
// (col, row); Add returns ErrOutOfOrder otherwise, and ErrFinished if
// called after Finish.
func (b *Builder[T]) Add(row, col index.Index, value T) error {
	if b.done {
		return ErrFinished
	}
	if b.haveCol {
		switch {
		case col < b.curCol:
			return fmt.Errorf("leaf.Builder.Add: col %d after %d: %w", col, b.curCol, ErrOutOfOrder)
		case col == b.curCol:
			last := b.rowInd[len(b.rowInd)-1]
			if row <= last {
				return fmt.Errorf("leaf.Builder.Add: row %d after %d in col %d: %w", row, last, col, ErrOutOfOrder)
			}
		}
	}

	if !b.haveCol || col != b.curCol {
		// The start offset of a new column is simply how many rows have
		// been recorded so far; this also serves as the previous column's
		// end offset once we cap colPtr in Finish.
		b.colInd = append(b.colInd, col)
		b.colPtr = append(b.colPtr, len(b.rowInd))
		b.curCol = col
		b.haveCol = true
	}
	b.rowInd = append(b.rowInd, row)
	b.values = append(b.values, value)

	return nil
}

// Finish caps colPtr and, based on cfg's predicates, optionally builds
// either the CSC column-pointer index or the boolean column-presence
// mask. At most one of the two is ever populated. Finish may be called
// only once.
func (b *Builder[T]) Finish() *DCSC[T] {
	b.done = true
	b.colPtr = append(b.colPtr, len(b.rowInd))

	d := &DCSC[T]{
		shape:  b.shape,
		width:  index.LeafWidthFor(b.shape.Dim()),
		colInd: b.colInd,
		colPtr: b.colPtr,
		rowInd: b.rowInd,
		values: b.values,
	}
	if len(d.colPtr) == 0 {
		d.colPtr = []int{0}
	}

	ncols := int64(b.shape.Ncols)
	numNonempty := int64(len(b.colInd))

	switch {
	case b.cfg.ShouldUseCSCIndex != nil && b.cfg.ShouldUseCSCIndex(ncols, numNonempty):
		d.cscPtr = buildCSCPtr(b.cfg, b.colInd, b.colPtr, b.shape.Ncols)
	case b.cfg.ShouldUseDCSCBoolMask != nil && b.cfg.ShouldUseDCSCBoolMask(ncols, numNonempty):
		d.boolMask = buildBoolMask(b.cfg, b.colInd, b.shape.Ncols)
	}

	return d
}

// buildCSCPtr expands the compressed colInd/colPtr pair into a full
// ncols+1 pointer array where every column — empty or not — has an entry.
// full is obtained through cfg's LongLived allocator hook, since it lives
// as long as the leaf itself.
func buildCSCPtr(cfg config.Config, colInd []index.Index, colPtr []int, ncols index.Index) []int {
	full := config.Alloc[int](cfg.Allocator, config.LongLived, int(ncols)+1)
	j := 0 // position within colInd
	running := 0
	for c := index.Index(0); c < ncols; c++ {
		full[c] = running
		if j < len(colInd) && colInd[j] == c {
			running = colPtr[j+1]
			j++
		}
	}
	full[ncols] = running

	return full
}

// buildBoolMask builds a presence bitmask over [0, ncols). mask is
// obtained through cfg's LongLived allocator hook, for the same reason as
// buildCSCPtr's full array.
func buildBoolMask(cfg config.Config, colInd []index.Index, ncols index.Index) []bool {
	mask := config.Alloc[bool](cfg.Allocator, config.LongLived, int(ncols))
	for _, c := range colInd {
		mask[c] = true
	}

	return mask
}
