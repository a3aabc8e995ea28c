package qtree

import (
	"iter"

	"github.com/lvlath-labs/quadmat/index"
)

// ColumnRef is a view of one column of a leaf: its index, and the rows and
// values present in it, ascending by row. Rows and Values always have equal
// length. A zero-value ColumnRef (Rows == nil) represents an absent column,
// returned alongside a false "present" flag by GetColumn/ColumnLowerBound.
type ColumnRef[T any] struct {
	Col    index.Index
	Rows   []index.Index
	Values []T
}

// Leaf is the contract shared by owning DCSC leaves (package leaf) and
// non-owning window shadows (package shadow). All implementations return
// columns in ascending column order and rows ascending within a column.
type Leaf[T any] interface {
	// Shape returns the leaf's local shape (rows/cols it can address).
	Shape() index.Shape
	// Width returns the smallest index width able to address Shape().
	Width() index.IndexWidth
	// NNZ returns the number of stored entries. For a shadow this is the
	// number of entries visible through its window.
	NNZ() index.BlockNnn

	// NumColumns returns the number of distinct non-empty columns.
	NumColumns() int
	// ColumnAt returns the i'th non-empty column in ascending order,
	// 0 <= i < NumColumns().
	ColumnAt(i int) ColumnRef[T]
	// GetColumn performs a point lookup for col.
	GetColumn(col index.Index) (ColumnRef[T], bool)
	// ColumnLowerBound returns the smallest non-empty column >= col, or
	// false if none exists.
	ColumnLowerBound(col index.Index) (ColumnRef[T], bool)

	// Tuples yields (row, col, value) triples in column-major ascending
	// order. The sequence is finite and may be iterated repeatedly by
	// calling Tuples() again; a single iter.Seq value is one forward
	// pass and is not restartable mid-range.
	Tuples() iter.Seq[index.Tuple[T]]
}
