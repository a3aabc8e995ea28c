package multiply

import (
	"github.com/lvlath-labs/quadmat/dcscacc"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/leaf"
	"github.com/lvlath-labs/quadmat/qtree"
	"github.com/lvlath-labs/quadmat/spa"
)

// multiplyLeaves handles the all-leaves case: every pair in ps is
// (leaf, leaf). Each pair contributes one partial DCSC leaf, built by
// scanning the
// B-side leaf column by column and scattering the matching A-side column
// through a sparse accumulator sized to dstShape; the partials are then
// folded together by dcscacc.Merge.
func (e *engine[T]) multiplyLeaves(ps PairSet[T], dst *qtree.Node[T], dstShape index.Shape) error {
	var widthA, widthB index.IndexWidth
	haveWidths := false

	partials := make([]*leaf.DCSC[T], 0, len(ps))
	for _, p := range ps {
		aLeaf, ok := p.A.AsLeaf()
		if !ok {
			return qtree.ErrNodeTypeMismatch
		}
		bLeaf, ok := p.B.AsLeaf()
		if !ok {
			return qtree.ErrNodeTypeMismatch
		}

		if !haveWidths {
			widthA, widthB = aLeaf.Width(), bLeaf.Width()
			haveWidths = true
		} else if aLeaf.Width() != widthA || bLeaf.Width() != widthB {
			return qtree.ErrNodeTypeMismatch
		}

		partial := e.multiplyLeafPair(aLeaf, bLeaf, dstShape)
		if partial.NNZ() > 0 {
			partials = append(partials, partial)
		}
	}

	merged := dcscacc.Merge[T](partials, dstShape, e.sr, e.cfg)
	if merged.NNZ() == 0 {
		*dst = qtree.Empty[T]()
	} else {
		*dst = qtree.FromLeaf[T](merged)
	}

	return nil
}

// multiplyLeafPair multiplies one (a_leaf, b_leaf) pair into a single
// partial DCSC leaf of shape dstShape: for each column j of b_leaf, for each (i, b_ij) in that column, look up column i
// of a_leaf and — if present — scatter its (row, value) entries into the
// SpA weighted by b_ij; once a column is fully scanned, gather it straight
// into the destination builder and clear the SpA for the next column.
func (e *engine[T]) multiplyLeafPair(aLeaf, bLeaf qtree.Leaf[T], dstShape index.Shape) *leaf.DCSC[T] {
	b := leaf.NewBuilder[T](dstShape, e.cfg)
	acc := spa.New[T](dstShape.Nrows, e.sr, e.cfg, 0)

	for j := 0; j < bLeaf.NumColumns(); j++ {
		col := bLeaf.ColumnAt(j)
		for k, i := range col.Rows {
			aCol, ok := aLeaf.GetColumn(i)
			if !ok {
				continue
			}
			acc.ScatterWeighted(aCol.Rows, aCol.Values, col.Values[k])
		}

		if acc.IsEmpty() {
			continue
		}

		var rows []index.Index
		var values []T
		acc.Gather(&rows, &values)
		for i, r := range rows {
			// acc.Gather returns ascending rows for the fixed column.Col,
			// so Add's (col, row) ordering contract is always satisfied.
			_ = b.Add(r, col.Col, values[i])
		}
		acc.Clear()
	}

	return b.Finish()
}
