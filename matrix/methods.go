package matrix

import (
	"fmt"

	"github.com/lvlath-labs/quadmat/multiply"
	"github.com/lvlath-labs/quadmat/semiring"
)

// Multiply computes m * other over sr via the recursive pair-set planner,
// returning the product as a new Matrix built under m's own config. A
// column/row dimension mismatch, an unresolved future node, or an
// internal node-kind inconsistency surfaces as a wrapped error.
func (m Matrix[T]) Multiply(other Matrix[T], sr semiring.Semiring[T]) (Matrix[T], error) {
	root, shape, err := multiply.Multiply(m.root, other.root, m.shape, other.shape, sr, m.cfg)
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("matrix: multiply: %w", err)
	}

	return Matrix[T]{shape: shape, root: root, cfg: m.cfg}, nil
}
