package qtree

import "errors"

// Sentinel errors for the qtree package and, by re-use, the rest of the
// multiply pipeline.
var (
	// ErrInvalidArgument signals structural misuse: a non-power-of-two or
	// zero discriminating bit, or a child position outside {NW,NE,SW,SE}.
	ErrInvalidArgument = errors.New("qtree: invalid argument")

	// ErrNodeTypeMismatch signals a pair set containing node combinations
	// that should never arise: mismatched leaf index widths, a dimension
	// mismatch, or a destination shape with a non-positive dimension.
	ErrNodeTypeMismatch = errors.New("qtree: node type mismatch")

	// ErrNotImplemented signals a future block encountered on the critical
	// path of a multiply.
	ErrNotImplemented = errors.New("qtree: not implemented")
)
