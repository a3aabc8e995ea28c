// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. Callers MUST check them via errors.Is. Panics are
// reserved for programmer errors in private helpers (if any).
package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT wrap these sentinels with %w
// when returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still use
// errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (nrows<=0
	// or ncols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDestroyWhileReachable is returned by DestroyParallel when called
	// on a Matrix whose root has already been destroyed or is still
	// nil/zero, since the caller contract requires the tree be
	// unreachable everywhere else before calling it — a double-destroy
	// attempt is a programming error surfaced as this sentinel rather
	// than a silent no-op.
	ErrDestroyWhileReachable = errors.New("matrix: matrix already destroyed")
)
