// Package shadow implements the window shadow leaf: a non-owning view over
// a rectangular sub-region of a base leaf, remapping coordinates to a
// local, zero-based frame.
//
// This implementation precomputes the visible, remapped columns once at
// construction time rather than re-deriving them lazily on every access.
// The only externally observable contract is tuple-set equivalence, so a
// shadow could even be replaced by subdivision-plus-copy entirely; eagerly
// materializing the (already small, already leaf-sized) visible column
// set is a point along that same spectrum. It keeps GetColumn/ColumnAt
// O(1)/O(log k) without
// re-deriving the fast-reject and row-tightening logic on every call,
// while still performing that logic (and its 256-element linear-vs-binary
// threshold) exactly once, at Window construction.
package shadow
