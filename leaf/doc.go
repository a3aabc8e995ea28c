// Package leaf implements the DCSC (Doubly-Compressed Sparse Column) leaf
// block: immutable compressed storage for one quadtree leaf, plus the
// builder that constructs one from a column-major tuple stream.
package leaf
