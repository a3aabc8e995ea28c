// Package index defines the coordinate primitives shared by every layer of
// the quadtree: a matrix-wide Index type, block Shape and Offset, a leaf
// entry-count type, and the (row, col, value) Tuple carried between layers.
//
// What & Why:
//
//	Every other package in this module — qtree, leaf, shadow, spa, dcscacc,
//	multiply, construct — operates on these four types. Keeping them in one
//	leaf package with no dependencies avoids import cycles between the tree
//	and leaf layers.
package index
