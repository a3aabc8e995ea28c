// Package quadmat is a sparse matrix library built around a quadtree of
// blocks rather than a single flat array.
//
// What & Why:
//
//	A matrix is recursively subdivided into four quadrants until each
//	quadrant is small enough to hold as a single compressed leaf block
//	(DCSC). Multiplication walks two such trees together, expanding inner
//	blocks in lock-step and folding leaf x leaf contributions through a
//	sparse accumulator, scheduled through a small priority task queue
//	instead of the call stack. See matrix.Matrix for the public façade,
//	and the package docs under qtree/, multiply/, construct/, and mmio/
//	for the pieces that make it up.
package quadmat
