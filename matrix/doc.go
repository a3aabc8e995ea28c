// Package matrix is the public façade: a Matrix owns a single block
// container — its root qtree.Node and shape — and exposes the operations
// a caller assembles a program from: build from tuples, multiply,
// load/save Matrix Market text, and the canonical test-fixture
// generators.
//
// What & Why:
//
//	Every other package in this module (qtree, multiply, construct, mmio,
//	...) is an internal collaborator; Matrix is the one type a consumer of
//	this module is expected to hold onto. It stays a thin composition over
//	those packages rather than reimplementing any of their logic.
package matrix
