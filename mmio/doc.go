// Package mmio reads and writes the Matrix Market coordinate text
// format. It knows nothing about qtree: its contract is simply "given a
// stream, yield (row, col, value) triples and a declared shape; given a
// shape and triples, write them out" — an external collaborator the
// matrix façade drives, not a core dependency.
package mmio
