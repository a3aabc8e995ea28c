// Package dcscacc implements the DCSC accumulator: it sums several DCSC
// leaves of identical shape column-wise into a single DCSC leaf, using a
// container/heap min-heap of column cursors to drive a spa.Accumulator
// per destination column.
package dcscacc
