// Package spa implements the sparse accumulator: a scratch
// structure that absorbs weighted contributions to one destination column
// and emits the merged column in ascending row order. Two flavors share
// the Accumulator[T] contract — Dense, backed by flat arrays sized to the
// destination row count, and Map, backed by an ordered B-tree keyed by
// row — and New picks between them using a config.Config predicate plus
// the byte-size check.
package spa
