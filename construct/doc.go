// Package construct implements tree construction from a bag of triples:
// a transient Triples block holding unsorted (row, col, value) entries,
// and Build/subdivide, the recursive partition-in-place
// subdivider that turns it into a balanced quadtree whose leaves respect
// config.Config's leaf-split threshold.
//
// The Triples block's row/col/value arrays are never copied or reordered
// during subdivision — only a permutation over their indices is narrowed
// and partitioned in place, avoiding the O(N log N) memory a copying
// partition would cost across recursion levels.
package construct
