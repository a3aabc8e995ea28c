// Package multiply implements the recursive quadtree multiply planner and
// leaf-pair kernel: given two quadtrees and a semiring, it produces
// the quadtree of their product, dispatching work through a single-threaded
// priority task queue (package taskqueue).
package multiply
