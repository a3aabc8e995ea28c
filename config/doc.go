// Package config defines the configuration object the core consumes: the
// leaf split threshold used by tree construction, the dense-vs-sparse
// accumulator heuristic, the DCSC acceleration-structure predicates, and
// allocator policy tags for long-lived versus scratch allocations.
//
// Config is built with functional options, following the same pattern as
// this module's sibling packages use for their own option types.
package config
