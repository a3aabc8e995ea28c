// Package qtree implements the recursive quadtree node model: the tagged
// node variant (empty / future / inner / leaf) and inner-block child
// arithmetic.
//
// Leaf categories are represented through the Leaf[T] interface rather
// than as Go generic types parameterized over index width: specializing
// leaves by the smallest addressing width (int16/32/64) is a storage
// optimization, but Go has no variant/union type that could
// hold three differently-typed leaf specializations as siblings in one
// tree without boxing them behind an interface anyway. This module records
// the chosen width as leaf metadata (index.IndexWidth, surfaced via
// Leaf[T].Width) and enforces width-matching at leaf-pair kernel dispatch,
// while storing indices uniformly as index.Index internally. See DESIGN.md
// for the full rationale.
package qtree
