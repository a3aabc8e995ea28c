// Package semiring defines the algebra that parameterizes every multiply
// in this module: an additive monoid used to accumulate partial products
// and a multiplicative operator used to combine a pair of operand values.
// The core only ever uses a semiring's Add and Mul; it never requires a
// default/zero value: the accumulators treat a slot's first contribution
// as its initial value rather than folding into a zero.
package semiring
