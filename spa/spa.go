package spa

import (
	"unsafe"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/semiring"
)

// Accumulator is the common contract shared by Dense and Map. A
// zero-value Accumulator is never valid; always
// construct one via NewDense, NewMap, or New.
type Accumulator[T any] interface {
	// Scatter updates slot r by sr.Add(slot, v) for each (r, v) pair,
	// initializing a slot to v on its first touch.
	Scatter(rows []index.Index, values []T)
	// ScatterWeighted updates slot r by sr.Add(slot, sr.Mul(v, beta)) for
	// each (r, v) pair.
	ScatterWeighted(rows []index.Index, values []T, beta T)
	// Gather appends touched (row, value) pairs to outRows/outValues in
	// ascending row order.
	Gather(outRows *[]index.Index, outValues *[]T)
	// IsEmpty reports whether any slot has been touched since
	// construction or the last Clear.
	IsEmpty() bool
	// Clear resets the accumulator to a state equivalent to a fresh
	// instance of the same capacity, ready for reuse.
	Clear()
}

// New picks a Dense or Map accumulator for a destination column of nrows
// rows, per cfg's ShouldUseDenseSpA predicate and DenseSpaMaxBytes limit.
// flops is advisory and may be zero; the default chooser ignores it.
func New[T any](nrows index.Index, sr semiring.Semiring[T], cfg config.Config, flops int64) Accumulator[T] {
	var zero T
	valueSize := int64(unsafe.Sizeof(zero))

	useDense := cfg.DenseSpaFitsBytes(int64(nrows), valueSize)
	if cfg.ShouldUseDenseSpA != nil {
		useDense = useDense && cfg.ShouldUseDenseSpA(int64(nrows), flops)
	}

	if useDense {
		return NewDense(nrows, sr, cfg)
	}

	return NewMap(nrows, sr)
}
