package spa

import (
	"sort"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/semiring"
)

// Dense is the dense-array sparse accumulator: three arrays sized
// to nrows — x holds the accumulated value, mark the touched flag, and w
// the compact list of touched rows in touch order.
type Dense[T any] struct {
	sr   semiring.Semiring[T]
	x    []T
	mark []bool
	w    []index.Index
}

var _ Accumulator[float64] = (*Dense[float64])(nil)

// NewDense constructs a Dense accumulator for a destination column of
// nrows rows. x is obtained through cfg's Scratch allocator hook, since a
// Dense accumulator's backing arrays are exactly the high-churn per-task
// buffers that hook exists for.
func NewDense[T any](nrows index.Index, sr semiring.Semiring[T], cfg config.Config) *Dense[T] {
	return &Dense[T]{
		sr:   sr,
		x:    config.Alloc[T](cfg.TempAllocator, config.Scratch, int(nrows)),
		mark: make([]bool, nrows),
	}
}

func (d *Dense[T]) touch(r index.Index, v T) {
	if d.mark[r] {
		d.x[r] = d.sr.Add(d.x[r], v)

		return
	}
	d.mark[r] = true
	d.x[r] = v
	d.w = append(d.w, r)
}

// Scatter implements Accumulator.
func (d *Dense[T]) Scatter(rows []index.Index, values []T) {
	for i, r := range rows {
		d.touch(r, values[i])
	}
}

// ScatterWeighted implements Accumulator.
func (d *Dense[T]) ScatterWeighted(rows []index.Index, values []T, beta T) {
	for i, r := range rows {
		d.touch(r, d.sr.Mul(values[i], beta))
	}
}

// Gather implements Accumulator. It sorts the touched-row list in place
// and reads x in that order.
func (d *Dense[T]) Gather(outRows *[]index.Index, outValues *[]T) {
	sort.Slice(d.w, func(i, j int) bool { return d.w[i] < d.w[j] })
	for _, r := range d.w {
		*outRows = append(*outRows, r)
		*outValues = append(*outValues, d.x[r])
	}
}

// IsEmpty implements Accumulator.
func (d *Dense[T]) IsEmpty() bool {
	return len(d.w) == 0
}

// Clear implements Accumulator, resetting only the touched entries via w
// rather than rezeroing the whole array.
func (d *Dense[T]) Clear() {
	for _, r := range d.w {
		d.mark[r] = false
	}
	d.w = d.w[:0]
}
