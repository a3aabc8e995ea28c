package matrix

import (
	"fmt"
	"io"

	"github.com/lvlath-labs/quadmat/config"
	"github.com/lvlath-labs/quadmat/index"
	"github.com/lvlath-labs/quadmat/mmio"
)

// LoadResult is Load's return value: the built Matrix alongside whether
// the underlying read completed without errors or warnings. A caller
// supplying a lenient consumer (e.g. mmio.IgnoringConsumer) that silently
// drops out-of-range indices or truncated lines must inspect
// LoadSuccessful to learn that happened, since the resulting Matrix looks
// identical to one built from a clean file.
type LoadResult[T any] struct {
	Matrix         Matrix[T]
	LoadSuccessful bool
}

// Load reads a Matrix Market coordinate stream and builds a Matrix from
// it. opts configures value parsing, the error/warning consumer,
// and symmetry expansion; cfg configures the resulting tree's
// construction (leaf threshold, accumulator choice, ...). The returned
// LoadSuccessful is true iff mmio reported no errors and no warnings
// while reading.
func Load[T any](r io.Reader, cfg config.Config, opts ...LoadOption[T]) (LoadResult[T], error) {
	var lo LoadOptions[T]
	for _, opt := range opts {
		opt(&lo)
	}

	res, err := mmio.Read[T](r, mmio.Config[T]{
		Consumer:     lo.Consumer,
		ParseValue:   lo.ParseValue,
		PatternValue: lo.PatternValue,
		Negate:       lo.Negate,
	})
	if err != nil {
		return LoadResult[T]{}, fmt.Errorf("matrix: load: %w", err)
	}

	m, err := New(res.Shape, res.Tuples, cfg)
	if err != nil {
		return LoadResult[T]{}, fmt.Errorf("matrix: load: %w", err)
	}

	return LoadResult[T]{Matrix: m, LoadSuccessful: res.LoadSuccessful}, nil
}

// SaveOption configures Save.
type SaveOption[T any] func(*mmio.WriteConfig[T])

// WithFormatValue overrides how a tuple's value is rendered.
func WithFormatValue[T any](fn func(T) string) SaveOption[T] {
	return func(c *mmio.WriteConfig[T]) { c.FormatValue = fn }
}

// Save writes m as a general, real-field, coordinate-format Matrix
// Market stream.
func (m Matrix[T]) Save(w io.Writer, opts ...SaveOption[T]) error {
	var wc mmio.WriteConfig[T]
	for _, opt := range opts {
		opt(&wc)
	}

	tuples := make([]index.Tuple[T], 0, m.NNZ())
	for tu := range m.Tuples() {
		tuples = append(tuples, tu)
	}

	if err := mmio.Write(w, m.shape, tuples, wc); err != nil {
		return fmt.Errorf("matrix: save: %w", err)
	}

	return nil
}
