package mmio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lvlath-labs/quadmat/index"
)

// WriteConfig configures a Write call.
type WriteConfig[T any] struct {
	// FormatValue renders one tuple's value as the token written after its
	// row and column. Required: there is no default string conversion for
	// an arbitrary T.
	FormatValue func(v T) string
}

// Write emits shape and tuples as a general, real-field, coordinate-format
// Matrix Market stream. Row and Col in tuples are 0-based and are
// converted to 1-based on write. Write never collapses duplicate (row,
// col) pairs or reorders tuples; callers that need a canonical output
// order should sort tuples first.
func Write[T any](w io.Writer, shape index.Shape, tuples []index.Tuple[T], cfg WriteConfig[T]) error {
	if cfg.FormatValue == nil {
		return fmt.Errorf("mmio: Write: Config.FormatValue is required: %w", ErrIoError)
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "%%MatrixMarket matrix coordinate real general"); err != nil {
		return fmt.Errorf("mmio: Write: %w: %w", err, ErrIoError)
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", shape.Nrows, shape.Ncols, len(tuples)); err != nil {
		return fmt.Errorf("mmio: Write: %w: %w", err, ErrIoError)
	}

	for _, tu := range tuples {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", tu.Row+1, tu.Col+1, cfg.FormatValue(tu.Value)); err != nil {
			return fmt.Errorf("mmio: Write: %w: %w", err, ErrIoError)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mmio: Write: %w: %w", err, ErrIoError)
	}

	return nil
}
