package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lvlath-labs/quadmat/index"
)

// field names one of the four field tokens this reader accepts.
type field int

const (
	fieldReal field = iota
	fieldDouble
	fieldInteger
	fieldPattern
)

// symmetry names one of the three symmetry tokens this reader accepts.
type symmetry int

const (
	symmetryGeneral symmetry = iota
	symmetrySymmetric
	symmetrySkewSymmetric
)

// Config configures a Read call, covering the reader's tunables plus the
// value-parsing hook a generic reader needs: Go has no way to parse an
// arbitrary T from a token without one.
type Config[T any] struct {
	// Consumer receives every diagnostic Read produces. Defaults to
	// ThrowingConsumer{} if left zero-valued (nil).
	Consumer Consumer
	// ParseValue parses one real/double/integer field token into T.
	// Required unless the caller only ever reads pattern-field files.
	ParseValue func(token string) (T, error)
	// PatternValue is the value recorded for every tuple of a
	// pattern-field file, which carries no value tokens of its own.
	PatternValue T
	// Negate produces the additive inverse of v, required only to expand
	// a skew-symmetric file's off-diagonal tuples.
	Negate func(v T) T
}

// Result is the outcome of a Read call.
type Result[T any] struct {
	Shape  index.Shape
	Tuples []index.Tuple[T]
	// LoadSuccessful is true iff zero errors and zero warnings occurred.
	// It can only be observed false when using a Consumer (e.g.
	// IgnoringConsumer) that lets Read run to completion despite
	// diagnostics; Read still tracks occurrences even when using a
	// Consumer like ThrowingConsumer that aborts on the first one.
	LoadSuccessful bool
}

type reader[T any] struct {
	cfg        Config[T]
	sawProblem bool
}

// Read parses a Matrix Market coordinate-format stream. Indices in
// the file are 1-based and are converted to 0-based in the returned
// tuples.
func Read[T any](r io.Reader, cfg Config[T]) (Result[T], error) {
	if cfg.Consumer == nil {
		cfg.Consumer = ThrowingConsumer{}
	}
	rd := &reader[T]{cfg: cfg}

	return rd.read(r)
}

// abort calls Consumer.Error for notification and unconditionally returns
// a wrapped error: malformed banners, unsupported tokens, and premature
// EOF in the header are always fatal regardless of which Consumer is in
// use, since no tuples can be recovered from a stream whose header could
// not be understood.
func (rd *reader[T]) abort(msg string) error {
	_ = rd.cfg.Consumer.Error(msg)

	return fmt.Errorf("mmio: %s: %w", msg, ErrIoError)
}

func (rd *reader[T]) read(r io.Reader) (Result[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return Result[T]{}, rd.abort("missing banner: empty file")
	}
	banner := scanner.Text()
	if !strings.HasPrefix(banner, "%%MatrixMarket") && !strings.HasPrefix(banner, "%MatrixMarket") {
		return Result[T]{}, rd.abort("not a Matrix Market file: missing banner")
	}

	fields := strings.Fields(banner)
	// fields[0] is the banner token itself; object/format/field/symmetry
	// follow.
	if len(fields) != 5 {
		return Result[T]{}, rd.abort("malformed banner: expected 5 tokens")
	}
	if fields[1] != "matrix" {
		return Result[T]{}, rd.abort("unsupported object type " + fields[1])
	}
	if fields[2] != "coordinate" {
		return Result[T]{}, rd.abort("unsupported format " + fields[2] + ": only coordinate is supported")
	}

	var fld field
	switch fields[3] {
	case "real":
		fld = fieldReal
	case "double":
		fld = fieldDouble
	case "integer":
		fld = fieldInteger
	case "pattern":
		fld = fieldPattern
	default:
		return Result[T]{}, rd.abort("unsupported field " + fields[3])
	}

	var sym symmetry
	switch fields[4] {
	case "general":
		sym = symmetryGeneral
	case "symmetric":
		sym = symmetrySymmetric
	case "skew-symmetric":
		sym = symmetrySkewSymmetric
	default:
		return Result[T]{}, rd.abort("unsupported symmetry " + fields[4] + " (hermitian and unknown symmetries are rejected)")
	}
	if sym == symmetrySkewSymmetric && rd.cfg.Negate == nil {
		return Result[T]{}, rd.abort("skew-symmetric file requires Config.Negate")
	}

	var dimLine string
	for {
		if !scanner.Scan() {
			return Result[T]{}, rd.abort("premature EOF reading dimension line")
		}
		dimLine = strings.TrimSpace(scanner.Text())
		if dimLine == "" || dimLine[0] != '%' {
			break
		}
	}

	dimFields := strings.Fields(dimLine)
	if len(dimFields) < 3 {
		return Result[T]{}, rd.abort("malformed dimension line")
	}
	nrows, err := strconv.ParseInt(dimFields[0], 10, 64)
	if err != nil {
		return Result[T]{}, rd.abort("malformed dimension line: " + err.Error())
	}
	ncols, err := strconv.ParseInt(dimFields[1], 10, 64)
	if err != nil {
		return Result[T]{}, rd.abort("malformed dimension line: " + err.Error())
	}
	nnz, err := strconv.ParseInt(dimFields[2], 10, 64)
	if err != nil {
		return Result[T]{}, rd.abort("malformed dimension line: " + err.Error())
	}
	shape := index.Shape{Nrows: index.Index(nrows), Ncols: index.Index(ncols)}

	tuples := make([]index.Tuple[T], 0, nnz)
	var loaded int64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		tok := strings.Fields(line)
		if len(tok) < 2 {
			if err := rd.warn("malformed tuple line: " + line); err != nil {
				return Result[T]{}, err
			}

			continue
		}

		row, errR := strconv.ParseInt(tok[0], 10, 64)
		col, errC := strconv.ParseInt(tok[1], 10, 64)
		if errR != nil || errC != nil {
			if err := rd.warn("malformed tuple indices: " + line); err != nil {
				return Result[T]{}, err
			}

			continue
		}

		if index.Index(row) < 1 || index.Index(row) > shape.Nrows {
			if err := rd.warn(fmt.Sprintf("row index %d out of range", row)); err != nil {
				return Result[T]{}, err
			}

			continue
		}
		if index.Index(col) < 1 || index.Index(col) > shape.Ncols {
			if err := rd.warn(fmt.Sprintf("column index %d out of range", col)); err != nil {
				return Result[T]{}, err
			}

			continue
		}

		var value T
		if fld == fieldPattern {
			value = rd.cfg.PatternValue
		} else {
			if len(tok) < 3 {
				if err := rd.warn("missing value for non-pattern field: " + line); err != nil {
					return Result[T]{}, err
				}

				continue
			}
			if rd.cfg.ParseValue == nil {
				return Result[T]{}, rd.abort("Config.ParseValue is required for non-pattern fields")
			}
			value, err = rd.cfg.ParseValue(tok[2])
			if err != nil {
				if err := rd.warn("malformed value: " + err.Error()); err != nil {
					return Result[T]{}, err
				}

				continue
			}
		}

		loaded++
		tuples = append(tuples, index.Tuple[T]{Row: index.Index(row - 1), Col: index.Index(col - 1), Value: value})
	}

	if loaded != nnz {
		if err := rd.warn(fmt.Sprintf("file is truncated: expected %d nonzeros but loaded %d", nnz, loaded)); err != nil {
			return Result[T]{}, err
		}
	}

	tuples = expandSymmetry(tuples, sym, rd.cfg.Negate)

	return Result[T]{Shape: shape, Tuples: tuples, LoadSuccessful: !rd.sawProblem}, nil
}

// warn reports a non-fatal diagnostic: it always marks the read as having
// seen a problem (so LoadSuccessful reports false even under a consumer
// that lets Read continue), and aborts only if the consumer's Warning
// call returns a non-nil error.
func (rd *reader[T]) warn(msg string) error {
	rd.sawProblem = true
	if err := rd.cfg.Consumer.Warning(msg); err != nil {
		return err
	}

	return nil
}

// expandSymmetry duplicates off-diagonal tuples per the header's symmetry:
// symmetric transposes (r, c, v) into an added (c, r, v); skew-symmetric
// does the same but negates the duplicate's value. general is a no-op.
func expandSymmetry[T any](tuples []index.Tuple[T], sym symmetry, negate func(T) T) []index.Tuple[T] {
	if sym == symmetryGeneral {
		return tuples
	}

	n := len(tuples)
	for i := 0; i < n; i++ {
		tu := tuples[i]
		if tu.Row == tu.Col {
			continue
		}
		if sym == symmetrySymmetric {
			tuples = append(tuples, index.Tuple[T]{Row: tu.Col, Col: tu.Row, Value: tu.Value})
		} else {
			tuples = append(tuples, index.Tuple[T]{Row: tu.Col, Col: tu.Row, Value: negate(tu.Value)})
		}
	}

	return tuples
}
