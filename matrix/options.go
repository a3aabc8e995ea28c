package matrix

import "github.com/lvlath-labs/quadmat/mmio"

// LoadOptions configures Load, mirroring the functional-options pattern
// used throughout this module's other constructors.
type LoadOptions[T any] struct {
	Consumer     mmio.Consumer
	ParseValue   func(token string) (T, error)
	PatternValue T
	Negate       func(T) T
}

// LoadOption configures a LoadOptions instance.
type LoadOption[T any] func(*LoadOptions[T])

// WithConsumer overrides the mmio.Consumer used while reading.
func WithConsumer[T any](c mmio.Consumer) LoadOption[T] {
	return func(o *LoadOptions[T]) { o.Consumer = c }
}

// WithValueParser overrides how a real/double/integer field token is
// parsed into T.
func WithValueParser[T any](fn func(token string) (T, error)) LoadOption[T] {
	return func(o *LoadOptions[T]) { o.ParseValue = fn }
}

// WithPatternValue overrides the value recorded for a pattern-field
// file's entries.
func WithPatternValue[T any](v T) LoadOption[T] {
	return func(o *LoadOptions[T]) { o.PatternValue = v }
}

// WithNegate supplies the additive inverse function required to load a
// skew-symmetric file.
func WithNegate[T any](fn func(T) T) LoadOption[T] {
	return func(o *LoadOptions[T]) { o.Negate = fn }
}
