package config

const (
	defaultLeafSplitThreshold = 10_240
	defaultDenseSpaMaxCount   = 100_000_000
	defaultDenseSpaMaxBytes   = 10 * 1024 * 1024 // 10 MiB
)

// AllocatorPolicy tags which arena a given allocation belongs to. Go has
// no pluggable allocator types, so this module carries the policy only as
// a hint consumed by the Config.Allocator and Config.TempAllocator hooks,
// which default to the Go runtime allocator
// (plain make/new) and may be overridden with a sync.Pool-backed hook for
// high-churn scratch allocations (the dense SpA's value buffer).
type AllocatorPolicy uint8

const (
	// LongLived tags allocations expected to outlive a single multiply:
	// tree nodes, leaf arrays.
	LongLived AllocatorPolicy = iota
	// Scratch tags allocations local to one multiply task: SpA buffers,
	// temporary column vectors, task queue entries.
	Scratch
)

// AllocFunc allocates a slice of n elements of type T for the given policy.
type AllocFunc[T any] func(policy AllocatorPolicy, n int) []T

// defaultAlloc is the fallback allocator: a plain make call ignoring policy.
func defaultAlloc[T any](_ AllocatorPolicy, n int) []T {
	return make([]T, n)
}

// Alloc retrieves hook as an AllocFunc[T] and applies it, falling back to
// defaultAlloc when hook is nil or holds a func for some other type. Callers
// pass c.Allocator or c.TempAllocator as hook; T is fixed by the call site,
// since a Config instance is shared across every value type the core
// builds trees over and so cannot itself carry a typed field.
func Alloc[T any](hook any, policy AllocatorPolicy, n int) []T {
	if fn, ok := hook.(AllocFunc[T]); ok {
		return fn(policy, n)
	}

	return defaultAlloc[T](policy, n)
}

// Config holds every tunable the core consults. Construct with New and
// Option functions; never mutate a Config's fields after it has been
// handed to a multiply or tree-construction call, since those calls may
// read it concurrently from task-queue-scheduled work.
type Config struct {
	// LeafSplitThreshold is the maximum tuple count a leaf may hold before
	// tree construction subdivides it further.
	LeafSplitThreshold int

	// DenseSpaMaxCount is the largest nrows for which the dense SpA is
	// eligible.
	DenseSpaMaxCount int64
	// DenseSpaMaxBytes is the largest dense-SpA array size in bytes.
	DenseSpaMaxBytes int64

	// ShouldUseDenseSpA decides dense vs. map SpA for a column of the given
	// row count. flops is advisory and may be zero; the default chooser ignores it.
	ShouldUseDenseSpA func(nrows int64, flops int64) bool

	// ShouldUseCSCIndex decides whether a DCSC builder should also build a
	// full CSC column-pointer array alongside the compressed columns.
	ShouldUseCSCIndex func(ncols int64, numNonemptyCols int64) bool

	// ShouldUseDCSCBoolMask decides whether a DCSC builder should build a
	// boolean column-presence bitmask instead of (or in addition to
	// skipping) the CSC pointer array.
	ShouldUseDCSCBoolMask func(ncols int64, numNonemptyCols int64) bool

	// Allocator, if set, holds an AllocFunc[T] consulted in place of the Go
	// runtime allocator for LongLived allocations (a DCSC leaf's CSC
	// column-pointer array and column bool mask). Retrieve it with Alloc[T](c.Allocator, LongLived, n); a nil
	// Allocator or one holding a func for a different T falls back to a
	// plain make.
	Allocator any

	// TempAllocator is Allocator's Scratch-policy counterpart, consulted
	// for per-task allocations (the dense SpA's value buffer).
	TempAllocator any
}

// Option configures a Config instance.
type Option func(*Config)

// WithLeafSplitThreshold overrides LeafSplitThreshold.
func WithLeafSplitThreshold(n int) Option {
	return func(c *Config) { c.LeafSplitThreshold = n }
}

// WithDenseSpaLimits overrides DenseSpaMaxCount and DenseSpaMaxBytes.
func WithDenseSpaLimits(maxCount, maxBytes int64) Option {
	return func(c *Config) {
		c.DenseSpaMaxCount = maxCount
		c.DenseSpaMaxBytes = maxBytes
	}
}

// WithDenseSpaPredicate overrides ShouldUseDenseSpA entirely, replacing the
// default DenseSpaMaxCount check; spa.New still applies the
// DenseSpaMaxBytes limit alongside it.
func WithDenseSpaPredicate(fn func(nrows, flops int64) bool) Option {
	return func(c *Config) { c.ShouldUseDenseSpA = fn }
}

// WithCSCIndexPredicate overrides ShouldUseCSCIndex.
func WithCSCIndexPredicate(fn func(ncols, numNonemptyCols int64) bool) Option {
	return func(c *Config) { c.ShouldUseCSCIndex = fn }
}

// WithDCSCBoolMaskPredicate overrides ShouldUseDCSCBoolMask.
func WithDCSCBoolMaskPredicate(fn func(ncols, numNonemptyCols int64) bool) Option {
	return func(c *Config) { c.ShouldUseDCSCBoolMask = fn }
}

// WithAllocator overrides the LongLived allocator hook for value type T.
func WithAllocator[T any](fn AllocFunc[T]) Option {
	return func(c *Config) { c.Allocator = fn }
}

// WithTempAllocator overrides the Scratch allocator hook for value type T.
func WithTempAllocator[T any](fn AllocFunc[T]) Option {
	return func(c *Config) { c.TempAllocator = fn }
}

// New constructs a Config with defaults applied, then runs opts
// left-to-right over it, mirroring this module's other option-pattern
// constructors.
//
// Defaults: LeafSplitThreshold=10240, DenseSpaMaxCount=100e6,
// DenseSpaMaxBytes=10MiB, ShouldUseDenseSpA true up to DenseSpaMaxCount
// rows (the byte-size half of the check lives in DenseSpaFitsBytes, since
// only the caller knows sizeof(T)), ShouldUseCSCIndex true when at least
// 1/8 of the leaf's columns are non-empty, ShouldUseDCSCBoolMask true
// otherwise whenever any column is non-empty.
func New(opts ...Option) Config {
	c := Config{
		LeafSplitThreshold: defaultLeafSplitThreshold,
		DenseSpaMaxCount:   defaultDenseSpaMaxCount,
		DenseSpaMaxBytes:   defaultDenseSpaMaxBytes,
	}
	c.ShouldUseDenseSpA = func(nrows, _ int64) bool {
		return nrows <= c.DenseSpaMaxCount
	}
	c.ShouldUseCSCIndex = func(ncols, numNonemptyCols int64) bool {
		if ncols == 0 {
			return false
		}

		return numNonemptyCols*8 >= ncols
	}
	c.ShouldUseDCSCBoolMask = func(ncols, numNonemptyCols int64) bool {
		return ncols > 0 && numNonemptyCols > 0 && numNonemptyCols*8 < ncols
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// DenseSpaFitsBytes reports whether nrows*valueSize fits within
// DenseSpaMaxBytes, the byte-size half of the dense-SpA eligibility check. Callers pass
// the concrete size of their value type T (e.g. unsafe.Sizeof or a fixed
// constant for fixed-width T).
func (c Config) DenseSpaFitsBytes(nrows int64, valueSize int64) bool {
	return nrows*valueSize <= c.DenseSpaMaxBytes
}
