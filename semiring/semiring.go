package semiring

// Semiring defines the two operators the multiply engine folds values
// through: Add combines two accumulated contributions, Mul combines a pair
// of operand values into one contribution. Neither operator is required to
// have an identity exposed to callers — the sparse accumulator only ever
// calls Add on values it has already seen at least one contribution for.
type Semiring[T any] struct {
	Name string
	Add  func(a, b T) T
	Mul  func(a, b T) T
}

// PlusTimes returns the conventional (+, ×) semiring over float64, the
// default used by every end-to-end scenario in this module's test suite.
func PlusTimes() Semiring[float64] {
	return Semiring[float64]{
		Name: "plus-times",
		Add:  func(a, b float64) float64 { return a + b },
		Mul:  func(a, b float64) float64 { return a * b },
	}
}

// PlusTimesInt64 is the integer analogue of PlusTimes, useful for counting
// semirings (e.g. path counts, adjacency powers).
func PlusTimesInt64() Semiring[int64] {
	return Semiring[int64]{
		Name: "plus-times-int64",
		Add:  func(a, b int64) int64 { return a + b },
		Mul:  func(a, b int64) int64 { return a * b },
	}
}

// Boolean is the (OR, AND) semiring used for reachability-style products
// over bool-valued matrices.
func Boolean() Semiring[bool] {
	return Semiring[bool]{
		Name: "or-and",
		Add:  func(a, b bool) bool { return a || b },
		Mul:  func(a, b bool) bool { return a && b },
	}
}

// MinPlus is the tropical (min, +) semiring over float64, used for
// shortest-path-style products.
func MinPlus() Semiring[float64] {
	return Semiring[float64]{
		Name: "min-plus",
		Add: func(a, b float64) float64 {
			if a < b {
				return a
			}

			return b
		},
		Mul: func(a, b float64) float64 { return a + b },
	}
}
