// Package dice provides the randomness abstraction for the pethatch game core.
//
// Every probabilistic decision in the engine (initiative tie-breaks, skill
// procs, critical hits, reward ranges, skill draws) samples its Source
// independently; nothing reuses a draw for two purposes.
package dice

// Source is the randomness provider for game rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between returns a uniformly random int in [lo, hi] inclusive.
//
// Precondition: src must be non-nil; hi >= lo.
// Postcondition: lo <= result <= hi.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic("dice: Between called with hi < lo")
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports whether an event with probability p occurred.
// p is clamped to [0, 1]; sampling resolution is 1/10000.
//
// Precondition: src must be non-nil.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Intn(10000) < int(p*10000)
}

// Pick returns a uniformly random element of items.
//
// Precondition: src must be non-nil; items must be non-empty.
func Pick[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("dice: Pick called with empty slice")
	}
	return items[src.Intn(len(items))]
}

// CoinFlip returns true or false with equal probability.
//
// Precondition: src must be non-nil.
func CoinFlip(src Source) bool {
	return src.Intn(2) == 0
}
