// File: facade.go
// Role: single dispatch entry point (C5) over the three algorithms.
package exchange

import "github.com/katalvlaran/deft/factor"

// Algorithm selects which exchangeability strategy IsExchangeable runs.
type Algorithm int

const (
	// Naive is the brute-force permutation oracle.
	Naive Algorithm = iota

	// Filter is Naive preceded by a bucket-multiset short-circuit.
	Filter

	// Deft is the bucket-constrained backtracking search.
	Deft
)

// String renders the algorithm name as used in the corpus/CSV naming
// scheme ("naive", "filter", "deft").
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Filter:
		return "filter"
	case Deft:
		return "deft"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a CLI/CSV algorithm name to an Algorithm, reporting ok
// = false for anything outside {naive, filter, deft}. Unlike IsExchangeable,
// this never panics — it exists precisely so trust boundaries (cmd/deftrun)
// can turn an unrecognized name into a clean error instead of a panic.
func ParseAlgorithm(name string) (algo Algorithm, ok bool) {
	switch name {
	case "naive":
		return Naive, true
	case "filter":
		return Filter, true
	case "deft":
		return Deft, true
	default:
		return 0, false
	}
}

// IsExchangeable dispatches to the selected algorithm and returns whether
// f1 and f2 are exchangeable. opts configure Deft's cutoff and are ignored
// by Naive/Filter.
//
// An Algorithm outside {Naive, Filter, Deft} is a programmer error, not a
// data error: IsExchangeable panics with ErrUnknownAlgorithm rather than
// returning a sentinel false, so a caller's own bug cannot silently
// masquerade as a negative exchangeability result.
func IsExchangeable(algo Algorithm, f1, f2 *factor.Factor, opts ...Option) bool {
	switch algo {
	case Naive:
		return IsExchangeableNaive(f1, f2)
	case Filter:
		return IsExchangeableFilter(f1, f2)
	case Deft:
		return IsExchangeableDeft(f1, f2, opts...)
	default:
		panic(ErrUnknownAlgorithm)
	}
}
