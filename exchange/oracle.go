// File: oracle.go
// Role: brute-force permutation search (C3) — the ground truth naive/filter
// algorithms are validated against.
package exchange

import (
	"github.com/katalvlaran/deft/bucket"
	"github.com/katalvlaran/deft/factor"
)

// PermuteArgs searches every permutation pi of [0, n) (n = f1.Arity(),
// which must equal f2.Arity()) in a fixed lexicographic order, accepting
// the first pi such that for every assignment c, f2.Potential(c) equals
// f1.Potential(pi . c) (pi . c gathers c through pi, matching
// factor.PermuteInPlace's convention). On acceptance, f1 is mutated in
// place via PermuteInPlace(factor.Inverse(pi)), so afterwards
// f1.Potential(c) == f2.Potential(c) for every c.
//
// Precondition: f1.Arity() == f2.Arity(). Callers (IsExchangeableNaive,
// IsExchangeableFilter) check arity before calling.
//
// Complexity: O(n! * 2^n) — this exists as ground truth and only scales to
// n ~= 8-10.
func PermuteArgs(f1, f2 *factor.Factor) bool {
	n := f1.Arity()
	assignments := factor.Assignments(n)
	perm := identity(n)

	for {
		if matchesUnderPerm(f1, f2, perm, assignments) {
			_ = f1.PermuteInPlace(factor.Inverse(perm)) // perm is always valid: built by identity+swaps
			return true
		}
		if !nextPermutation(perm) {
			return false
		}
	}
}

func matchesUnderPerm(f1, f2 *factor.Factor, perm []int, assignments []factor.Assignment) bool {
	for _, c := range assignments {
		shifted := factor.Assignment(applyPerm(c, perm))
		if f2.Potential(c) != f1.Potential(shifted) {
			return false
		}
	}

	return true
}

// IsExchangeableNaive reports whether f1 and f2 are exchangeable, using
// only the brute-force oracle. Arity mismatch is a fast false.
func IsExchangeableNaive(f1, f2 *factor.Factor) bool {
	if f1.Arity() != f2.Arity() {
		return false
	}

	return PermuteArgs(f1.DeepCopy(), f2.DeepCopy())
}

// IsExchangeableFilter reports whether f1 and f2 are exchangeable, adding a
// bucket-multiset necessary-condition short-circuit ahead of the oracle:
// arity mismatch or differing bucket multisets both fail fast without
// touching the permutation search.
func IsExchangeableFilter(f1, f2 *factor.Factor) bool {
	if f1.Arity() != f2.Arity() {
		return false
	}
	if !bucket.Equal(bucket.Buckets(f1), bucket.Buckets(f2)) {
		return false
	}

	return PermuteArgs(f1.DeepCopy(), f2.DeepCopy())
}
