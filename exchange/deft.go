// File: deft.go
// Role: DEFT (Detection of Exchangeable Factors) — the bucket-constrained
// backtracking search (C4).
//
// DEFT builds, for each of F2's argument positions, a candidate set of F1
// positions it might correspond to under some global permutation, by
// intersecting per-bucket "value co-occurrence" evidence across a bounded
// prefix of F2's buckets (ordered by ascending degree of freedom, so the
// most constraining buckets are processed first). It then backtracks over
// the resulting candidate sets to find a bijection, and — because the
// candidate sets are only a pruning heuristic, not a proof — re-verifies
// every candidate by full-table comparison before accepting it. That final
// check is what makes DEFT's answer sound independent of the cutoff depth.
package exchange

import (
	"sort"

	"github.com/katalvlaran/deft/bucket"
	"github.com/katalvlaran/deft/factor"
)

// DefaultCutoff is the number of (ascending-DoF) buckets DEFT inspects
// before moving to backtracking. Final-leaf verification makes this a pure
// speed/pruning trade-off, never a soundness one.
const DefaultCutoff = 5

// Option configures a DEFT invocation.
type Option func(*config)

type config struct {
	cutoff int
}

// WithCutoff overrides DefaultCutoff. A cutoff of 0 disables pruning
// entirely (DEFT degrades to an exhaustive backtracking search, still
// sound, just unconstrained).
func WithCutoff(n int) Option {
	return func(c *config) { c.cutoff = n }
}

// positionSet is a candidate set of argument positions; present-in-map
// membership, no meaningful value.
type positionSet map[int]bool

// IsExchangeableDeft reports whether f1 and f2 are exchangeable using the
// DEFT algorithm. Arity mismatch is a fast false.
func IsExchangeableDeft(f1, f2 *factor.Factor, opts ...Option) bool {
	if f1.Arity() != f2.Arity() {
		return false
	}

	cfg := config{cutoff: DefaultCutoff}
	for _, o := range opts {
		o(&cfg)
	}

	f1c, f2c := f1.DeepCopy(), f2.DeepCopy()
	n := f1c.Arity()

	_, values1, configs1 := bucket.BucketsOrdered(f1c, false)
	order2, values2, configs2 := bucket.BucketsOrdered(f2c, true)

	var factorSet map[int]positionSet // nil == "empty"
	processed := 0
	for _, s := range order2 {
		if processed >= cfg.cutoff {
			break
		}
		processed++

		v1, v2 := values1[s], values2[s]
		if !sameValueMultiset(v1, v2) {
			return false
		}

		bucketSet := buildBucketSet(n, v1, v2, configs1[s], configs2[s])
		if bucketSet == nil {
			return false
		}

		if factorSet == nil {
			factorSet = bucketSet
		} else if !intersectSets(factorSet, bucketSet) {
			return false
		}
	}

	_, ok := backtrackPermutation(factorSet, n, func(perm []int) bool {
		candidate := f2.DeepCopy()
		if err := candidate.PermuteInPlace(perm); err != nil {
			return false
		}

		return isSwapSuccessful(f1, candidate)
	})

	return ok
}

// buildBucketSet derives the per-position candidate-set contribution of one
// bucket (signature already fixed by the caller), given F1's and F2's
// potential/configuration sequences restricted to that bucket.
//
// Homogeneous fast-path: if every potential in v2 is equal, no positional
// information is gained from this bucket, so every position maps to the
// full candidate set.
//
// Otherwise, for every (index, value) pair in v2 (an F2 bucket entry):
//   - row is F2's configuration at that index.
//   - I is the set of F1 bucket indices whose potential equals value (the
//     true correspondent, if one exists, is always in I, since a valid
//     global permutation preserves potential values exactly).
//   - for each k in I, otherRow is F1's configuration at k; positions of
//     row are related to otherRow by matching boolean value
//     (valuePositions), and the resulting per-position candidate sets are
//     unioned over all k in I (only one k needs to be the true
//     correspondent) then intersected across (index, value) items (the
//     same global permutation must satisfy every item simultaneously).
//
// Returns nil if any position's candidate set becomes empty, signalling a
// bucket that cannot be reconciled under any permutation.
func buildBucketSet(n int, v1, v2 []float64, configs1, configs2 []factor.Assignment) map[int]positionSet {
	if allEqual(v2) {
		full := make(map[int]positionSet, n)
		for p := 0; p < n; p++ {
			full[p] = fullSet(n)
		}

		return full
	}

	var bucketSet map[int]positionSet
	for index, value := range v2 {
		row := configs2[index]
		itemSet := make(map[int]positionSet, n)
		for p := 0; p < n; p++ {
			itemSet[p] = positionSet{}
		}

		for k, v := range v1 {
			if v != value {
				continue
			}
			otherRow := configs1[k]
			vp := valuePositions(otherRow)
			for p := 0; p < n; p++ {
				for _, q := range vp[row[p]] {
					itemSet[p][q] = true
				}
			}
		}

		if bucketSet == nil {
			bucketSet = itemSet
		} else if !intersectSets(bucketSet, itemSet) {
			return nil
		}
	}

	return bucketSet
}

// valuePositions groups a configuration's positions by the boolean value at
// each position, returning indices in ascending order.
func valuePositions(row factor.Assignment) map[bool][]int {
	vp := map[bool][]int{true: {}, false: {}}
	for p, v := range row {
		vp[v] = append(vp[v], p)
	}

	return vp
}

func fullSet(n int) positionSet {
	s := make(positionSet, n)
	for i := 0; i < n; i++ {
		s[i] = true
	}

	return s
}

// sameValueMultiset reports whether a and b contain the same potentials
// with the same multiplicities, independent of order — the per-bucket
// necessary condition checked within DEFT's bounded prefix.
func sameValueMultiset(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[float64]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

func allEqual(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return false
		}
	}

	return true
}

// intersectSets intersects a with b key-wise, driven by a's keys: for every
// key of a, a[key] <- a[key] ∩ b[key]. Returns false (and may leave a
// partially mutated) if any entry becomes empty. Every key set here arises
// from positions [0, n), so a and b's key domains always coincide; this is
// asserted defensively rather than silently tolerated.
func intersectSets(a, b map[int]positionSet) bool {
	for key, aSet := range a {
		bSet, ok := b[key]
		if !ok {
			panic("exchange: intersectSets called with mismatched key domains")
		}
		for q := range aSet {
			if !bSet[q] {
				delete(aSet, q)
			}
		}
		if len(aSet) == 0 {
			return false
		}
	}

	return true
}

// backtrackPermutation searches factorSet (position -> candidate position
// set; a nil or partial factorSet is treated as "fully unconstrained" for
// the missing positions) for a bijection on [0, n), visiting keys in
// ascending position order and each key's candidates in ascending order —
// a fixed, reproducible search order, so repeated runs over identical
// inputs explore the same tree.
//
// curr[p] = q means F2 position p is tentatively assigned to F1 position q.
// At every leaf, the swap rule curr is expanded into a full permutation pi via
// pi[curr[p]] = p for every p: applying pi (gather convention,
// factor.PermuteInPlace) to a copy of F2 reindexes it into F1's position
// scheme. pi is passed to accept; the search returns the first pi accept
// approves, and keeps backtracking past every pi it rejects.
func backtrackPermutation(factorSet map[int]positionSet, n int, accept func(pi []int) bool) ([]int, bool) {
	candidates := make([][]int, n)
	for p := 0; p < n; p++ {
		set, ok := factorSet[p]
		if !ok {
			set = fullSet(n)
		}
		candidates[p] = sortedKeys(set)
	}

	curr := make([]int, n)
	used := make([]bool, n)

	var rec func(depth int) bool
	rec = func(depth int) bool {
		if depth == n {
			pi := identity(n)
			for p := 0; p < n; p++ {
				pi[curr[p]] = p
			}

			return accept(pi)
		}
		for _, q := range candidates[depth] {
			if used[q] {
				continue
			}
			used[q] = true
			curr[depth] = q
			if rec(depth + 1) {
				return true
			}
			used[q] = false
		}

		return false
	}

	if !rec(0) {
		return nil, false
	}

	pi := identity(n)
	for p := 0; p < n; p++ {
		pi[curr[p]] = p
	}

	return pi, true
}

func sortedKeys(s positionSet) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// isSwapSuccessful is the mandatory full-table re-verification: for every
// assignment c, f1's potential must equal permuted's potential. This is the
// sole source of DEFT's soundness; pruning above this line may be
// arbitrarily loose or tight without affecting correctness.
func isSwapSuccessful(f1, permuted *factor.Factor) bool {
	for _, c := range factor.Assignments(f1.Arity()) {
		if f1.Potential(c) != permuted.Potential(c) {
			return false
		}
	}

	return true
}
