// File: bucket.go
// Role: group factor potentials by Hamming signature; order buckets by
// ascending degree of freedom for DEFT's pruning heuristic.
package bucket

import (
	"sort"

	"github.com/katalvlaran/deft/factor"
)

// Buckets returns, for every reachable signature, the multiset (order
// irrelevant) of potentials at assignments with that signature.
//
// Complexity: O(2^n).
func Buckets(f *factor.Factor) map[Signature][]float64 {
	n := f.Arity()
	out := make(map[Signature][]float64)
	for _, c := range factor.Assignments(n) {
		s := of(c)
		out[s] = append(out[s], f.Potential(c))
	}

	return out
}

// BucketsOrdered groups f's potentials by signature, same as Buckets, and
// additionally returns:
//   - order: the signatures in the key order described below,
//   - configs: for each signature, the assignments that produced each
//     entry, aligned index-for-index with the returned values slice.
//
// Ordering: when dosort is false, signatures appear in first-insertion
// order (the order in which factor.Assignments first exposes them). When
// dosort is true, signatures are sorted ascending by degree of freedom
// (DegreeOfFreedom of the bucket's value sequence) — this heuristic pushes
// the most constraining (least ambiguous) buckets first, so DEFT's
// intersections prune fastest. Ties are broken stably on first-insertion
// order.
//
// Complexity: O(2^n) to build, plus O(k log k) to sort the k distinct
// signatures when dosort is requested.
func BucketsOrdered(f *factor.Factor, dosort bool) (order []Signature, values map[Signature][]float64, configs map[Signature][]factor.Assignment) {
	n := f.Arity()
	values = make(map[Signature][]float64)
	configs = make(map[Signature][]factor.Assignment)
	seen := make(map[Signature]bool)

	for _, c := range factor.Assignments(n) {
		s := of(c)
		if !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
		values[s] = append(values[s], f.Potential(c))
		configs[s] = append(configs[s], c)
	}

	if dosort {
		dof := make(map[Signature]int, len(order))
		for _, s := range order {
			dof[s] = DegreeOfFreedom(values[s])
		}
		sort.SliceStable(order, func(i, j int) bool {
			return dof[order[i]] < dof[order[j]]
		})
	}

	return order, values, configs
}

// DegreeOfFreedom computes prod_{v in unique(values)} count(values == v):
// lower is more constraining (the bucket's values are more distinguishable
// from one another).
//
// Complexity: O(len(values)).
func DegreeOfFreedom(values []float64) int {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	dof := 1
	for _, c := range counts {
		dof *= c
	}

	return dof
}

// Equal reports whether two bucket multisets are identical: same set of
// signatures, and for each signature, the same multiset of potentials
// (order-independent). Used as the "filter" algorithm's necessary-condition
// check.
func Equal(a, b map[Signature][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for s, av := range a {
		bv, ok := b[s]
		if !ok || !sameMultiset(av, bv) {
			return false
		}
	}

	return true
}

func sameMultiset(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	ac := make(map[float64]int, len(a))
	for _, v := range a {
		ac[v]++
	}
	for _, v := range b {
		ac[v]--
	}
	for _, c := range ac {
		if c != 0 {
			return false
		}
	}

	return true
}
