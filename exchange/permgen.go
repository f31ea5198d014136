// File: permgen.go
// Role: deterministic, fixed-order enumeration of permutations of [0, n),
// shared by the naive/filter oracle and by factor-permutation application.
package exchange

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// nextPermutation advances p to its lexicographic successor in place and
// reports whether one existed. When p is already the last permutation
// (strictly descending), it returns false and leaves p unspecified for
// further use (callers stop iterating).
//
// This is the classic in-place "next permutation" algorithm, fixing one
// total, reproducible enumeration order: the naive oracle's "first match
// wins" tie-break depends on it. (DEFT's backtracking does not use it; it
// walks sorted candidate sets in backtrackPermutation.)
func nextPermutation(p []int) bool {
	n := len(p)
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// applyPerm gathers c through perm: out[i] = c[perm[i]]. This is the same
// gather convention factor.PermuteInPlace uses for rewriting table keys; it
// is duplicated here (on a plain []bool) to evaluate a candidate
// permutation against live assignments without mutating a Factor.
func applyPerm(c []bool, perm []int) []bool {
	out := make([]bool, len(c))
	for i, p := range perm {
		out[i] = c[p]
	}

	return out
}
