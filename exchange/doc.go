// Package exchange decides factor exchangeability: given two factors, is
// there a permutation of one factor's arguments that makes its potential
// table identical, position for position, to the other's?
//
// Three strategies are provided, dispatched through IsExchangeable:
//
//   - Naive: brute-force search over every permutation of [0, n). O(n!*2^n).
//     The oracle the other two are validated against.
//   - Filter: naive, preceded by a bucket-multiset mismatch short-circuit.
//   - Deft: bucket-constrained backtracking (DEFT — Detection of
//     Exchangeable Factors). Builds per-bucket position-swap candidate
//     sets, intersects them across a bounded prefix of buckets, then
//     backtracks over the resulting (much smaller) search space. Every
//     accepted candidate is re-verified by full-table comparison before
//     being returned, so DEFT's answer is sound regardless of how
//     aggressively the pruning heuristic narrows candidates.
//
// All three treat "exchangeable" identically: a coordinate permutation of
// one factor's own argument positions (never a substitution of the other
// factor's variables) that reproduces the other's table exactly. Argument
// *names* are never compared; only position-indexed potentials are.
package exchange
