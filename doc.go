// Package deft decides factor exchangeability for discrete Boolean
// factors: given two factors, is there a permutation of one factor's
// arguments that makes its potential table identical, position for
// position, to the other's?
//
// Three algorithms answer that question, compared for correctness and
// performance:
//
//   - naive — brute-force permutation search, the ground truth.
//   - filter — naive preceded by a bucket-multiset short-circuit.
//   - deft — bucket-constrained backtracking (DEFT, Detection of
//     Exchangeable Factors), the hard engineering in this repo.
//
// Packages, leaves first:
//
//	factor/    — the discrete Boolean factor model (args, potential table).
//	bucket/    — groups a factor's potentials by Hamming signature.
//	exchange/  — the three algorithms and their dispatch façade.
//	instance/  — corpus generation and the binary instance-file codec.
//	aggregate/ — results CSV parsing and grouped timing statistics.
//
// cmd/deftrun, cmd/deftgen, and cmd/deftagg wrap exchange, instance, and
// aggregate respectively into runnable CLIs, so a corpus can be generated,
// decided, and summarized end to end without leaving this repo.
//
//	go get github.com/katalvlaran/deft
package deft
