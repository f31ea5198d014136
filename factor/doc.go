// Package factor defines the discrete Boolean factor model: an ordered
// sequence of random variables (args) paired with a complete potential
// table keyed by assignment.
//
// A Factor is a plain value-oriented type: construction is explicit via New,
// mutation is confined to PermuteInPlace, and every other operation either
// reads (Arity, RVs, Potential, IsValid) or produces an independent copy
// (DeepCopy). Structural equality (Equal) compares name, argument order, and
// the full table — it is the ground truth that exchangeability search
// ultimately verifies against.
//
// Determinism: assignment enumeration is fixed by Assignments and reused by
// every caller (bucket construction, swap-set enumeration, corpus
// generation) so that iteration order never becomes an accidental source of
// divergence between algorithms or between runs.
package factor
