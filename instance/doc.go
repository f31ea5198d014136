// Package instance generates factor-pair test corpora and provides the
// binary on-disk format exchanged between the corpus generator and the
// runner CLI.
//
// Generate builds an (F1, F2) pair of a requested arity, shape (kind), and
// target outcome (iseq), using a locally threaded *rand.Rand so concurrent
// generation never races on shared RNG state. Save/Load are a CBOR codec
// around the pair: the wire format is deliberately opaque, round-trip
// fidelity is the only contract callers may depend on.
package instance
