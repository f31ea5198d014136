package factor

import "errors"

// Sentinel errors for the factor package. Every message is prefixed with
// "factor: " for consistency and easy grepping across logs. Callers should
// use errors.Is, never string comparison.
var (
	// ErrArityMismatch indicates two factors have a different number of args.
	ErrArityMismatch = errors.New("factor: arity mismatch")

	// ErrIncompleteTable indicates a factor's table is missing one or more of
	// the 2^n required assignments (IsValid would report false).
	ErrIncompleteTable = errors.New("factor: incomplete potential table")

	// ErrEmptyArgs indicates a factor was constructed with zero arguments;
	// every factor has arity n >= 1.
	ErrEmptyArgs = errors.New("factor: factor must have at least one argument")

	// ErrBadPermutation indicates a permutation passed to PermuteInPlace is
	// not a bijection on [0, n).
	ErrBadPermutation = errors.New("factor: not a valid permutation")
)
