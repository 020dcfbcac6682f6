package kzg

import "errors"

// ErrBadArgs signals a caller-violated precondition: a non-power-of-two
// size, a polynomial longer than the trusted setup, a zero divisor, a
// domain too small for the request, or a chunk length that does not
// divide half of the FK20 domain width.
var ErrBadArgs = errors.New("kzg: bad arguments")

// ErrProof signals an internal algebraic inconsistency the caller could
// not have foreseen from its inputs alone, such as a polynomial division
// that was required to be exact but left a non-zero remainder. Callers
// should surface it rather than branch on it.
var ErrProof = errors.New("kzg: internal algebraic inconsistency")
