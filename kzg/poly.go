package kzg

// Polynomial is a dense polynomial over F_r: Polynomial[i] is the
// coefficient of x^i. A nil or zero-length Polynomial is the zero
// polynomial.
type Polynomial []Scalar

// Eval evaluates p at x by Horner's method. The zero polynomial evaluates
// to zero everywhere.
func (p Polynomial) Eval(x Scalar) Scalar {
	if len(p) == 0 {
		return FrZero()
	}
	out := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		out.Mul(&out, &x)
		out.Add(&out, &p[i])
	}
	return out
}

// LongDiv computes the quotient q = p / divisor, requiring an exact
// division (zero remainder). It is used with divisors of the form x - x0
// and x^n - x0^n, both monic, for which the quotient is exact whenever p
// vanishes at x0 (resp. on the coset).
//
// Returns ErrBadArgs if divisor is empty or identically zero. If p is
// shorter than divisor the result is the zero polynomial. Returns
// ErrProof if the division leaves a non-zero remainder.
func (p Polynomial) LongDiv(divisor Polynomial) (Polynomial, error) {
	if len(divisor) == 0 || divisor.isZero() {
		return nil, ErrBadArgs
	}
	if len(p) < len(divisor) {
		return Polynomial{}, nil
	}

	// Work on a mutable copy; a is consumed coefficient by coefficient as
	// the standard schoolbook division algorithm subtracts off multiples
	// of divisor's leading term.
	a := make(Polynomial, len(p))
	copy(a, p)

	var divisorLeadInv Scalar
	divisorLeadInv.Inverse(&divisor[len(divisor)-1])

	outLen := len(p) - len(divisor) + 1
	out := make(Polynomial, outLen)

	for i := outLen - 1; i >= 0; i-- {
		var coeff Scalar
		coeff.Mul(&a[i+len(divisor)-1], &divisorLeadInv)
		out[i] = coeff

		for j := 0; j < len(divisor); j++ {
			var term Scalar
			term.Mul(&coeff, &divisor[j])
			a[i+j].Sub(&a[i+j], &term)
		}
	}

	for _, rem := range a[:len(divisor)-1] {
		if !rem.IsZero() {
			return nil, ErrProof
		}
	}
	return out, nil
}

func (p Polynomial) isZero() bool {
	for i := range p {
		if !p[i].IsZero() {
			return false
		}
	}
	return true
}
