package kzg

// CommitToPoly computes the KZG commitment [p(s)]_1 = sum_i p[i] * [s^i]_1
// to a polynomial in coefficient form. The zero polynomial commits to the
// G1 identity.
func CommitToPoly(p Polynomial, ks *KZGSettings) (G1Point, error) {
	if uint64(len(p)) > ks.Length {
		return G1Point{}, ErrBadArgs
	}
	if len(p) == 0 {
		return G1Identity(), nil
	}
	return LinCombG1(ks.SecretG1[:len(p)], p)
}

// ComputeProofSingle computes a KZG opening proof for p at x0: the
// commitment to the quotient q = (p - p(x0)) / (x - x0). Subtracting the
// evaluation first makes the division exact.
func ComputeProofSingle(p Polynomial, x0 Scalar, ks *KZGSettings) (G1Point, error) {
	y0 := p.Eval(x0)

	numerator := make(Polynomial, len(p))
	copy(numerator, p)
	if len(numerator) > 0 {
		numerator[0].Sub(&numerator[0], &y0)
	}

	var negX0 Scalar
	negX0.Neg(&x0)
	divisor := Polynomial{negX0, FrOne()}

	quotient, err := numerator.LongDiv(divisor)
	if err != nil {
		return G1Point{}, err
	}
	return CommitToPoly(quotient, ks)
}

// CheckProofSingle verifies that commitment opens to y at x via proof, by
// checking e(commitment - [y]_1, [1]_2) == e(proof, [s]_2 - [x]_2). The
// returned error is non-nil only when the check could not be attempted
// (the setup is too small to hold [s]_2); the boolean result is the
// actual accept/reject verdict.
func CheckProofSingle(commitment, proof G1Point, x, y Scalar, ks *KZGSettings) (bool, error) {
	if ks.Length < 2 {
		return false, ErrBadArgs
	}

	g2Gen := G2Generator()
	xG2 := MulG2(&g2Gen, &x)
	sMinusX := SubG2(&ks.SecretG2[1], &xG2)

	g1Gen := G1Generator()
	yG1 := MulG1(&g1Gen, &y)
	commitmentMinusY := SubG1(&commitment, &yG1)

	return PairingsVerify(&commitmentMinusY, &g2Gen, &proof, &sMinusX), nil
}
