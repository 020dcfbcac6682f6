package kzg

import "math/big"

// ComputeProofMulti computes a KZG coset opening proof for p at the n
// points x0*omega^i (omega an n-th primitive root of unity, drawn from
// ks.FS's domain): the commitment to the quotient
// q = (p(x) - I(x)) / (x^n - x0^n), where I interpolates p's own values on
// the coset. n must be a power of two and at most ks.FS.MaxWidth.
//
// By the polynomial remainder theorem, dividing p by x^n - x0^n directly
// would leave exactly I(x) as the remainder. LongDiv requires an exact
// division, so I is subtracted from p explicitly first instead of being
// discarded as a remainder; the quotient is identical either way.
func ComputeProofMulti(p Polynomial, x0 Scalar, n uint64, ks *KZGSettings) (G1Point, error) {
	if n == 0 || !isPowerOfTwo(n) || n > ks.FS.MaxWidth {
		return G1Point{}, ErrBadArgs
	}

	omega := ks.FS.nthRoot(n)
	ys := make([]Scalar, n)
	point := x0
	for i := uint64(0); i < n; i++ {
		ys[i] = p.Eval(point)
		point.Mul(&point, &omega)
	}

	numerator, err := subtractCosetInterpolation(p, ys, x0, ks.FS)
	if err != nil {
		return G1Point{}, err
	}

	var xPowN Scalar
	xPowN.Exp(x0, new(big.Int).SetUint64(n))

	divisor := make(Polynomial, n+1)
	var negXPowN Scalar
	negXPowN.Neg(&xPowN)
	divisor[0] = negXPowN
	for i := uint64(1); i < n; i++ {
		divisor[i] = FrZero()
	}
	divisor[n] = FrOne()

	quotient, err := numerator.LongDiv(divisor)
	if err != nil {
		return G1Point{}, err
	}
	return CommitToPoly(quotient, ks)
}

// CheckProofMulti verifies that commitment opens to ys[i] at x0*omega^i for
// every i, by interpolating ys (an inverse FFT over the coset) and
// checking e(commitment - [I(s)]_1, [1]_2) == e(proof, [s^n]_2 - [x0^n]_2).
// len(ys) must be a power of two.
func CheckProofMulti(commitment, proof G1Point, x0 Scalar, ys []Scalar, ks *KZGSettings) (bool, error) {
	n := uint64(len(ys))
	if n == 0 || !isPowerOfTwo(n) {
		return false, ErrBadArgs
	}
	if uint64(len(ks.SecretG2)) <= n {
		return false, ErrBadArgs
	}

	interpolationPoly, err := cosetInterpolation(ys, x0, ks.FS)
	if err != nil {
		return false, err
	}

	var xPowN Scalar
	xPowN.Exp(x0, new(big.Int).SetUint64(n))
	g2Gen := G2Generator()
	xNG2 := MulG2(&g2Gen, &xPowN)
	xnMinusYn := SubG2(&ks.SecretG2[n], &xNG2)

	is1, err := LinCombG1(ks.SecretG1[:len(interpolationPoly)], interpolationPoly)
	if err != nil {
		return false, err
	}
	commitMinusInterpolation := SubG1(&commitment, &is1)

	return PairingsVerify(&commitMinusInterpolation, &g2Gen, &proof, &xnMinusYn), nil
}

// nthRoot returns a primitive n-th root of unity drawn from fs's domain,
// for n a power of two dividing fs.MaxWidth.
func (fs *FFTSettings) nthRoot(n uint64) Scalar {
	stride := fs.MaxWidth / n
	return fs.ExpandedRootsOfUnity[stride]
}

// cosetInterpolation inverse-FFTs ys (values on the coset x0*subgroup) into
// the coefficients of the unique degree-<n polynomial I with
// I(x0*omega^i) = ys[i] for every i. Because the subgroup FFT assumes
// points are bare n-th roots of unity, the raw inverse-FFT coefficients
// are rescaled by x0^-i to account for the coset shift.
func cosetInterpolation(ys []Scalar, x0 Scalar, fs *FFTSettings) (Polynomial, error) {
	coeffs, err := fs.FFT(ys, true)
	if err != nil {
		return nil, err
	}

	var x0Inv Scalar
	x0Inv.Inverse(&x0)
	scale := FrOne()
	for i := range coeffs {
		coeffs[i].Mul(&coeffs[i], &scale)
		scale.Mul(&scale, &x0Inv)
	}
	return Polynomial(coeffs), nil
}

// subtractCosetInterpolation returns p - I, where I is the coset
// interpolation of ys at x0 (see cosetInterpolation). The result is as
// long as the longer of the two, so a coset wider than p yields the
// zero difference rather than an error.
func subtractCosetInterpolation(p Polynomial, ys []Scalar, x0 Scalar, fs *FFTSettings) (Polynomial, error) {
	interp, err := cosetInterpolation(ys, x0, fs)
	if err != nil {
		return nil, err
	}

	outLen := len(p)
	if len(interp) > outLen {
		outLen = len(interp)
	}
	out := make(Polynomial, outLen)
	copy(out, p)
	for i := range interp {
		out[i].Sub(&out[i], &interp[i])
	}
	return out, nil
}
