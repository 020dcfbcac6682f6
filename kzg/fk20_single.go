package kzg

// FK20SingleSettings holds the precomputed artefacts for the FK20
// single-proof engine: a trusted setup, an FFT domain of width N2, and the
// FFT-G1 of the extended setup vector used to turn the Toeplitz product
// into a circulant convolution.
type FK20SingleSettings struct {
	KS *KZGSettings

	// N2 is 2n, the setup's usable width for this engine: it produces
	// n2 single-point proofs per call, for p of length n2/2.
	N2 uint64

	// XExtFFT is FFTG1(xExt), precomputed once at construction time.
	XExtFFT []G1Point
}

// NewFK20SingleSettings builds an FK20SingleSettings for polynomials of
// length n2/2. n2 must be a power of two, at most ks.FS.MaxWidth, and at
// most ks.Length (the extended setup vector indexes secretG1 up to n-2).
func NewFK20SingleSettings(ks *KZGSettings, n2 uint64) (*FK20SingleSettings, error) {
	if n2 == 0 || !isPowerOfTwo(n2) || n2 > ks.FS.MaxWidth || n2 > ks.Length {
		return nil, ErrBadArgs
	}
	n := n2 / 2

	xExt := make([]G1Point, n2)
	for i := uint64(0); i < n2; i++ {
		xExt[i] = G1Identity()
	}
	for i := uint64(0); i < n-1; i++ {
		xExt[i] = ks.SecretG1[n-2-i]
	}

	xExtFFT, err := ks.FS.FFTG1(xExt, false)
	if err != nil {
		return nil, err
	}

	return &FK20SingleSettings{KS: ks, N2: n2, XExtFFT: xExtFFT}, nil
}

// DAUsingFK20 computes all N2 single-point opening proofs for p at the
// N2-th roots of unity in O(n log n) group operations: the j-th output is
// the proof for an opening at omega^j, omega the primitive N2-th root. p
// must have length exactly N2/2. When reverseOrder is true the output is
// permuted into bit-reversed order instead of the transform's natural
// evaluation order.
func (fk *FK20SingleSettings) DAUsingFK20(p Polynomial, reverseOrder bool) ([]G1Point, error) {
	n := fk.N2 / 2
	if uint64(len(p)) != n {
		return nil, ErrBadArgs
	}

	toeplitzCoeffs := toeplitzCoefficientsStep(p, n)
	coeffsFFT, err := fk.KS.FS.FFT(toeplitzCoeffs, false)
	if err != nil {
		return nil, err
	}

	hExtFFT := make([]G1Point, fk.N2)
	for i := uint64(0); i < fk.N2; i++ {
		hExtFFT[i] = MulG1(&fk.XExtFFT[i], &coeffsFFT[i])
	}

	hExt, err := fk.KS.FS.FFTG1(hExtFFT, true)
	if err != nil {
		return nil, err
	}

	h := make([]G1Point, fk.N2)
	for i := uint64(0); i < n; i++ {
		h[i] = hExt[i]
	}
	for i := n; i < fk.N2; i++ {
		h[i] = G1Identity()
	}

	out, err := fk.KS.FS.FFTG1(h, false)
	if err != nil {
		return nil, err
	}

	if reverseOrder {
		reverseBitOrderG1(out)
	}
	return out, nil
}
