package kzg

// FK20MultiSettings holds the precomputed artefacts for the FK20
// multi-proof (coset) engine: one FFT-G1'd extended-setup vector per
// Toeplitz column offset.
type FK20MultiSettings struct {
	KS *KZGSettings

	N2         uint64
	ChunkLen   uint64
	ChunkCount uint64

	// XExtFFTPrecompute[c] is FFTG1 of the column-c extended setup
	// vector, for c in [0, ChunkLen).
	XExtFFTPrecompute [][]G1Point
}

// NewFK20MultiSettings builds an FK20MultiSettings for polynomials of
// length N2/2, producing 2*chunkCount coset proofs of length chunkLen
// each, where chunkCount = N2/(2*chunkLen). n2 must be a power of two,
// chunkLen a power of two dividing n2/2, and n2 at most both
// ks.FS.MaxWidth and ks.Length.
func NewFK20MultiSettings(ks *KZGSettings, n2, chunkLen uint64) (*FK20MultiSettings, error) {
	if n2 == 0 || !isPowerOfTwo(n2) || n2 > ks.FS.MaxWidth || n2 > ks.Length {
		return nil, ErrBadArgs
	}
	if chunkLen == 0 || !isPowerOfTwo(chunkLen) {
		return nil, ErrBadArgs
	}
	n := n2 / 2
	if n%chunkLen != 0 {
		return nil, ErrBadArgs
	}
	chunkCount := n / chunkLen

	precompute := make([][]G1Point, chunkLen)
	for c := uint64(0); c < chunkLen; c++ {
		xExt := make([]G1Point, 2*chunkCount)
		for i := range xExt {
			xExt[i] = G1Identity()
		}
		// Column c's sub-polynomial is p's stride-chunkLen slice at
		// offset c, so its setup vector holds [s^(chunkLen*t + c)] in the
		// same reversed layout the single-proof engine uses:
		// xExt[j] = [s^(chunkLen*(chunkCount-2-j) + c)].
		for j := uint64(0); j+1 < chunkCount; j++ {
			xExt[j] = ks.SecretG1[c+(chunkCount-2-j)*chunkLen]
		}

		xExtFFT, err := ks.FS.FFTG1(xExt, false)
		if err != nil {
			return nil, err
		}
		precompute[c] = xExtFFT
	}

	return &FK20MultiSettings{
		KS:                ks,
		N2:                n2,
		ChunkLen:          chunkLen,
		ChunkCount:        chunkCount,
		XExtFFTPrecompute: precompute,
	}, nil
}

// DAUsingFK20Multi computes the 2*ChunkCount combined coset proofs for p,
// one per disjoint coset of size ChunkLen, in O(n log(n/l)) group
// operations: the j-th output proves the openings on the coset generated
// by omega^j, omega the primitive N2-th root. p must have length exactly
// N2/2. reverseOrder bit-reverses the output, mirroring DAUsingFK20's
// flag.
func (fk *FK20MultiSettings) DAUsingFK20Multi(p Polynomial, reverseOrder bool) ([]G1Point, error) {
	n := fk.N2 / 2
	if uint64(len(p)) != n {
		return nil, ErrBadArgs
	}

	hExtFFT := make([]G1Point, 2*fk.ChunkCount)
	for i := range hExtFFT {
		hExtFFT[i] = G1Identity()
	}

	for c := uint64(0); c < fk.ChunkLen; c++ {
		toeplitzCoeffs := columnToeplitzCoefficients(p, fk.ChunkLen, c, fk.ChunkCount)
		coeffsFFT, err := fk.KS.FS.FFT(toeplitzCoeffs, false)
		if err != nil {
			return nil, err
		}
		for i := range hExtFFT {
			term := MulG1(&fk.XExtFFTPrecompute[c][i], &coeffsFFT[i])
			hExtFFT[i] = AddG1(&hExtFFT[i], &term)
		}
	}

	hExt, err := fk.KS.FS.FFTG1(hExtFFT, true)
	if err != nil {
		return nil, err
	}

	h := make([]G1Point, 2*fk.ChunkCount)
	for i := uint64(0); i < fk.ChunkCount; i++ {
		h[i] = hExt[i]
	}
	for i := fk.ChunkCount; i < 2*fk.ChunkCount; i++ {
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

// columnToeplitzCoefficients builds the length-2*chunkCount toeplitz
// coefficient vector for column c: the stride-chunkLen, offset-c
// subsequence of p's coefficients, fed through the same reverse-and-pad
// construction used by the single-proof engine.
func columnToeplitzCoefficients(p Polynomial, chunkLen, c, chunkCount uint64) []Scalar {
	sub := make(Polynomial, chunkCount)
	for i := uint64(0); i < chunkCount; i++ {
		sub[i] = p[c+i*chunkLen]
	}
	return toeplitzCoefficientsStep(sub, chunkCount)
}
