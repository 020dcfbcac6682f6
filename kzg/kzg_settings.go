package kzg

// KZGSettings bundles an FFT domain with the trusted-setup powers of tau
// needed to commit to and open polynomials against it: SecretG1[i] =
// [s^i]_1 and SecretG2[i] = [s^i]_2 for the setup's secret s. The FFT
// domain is held by reference so a single setup can back several engines
// at once.
type KZGSettings struct {
	FS *FFTSettings

	// SecretG1[i] = [s^i]_1, for i in [0, Length).
	SecretG1 []G1Point

	// SecretG2[i] = [s^i]_2, for i in [0, Length).
	SecretG2 []G2Point

	// Length is len(SecretG1) == len(SecretG2): the largest polynomial
	// degree + 1 this setup can commit to.
	Length uint64
}

// NewKZGSettings builds a KZGSettings from a trusted-setup transcript.
// fs.MaxWidth must be at most length, so the setup covers every domain
// width. A coset opening of width n also needs SecretG2[n] for the divisor
// commitment [s^n]_2, which CheckProofMulti requires to be below length.
func NewKZGSettings(fs *FFTSettings, secretG1 []G1Point, secretG2 []G2Point, length uint64) (*KZGSettings, error) {
	if fs == nil || length == 0 || fs.MaxWidth > length {
		return nil, ErrBadArgs
	}
	if uint64(len(secretG1)) < length || uint64(len(secretG2)) < length {
		return nil, ErrBadArgs
	}

	s1 := make([]G1Point, length)
	copy(s1, secretG1[:length])
	s2 := make([]G2Point, length)
	copy(s2, secretG2[:length])

	return &KZGSettings{
		FS:       fs,
		SecretG1: s1,
		SecretG2: s2,
		Length:   length,
	}, nil
}
