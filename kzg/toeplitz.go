package kzg

// toeplitzCoefficientsStep builds the length-2n "reverse-and-pad" vector
// that embeds the length-n polynomial p's Toeplitz opening matrix into a
// circulant: t[0] = p[n-1], t[1..n] are zero, and t[n+1..2n-1] =
// p[0..n-2]. Multiplying its FFT pointwise into the FFT of the extended
// setup vector performs the Toeplitz matrix-vector product both FK20
// engines are built on.
func toeplitzCoefficientsStep(p Polynomial, n uint64) []Scalar {
	out := make([]Scalar, 2*n)
	out[0] = p[n-1]
	for i := uint64(1); i <= n; i++ {
		out[i] = FrZero()
	}
	for i := uint64(0); i < n-1; i++ {
		out[n+1+i] = p[i]
	}
	return out
}
