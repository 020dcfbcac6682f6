package kzg

import (
	"math/big"
)

// bls12381SubgroupOrder is r, the order of F_r (and of G1/G2). BLS12-381's
// scalar field has 2-adicity 32: r - 1 = 2^32 * odd, so primitive roots of
// unity exist for every power-of-two order up to 2^32.
var bls12381SubgroupOrder = func() *big.Int {
	r, _ := new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	return r
}()

// primitiveRootOfUnity returns a primitive n-th root of unity in F_r. n
// must be a power of two dividing 2^32: a generator of the 2^32-order
// subgroup is derived from the field's multiplicative structure on each
// call, then raised to 2^32/n.
func primitiveRootOfUnity(n uint64) Scalar {
	pMinus1 := new(big.Int).Sub(bls12381SubgroupOrder, big.NewInt(1))
	twoTo32 := new(big.Int).Lsh(big.NewInt(1), 32)
	cofactor := new(big.Int).Div(pMinus1, twoTo32)
	g := new(big.Int).Exp(big.NewInt(5), cofactor, bls12381SubgroupOrder)

	exp := new(big.Int).SetUint64((uint64(1) << 32) / n)
	rootBig := new(big.Int).Exp(g, exp, bls12381SubgroupOrder)

	var root Scalar
	root.SetBigInt(rootBig)
	return root
}

// FFTSettings holds a precomputed FFT domain of width max_width = 2^k: the
// powers of a primitive max_width-th root of unity, in both natural and
// reverse order, plus the same roots in bit-reversed order.
type FFTSettings struct {
	MaxWidth uint64

	// ExpandedRootsOfUnity[i] = omega^i for 0 <= i <= MaxWidth; periodic,
	// closes with 1 at both ends.
	ExpandedRootsOfUnity []Scalar

	// ReverseRootsOfUnity is ExpandedRootsOfUnity reversed, i.e.
	// ReverseRootsOfUnity[i] = omega^-i.
	ReverseRootsOfUnity []Scalar

	// RootsOfUnityBitReversed holds the MaxWidth roots
	// ExpandedRootsOfUnity[0:MaxWidth] permuted into bit-reversed order:
	// the evaluation points, in order, of DAUsingFK20's output when
	// reverseOrder is set and N2 equals MaxWidth (its natural output order
	// is ExpandedRootsOfUnity's).
	RootsOfUnityBitReversed []Scalar
}

// NewFFTSettings builds an FFT domain of width 2^scale.
func NewFFTSettings(scale uint8) (*FFTSettings, error) {
	if scale > 32 {
		return nil, ErrBadArgs
	}
	width := uint64(1) << scale

	expanded := make([]Scalar, width+1)
	expanded[0] = FrOne()
	root := primitiveRootOfUnity(width)
	for i := uint64(1); i <= width; i++ {
		expanded[i].Mul(&expanded[i-1], &root)
	}
	if !expanded[width].Equal(&expanded[0]) {
		// The computed root was not actually of order `width`; this can
		// only happen if primitiveRootOfUnity was handed a bad width.
		return nil, ErrBadArgs
	}

	reverse := make([]Scalar, width+1)
	for i, j := uint64(0), width; i <= width; i, j = i+1, j-1 {
		reverse[i] = expanded[j]
	}

	bitReversed := make([]Scalar, width)
	copy(bitReversed, expanded[:width])
	bitReverseScalars(bitReversed)

	return &FFTSettings{
		MaxWidth:                width,
		ExpandedRootsOfUnity:    expanded,
		ReverseRootsOfUnity:     reverse,
		RootsOfUnityBitReversed: bitReversed,
	}, nil
}

// FFT computes the forward (inv=false) or inverse (inv=true) transform of
// vals over F_r. len(vals) must be a power of two and at most MaxWidth.
func (fs *FFTSettings) FFT(vals []Scalar, inv bool) ([]Scalar, error) {
	n := uint64(len(vals))
	if n == 0 || n > fs.MaxWidth || !isPowerOfTwo(n) {
		return nil, ErrBadArgs
	}
	stride := fs.MaxWidth / n
	table := fs.ExpandedRootsOfUnity
	if inv {
		table = fs.ReverseRootsOfUnity
	}
	roots := make([]Scalar, n)
	for i := uint64(0); i < n; i++ {
		roots[i] = table[i*stride]
	}

	out := fftFrRec(vals, roots)
	if inv {
		var nInv Scalar
		nInv.SetUint64(n)
		nInv.Inverse(&nInv)
		for i := range out {
			out[i].Mul(&out[i], &nInv)
		}
	}
	return out, nil
}

// fftFrRec is the radix-2 decimation-in-time butterfly: roots[i] must
// equal omega^i for omega a primitive len(vals)-th root of unity.
func fftFrRec(vals []Scalar, roots []Scalar) []Scalar {
	n := len(vals)
	if n == 1 {
		return []Scalar{vals[0]}
	}

	half := n / 2
	even := make([]Scalar, half)
	odd := make([]Scalar, half)
	evenRoots := make([]Scalar, half)
	for i := 0; i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
		evenRoots[i] = roots[2*i]
	}

	yEven := fftFrRec(even, evenRoots)
	yOdd := fftFrRec(odd, evenRoots)

	out := make([]Scalar, n)
	for i := 0; i < half; i++ {
		var t Scalar
		t.Mul(&roots[i], &yOdd[i])
		out[i].Add(&yEven[i], &t)
		out[i+half].Sub(&yEven[i], &t)
	}
	return out
}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// bitReverseScalars permutes vals into bit-reversed order in place. len(vals)
// must be a power of two.
func bitReverseScalars(vals []Scalar) {
	reverseBitOrder(uint32(len(vals)), func(i, j uint32) {
		vals[i], vals[j] = vals[j], vals[i]
	})
}

// reverseBitOrder calls swap(i, j) for every index pair i < j in [0, n)
// whose bit-reversed positions are swapped, n a power of two. Shared by the
// scalar-field and G1 bit-reversal helpers.
func reverseBitOrder(n uint32, swap func(i, j uint32)) {
	if n == 0 {
		return
	}
	bits := bitLen(n) - 1
	for i := uint32(0); i < n; i++ {
		j := reverseBits(i, bits)
		if j > i {
			swap(i, j)
		}
	}
}

func bitLen(n uint32) uint32 {
	var b uint32
	for n > 0 {
		n >>= 1
		b++
	}
	return b
}

func reverseBits(v uint32, bits uint32) uint32 {
	var r uint32
	for i := uint32(0); i < bits; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}
