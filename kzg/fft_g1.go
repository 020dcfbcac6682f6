package kzg

// FFTG1 computes the forward (inv=false) or inverse (inv=true) transform of
// vals over G1, using the same root-of-unity domain as FFT: group addition
// stands in for field addition and scalar multiplication for field
// multiplication. len(vals) must be a power of two and at most MaxWidth.
func (fs *FFTSettings) FFTG1(vals []G1Point, inv bool) ([]G1Point, error) {
	n := uint64(len(vals))
	if n == 0 || n > fs.MaxWidth || !isPowerOfTwo(n) {
		return nil, ErrBadArgs
	}

	valsCopy := make([]G1Point, n)
	copy(valsCopy, vals)

	stride := fs.MaxWidth / n
	out := make([]G1Point, n)

	if inv {
		roots := fs.ReverseRootsOfUnity[:fs.MaxWidth]
		fs.fftG1Rec(valsCopy, 0, 1, roots, stride, out)

		var nInv Scalar
		nInv.SetUint64(n)
		nInv.Inverse(&nInv)
		for i := range out {
			out[i] = MulG1(&out[i], &nInv)
		}
		return out, nil
	}

	roots := fs.ExpandedRootsOfUnity[:fs.MaxWidth]
	fs.fftG1Rec(valsCopy, 0, 1, roots, stride, out)
	return out, nil
}

// fftG1Rec is the radix-2 decimation-in-time butterfly over G1: vals is
// indexed with an offset/stride pair so recursive calls need not copy, and
// rootsOfUnity is the full MaxWidth-sized table indexed with its own
// stride so a single table serves every recursion depth.
func (fs *FFTSettings) fftG1Rec(vals []G1Point, valsOffset, valsStride uint64, rootsOfUnity []Scalar, rootsStride uint64, out []G1Point) {
	if len(out) <= 4 {
		fs.simpleFTG1(vals, valsOffset, valsStride, rootsOfUnity, rootsStride, out)
		return
	}

	half := uint64(len(out)) >> 1
	fs.fftG1Rec(vals, valsOffset, valsStride<<1, rootsOfUnity, rootsStride<<1, out[:half])
	fs.fftG1Rec(vals, valsOffset+valsStride, valsStride<<1, rootsOfUnity, rootsStride<<1, out[half:])

	for i := uint64(0); i < half; i++ {
		x := out[i]
		y := out[i+half]
		root := &rootsOfUnity[i*rootsStride]
		yTimesRoot := MulG1(&y, root)
		out[i] = AddG1(&x, &yTimesRoot)
		out[i+half] = SubG1(&x, &yTimesRoot)
	}
}

// simpleFTG1 is the O(l^2) base case the recursion bottoms out to for small
// l, avoiding recursion overhead on the last couple of levels.
func (fs *FFTSettings) simpleFTG1(vals []G1Point, valsOffset, valsStride uint64, rootsOfUnity []Scalar, rootsStride uint64, out []G1Point) {
	l := uint64(len(out))
	for i := uint64(0); i < l; i++ {
		last := MulG1(&vals[valsOffset], &rootsOfUnity[0])
		for j := uint64(1); j < l; j++ {
			jv := &vals[valsOffset+j*valsStride]
			r := &rootsOfUnity[((i*j)%l)*rootsStride]
			term := MulG1(jv, r)
			last = AddG1(&last, &term)
		}
		out[i] = last
	}
}

// reverseBitOrderG1 permutes values into bit-reversed order in place.
// len(values) must be a power of two.
func reverseBitOrderG1(values []G1Point) {
	reverseBitOrder(uint32(len(values)), func(i, j uint32) {
		values[i], values[j] = values[j], values[i]
	})
}
