package kzg

import (
	"math/rand"
	"testing"
)

// TestFFTRoundtripRandom checks IFFT(FFT(v)) = v against randomly sampled
// vectors at several power-of-two widths, rather than a single fixed
// vector.
func TestFFTRoundtripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for _, scale := range []uint8{0, 1, 2, 5} {
		fs, err := NewFFTSettings(scale)
		if err != nil {
			t.Fatalf("scale %d: NewFFTSettings: %v", scale, err)
		}

		for trial := 0; trial < 4; trial++ {
			vals := make([]Scalar, fs.MaxWidth)
			for i := range vals {
				vals[i] = FrFromUint64(r.Uint64())
			}

			transformed, err := fs.FFT(vals, false)
			if err != nil {
				t.Fatalf("scale %d trial %d: FFT: %v", scale, trial, err)
			}
			recovered, err := fs.FFT(transformed, true)
			if err != nil {
				t.Fatalf("scale %d trial %d: inverse FFT: %v", scale, trial, err)
			}

			for i := range vals {
				if !recovered[i].Equal(&vals[i]) {
					t.Errorf("scale %d trial %d: roundtrip[%d] = %v, want %v", scale, trial, i, recovered[i], vals[i])
				}
			}
		}
	}
}

func TestFFTRoundtrip(t *testing.T) {
	fs, err := NewFFTSettings(4)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}

	vals := make([]Scalar, 16)
	for i := range vals {
		vals[i] = FrFromUint64(uint64(i*7 + 1))
	}

	transformed, err := fs.FFT(vals, false)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	recovered, err := fs.FFT(transformed, true)
	if err != nil {
		t.Fatalf("inverse FFT: %v", err)
	}

	for i := range vals {
		if !recovered[i].Equal(&vals[i]) {
			t.Errorf("roundtrip[%d] = %v, want %v", i, recovered[i], vals[i])
		}
	}
}

func TestFFTEvaluationProperty(t *testing.T) {
	fs, err := NewFFTSettings(2)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}

	// p(x) = 1 + 2x + 3x^2 + 4x^3
	coeffs := Polynomial{
		FrFromUint64(1), FrFromUint64(2), FrFromUint64(3), FrFromUint64(4),
	}

	evals, err := fs.FFT(coeffs, false)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	for i := 0; i < 4; i++ {
		root := fs.ExpandedRootsOfUnity[i]
		want := coeffs.Eval(root)
		if !evals[i].Equal(&want) {
			t.Errorf("FFT[%d] = %v, want p(root[%d]) = %v", i, evals[i], i, want)
		}
	}
}

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	fs, err := NewFFTSettings(4)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}
	vals := make([]Scalar, 3)
	if _, err := fs.FFT(vals, false); err != ErrBadArgs {
		t.Errorf("FFT of length 3: err = %v, want ErrBadArgs", err)
	}
}

func TestFFTRejectsTooWide(t *testing.T) {
	fs, err := NewFFTSettings(2)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}
	vals := make([]Scalar, 8)
	if _, err := fs.FFT(vals, false); err != ErrBadArgs {
		t.Errorf("FFT wider than domain: err = %v, want ErrBadArgs", err)
	}
}

func TestFFTG1Roundtrip(t *testing.T) {
	fs, err := NewFFTSettings(3)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}

	g1Gen := G1Generator()
	vals := make([]G1Point, 8)
	for i := range vals {
		s := FrFromUint64(uint64(i + 1))
		vals[i] = MulG1(&g1Gen, &s)
	}

	transformed, err := fs.FFTG1(vals, false)
	if err != nil {
		t.Fatalf("FFTG1: %v", err)
	}
	recovered, err := fs.FFTG1(transformed, true)
	if err != nil {
		t.Fatalf("inverse FFTG1: %v", err)
	}

	for i := range vals {
		if !EqualG1(&recovered[i], &vals[i]) {
			t.Errorf("roundtrip[%d] mismatch", i)
		}
	}
}

func TestFFTG1MatchesScalarFFTUnderHomomorphism(t *testing.T) {
	// FFT_g1([s]*v) must equal [s]*FFT_fr(v) coefficientwise, since FFT
	// is F_r-linear and scalar multiplication by a fixed generator is an
	// F_r-linear map into G1.
	fs, err := NewFFTSettings(3)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}

	vals := make([]Scalar, 8)
	for i := range vals {
		vals[i] = FrFromUint64(uint64(i*3 + 2))
	}

	scalarTransformed, err := fs.FFT(vals, false)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	g1Gen := G1Generator()
	g1Vals := make([]G1Point, 8)
	for i := range vals {
		g1Vals[i] = MulG1(&g1Gen, &vals[i])
	}
	g1Transformed, err := fs.FFTG1(g1Vals, false)
	if err != nil {
		t.Fatalf("FFTG1: %v", err)
	}

	for i := range g1Transformed {
		want := MulG1(&g1Gen, &scalarTransformed[i])
		if !EqualG1(&g1Transformed[i], &want) {
			t.Errorf("FFTG1[%d] does not match [gen]*FFT_fr[%d]", i, i)
		}
	}
}
