package kzg

import (
	"testing"

	"github.com/eth2030/kzgcore/kzg/kzgtest"
)

func TestCommitAndProveMulti(t *testing.T) {
	p := testPolyScenario()

	cosetScale := uint8(3)
	cosetLen := uint64(1) << cosetScale

	secretsLen := uint64(len(p)) + 1
	if cosetLen+1 > secretsLen {
		secretsLen = cosetLen + 1
	}

	fs, err := NewFFTSettings(cosetScale)
	if err != nil {
		t.Fatalf("NewFFTSettings: %v", err)
	}
	ks := newTestSettingsWithFS(t, fs, secretsLen)

	commitment, err := CommitToPoly(p, ks)
	if err != nil {
		t.Fatalf("CommitToPoly: %v", err)
	}

	x0 := FrFromUint64(5431)
	proof, err := ComputeProofMulti(p, x0, cosetLen, ks)
	if err != nil {
		t.Fatalf("ComputeProofMulti: %v", err)
	}

	ys := make([]Scalar, cosetLen)
	point := x0
	for i := uint64(0); i < cosetLen; i++ {
		ys[i] = p.Eval(point)
		point.Mul(&point, &fs.ExpandedRootsOfUnity[fs.MaxWidth/cosetLen])
	}

	ok, err := CheckProofMulti(commitment, proof, x0, ys, ks)
	if err != nil {
		t.Fatalf("CheckProofMulti: %v", err)
	}
	if !ok {
		t.Error("CheckProofMulti rejected a valid proof")
	}

	// Perturbing one claimed value must invalidate the proof.
	one := FrOne()
	ys[cosetLen/2].Add(&ys[cosetLen/2], &one)
	ok, err = CheckProofMulti(commitment, proof, x0, ys, ks)
	if err != nil {
		t.Fatalf("CheckProofMulti: %v", err)
	}
	if ok {
		t.Error("CheckProofMulti accepted a proof against a perturbed value")
	}
}

func TestComputeProofMultiRejectsNonPowerOfTwo(t *testing.T) {
	p := testPolyScenario()
	ks := newTestSettings(t, 4, uint64(len(p))+8)

	if _, err := ComputeProofMulti(p, FrFromUint64(7), 3, ks); err != ErrBadArgs {
		t.Errorf("ComputeProofMulti with n=3: err = %v, want ErrBadArgs", err)
	}
}

func TestComputeProofSingleIsProofMultiWithNEqualsOne(t *testing.T) {
	p := testPolyScenario()
	ks := newTestSettings(t, 4, uint64(len(p))+1)
	x := FrFromUint64(11)

	single, err := ComputeProofSingle(p, x, ks)
	if err != nil {
		t.Fatalf("ComputeProofSingle: %v", err)
	}
	multi, err := ComputeProofMulti(p, x, 1, ks)
	if err != nil {
		t.Fatalf("ComputeProofMulti: %v", err)
	}
	if !EqualG1(&single, &multi) {
		t.Error("ComputeProofSingle and ComputeProofMulti(n=1) disagree")
	}
}

// newTestSettingsWithFS mirrors newTestSettings but reuses a caller-built
// FFTSettings, since multi-proof tests need the coset's root of unity.
func newTestSettingsWithFS(t *testing.T, fs *FFTSettings, secretsLen uint64) *KZGSettings {
	t.Helper()
	s1, s2 := kzgtest.GenerateInsecureSetup(kzgtest.FixedTestSecret, secretsLen)
	ks, err := NewKZGSettings(fs, s1, s2, secretsLen)
	if err != nil {
		t.Fatalf("NewKZGSettings: %v", err)
	}
	return ks
}
