//go:build goethkzg

// This cross-check compares this module's commitment to the zero
// polynomial against crate-crypto/go-eth-kzg, an independent production
// KZG implementation, committing to an all-zero blob. The zero polynomial
// must commit to the G1 identity regardless of which trusted setup either
// side holds, so this does not require matching secrets between the two
// implementations.
//
// Build with: go test -tags goethkzg ./kzg/...
package kzgtest

import (
	"bytes"
	"testing"

	goethkzg "github.com/crate-crypto/go-eth-kzg"

	"github.com/eth2030/kzgcore/kzg"
)

func TestZeroCommitmentMatchesGoEthKZG(t *testing.T) {
	ctx, err := goethkzg.NewContext4096Insecure1337()
	if err != nil {
		t.Fatalf("goethkzg.NewContext4096Insecure1337: %v", err)
	}

	var blob goethkzg.Blob // zero-valued: every 32-byte scalar in the blob is 0
	comm, err := ctx.BlobToKZGCommitment(&blob, 0)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}

	ours := kzg.G1Identity()
	oursBytes := ours.Bytes()

	if !bytes.Equal(oursBytes[:], comm[:]) {
		t.Errorf("zero-polynomial commitment disagrees with go-eth-kzg:\n  ours:       %x\n  go-eth-kzg: %x", oursBytes, comm[:])
	}
}
