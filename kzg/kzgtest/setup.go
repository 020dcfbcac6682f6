// Package kzgtest generates an insecure KZG trusted setup from a known
// secret, for use in tests and benchmarks only.
//
// A real deployment's setup comes from a multi-party ceremony where no
// single participant ever learns the combined secret; this package
// reconstructs the setup from a secret it is handed directly, which
// defeats the entire point of the scheme. It is kept in its own package,
// separate from kzg, so that importing it for test or benchmark code makes
// the insecurity visible at the call site rather than leaking a
// known-secret path into the production package.
package kzgtest

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// GenerateInsecureSetup returns the powers-of-secret trusted setup
// s1[i] = [secret^i]_1 and s2[i] = [secret^i]_2, for i in [0, length).
// The element types are the ones kzg.G1Point and kzg.G2Point alias. It is
// written against gnark-crypto directly, not against package kzg, so that
// kzg's own in-package tests can import it without an import cycle.
func GenerateInsecureSetup(secret *big.Int, length uint64) ([]bls12381.G1Affine, []bls12381.G2Affine) {
	var secretFr fr.Element
	secretFr.SetBigInt(secret)

	s1 := make([]bls12381.G1Affine, length)
	s2 := make([]bls12381.G2Affine, length)

	_, _, g1Gen, g2Gen := bls12381.Generators()

	var power fr.Element
	power.SetOne()
	var powerBig big.Int
	for i := uint64(0); i < length; i++ {
		power.BigInt(&powerBig)
		s1[i].ScalarMultiplication(&g1Gen, &powerBig)
		s2[i].ScalarMultiplication(&g2Gen, &powerBig)
		power.Mul(&power, &secretFr)
	}
	return s1, s2
}

// FixedTestSecret is an arbitrary, publicly known secret used throughout
// this module's own tests. It must never be reused for anything other
// than generating a test fixture.
var FixedTestSecret = big.NewInt(1927409816240961209)
