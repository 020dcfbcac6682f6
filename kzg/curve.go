// Package kzg implements the KZG polynomial-commitment engine: dense
// polynomial evaluation and division, FFTs over the scalar field and over
// G1, single- and coset-opening proofs verified through a pairing, and the
// FK20 reduction that batches all coset proofs in O(n log n) group
// operations.
//
// The field and curve arithmetic themselves (fr, G1, G2, the pairing, and
// the Pippenger multi-scalar-multiplication) are treated as an external,
// already-audited layer: this package consumes
// github.com/consensys/gnark-crypto's bls12-381 implementation rather than
// re-deriving curve math. curve.go is the thin wrapper that gives that
// layer the vocabulary the rest of the package works in.
package kzg

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the BLS12-381 scalar field F_r.
type Scalar = fr.Element

// G1Point is an element of the BLS12-381 G1 group, in affine form.
type G1Point = bls12381.G1Affine

// G2Point is an element of the BLS12-381 G2 group, in affine form.
type G2Point = bls12381.G2Affine

var (
	g1Gen     bls12381.G1Affine
	g2Gen     bls12381.G2Affine
	g1GenOnce sync.Once
	frZeroVal Scalar
	frOneVal  = func() Scalar { var s Scalar; s.SetOne(); return s }()
)

// ensureGenerators lazily computes the curve generators exactly once.
// Settings are shareable across goroutines, so verification may run
// concurrently; sync.Once keeps a racing caller from observing a
// partially-written g1Gen/g2Gen.
func ensureGenerators() {
	g1GenOnce.Do(func() {
		_, _, g1Gen, g2Gen = bls12381.Generators()
	})
}

// G1Generator returns the canonical G1 generator point.
func G1Generator() G1Point {
	ensureGenerators()
	return g1Gen
}

// G2Generator returns the canonical G2 generator point.
func G2Generator() G2Point {
	ensureGenerators()
	return g2Gen
}

// G1Identity returns the G1 group identity (point at infinity).
func G1Identity() G1Point {
	return G1Point{}
}

// G2Identity returns the G2 group identity (point at infinity).
func G2Identity() G2Point {
	return G2Point{}
}

// FrZero returns the additive identity of F_r.
func FrZero() Scalar { return frZeroVal }

// FrOne returns the multiplicative identity of F_r.
func FrOne() Scalar { return frOneVal }

// FrFromUint64 embeds a uint64 into F_r.
func FrFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// AddG1 returns a + b in G1.
func AddG1(a, b *G1Point) G1Point {
	var out G1Point
	out.Add(a, b)
	return out
}

// SubG1 returns a - b in G1.
func SubG1(a, b *G1Point) G1Point {
	var out G1Point
	out.Sub(a, b)
	return out
}

// NegG1 returns -a in G1.
func NegG1(a *G1Point) G1Point {
	var out G1Point
	out.Neg(a)
	return out
}

// MulG1 returns s*a in G1.
func MulG1(a *G1Point, s *Scalar) G1Point {
	var out G1Point
	var bi big.Int
	s.BigInt(&bi)
	out.ScalarMultiplication(a, &bi)
	return out
}

// EqualG1 reports whether a and b are the same G1 point.
func EqualG1(a, b *G1Point) bool {
	return a.Equal(b)
}

// AddG2 returns a + b in G2.
func AddG2(a, b *G2Point) G2Point {
	var out G2Point
	out.Add(a, b)
	return out
}

// SubG2 returns a - b in G2.
func SubG2(a, b *G2Point) G2Point {
	var out G2Point
	out.Sub(a, b)
	return out
}

// MulG2 returns s*a in G2.
func MulG2(a *G2Point, s *Scalar) G2Point {
	var out G2Point
	var bi big.Int
	s.BigInt(&bi)
	out.ScalarMultiplication(a, &bi)
	return out
}

// EqualG2 reports whether a and b are the same G2 point.
func EqualG2(a, b *G2Point) bool {
	return a.Equal(b)
}

// LinCombG1 computes the multi-scalar multiplication sum(scalars[i] *
// points[i]) via gnark-crypto's Pippenger-class MultiExp.
func LinCombG1(points []G1Point, scalars []Scalar) (G1Point, error) {
	if len(points) == 0 {
		return G1Identity(), nil
	}
	var out G1Point
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1Point{}, err
	}
	return out, nil
}

// PairingsVerify reports whether e(a1, a2) == e(b1, b2), by checking
// e(a1, a2) * e(-b1, b2) == 1 via a single combined pairing.
func PairingsVerify(a1 *G1Point, a2 *G2Point, b1 *G1Point, b2 *G2Point) bool {
	negB1 := NegG1(b1)
	ok, err := bls12381.PairingCheck([]G1Point{*a1, negB1}, []G2Point{*a2, *b2})
	if err != nil {
		return false
	}
	return ok
}
