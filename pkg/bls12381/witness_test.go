package bls12381

import (
	"math/big"
	"testing"
)

func TestComputeWitnessRoundTrip(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	f, err := MultiMillerLoop([]*G1{g1ScalarMul(p, bigTwo), g1Neg(p)}, []*G2{q, g2ScalarMul(q, bigTwo)})
	if err != nil {
		t.Fatalf("MultiMillerLoop error: %v", err)
	}
	g := PairingEasyPart(f)

	c, wi, err := ComputeWitness(g)
	if err != nil {
		t.Fatalf("ComputeWitness error: %v", err)
	}
	if !VerifyEquivalentPairings(f, fq12One(), c, wi) {
		t.Fatal("VerifyEquivalentPairings rejected a witness computed for the same g")
	}
}

func TestComputeWitnessOnValidPairingProduct(t *testing.T) {
	// A genuine e(P,Q)*e(-P,Q) == 1 product's easy-part output should
	// already be the identity, and the witness construction should
	// still succeed and verify against it.
	p := G1Generator()
	q := G2Generator()
	f, err := MultiMillerLoop([]*G1{p, g1Neg(p)}, []*G2{q, q})
	if err != nil {
		t.Fatalf("MultiMillerLoop error: %v", err)
	}
	g := PairingEasyPart(f)
	if !fq12FinalExponentiation(f).isOne() {
		t.Fatal("expected e(P,Q)*e(-P,Q) == 1 under full final exponentiation")
	}

	c, wi, err := ComputeWitness(g)
	if err != nil {
		t.Fatalf("ComputeWitness error: %v", err)
	}
	if !VerifyEquivalentPairings(f, fq12One(), c, wi) {
		t.Fatal("witness failed to verify for a pairing-equal-one product")
	}
}

func TestVerifyEquivalentPairingsRejectsTamperedInput(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	f, err := MultiMillerLoop([]*G1{g1ScalarMul(p, bigTwo), g1Neg(p)}, []*G2{q, g2ScalarMul(q, bigTwo)})
	if err != nil {
		t.Fatalf("MultiMillerLoop error: %v", err)
	}
	g := PairingEasyPart(f)
	c, wi, err := ComputeWitness(g)
	if err != nil {
		t.Fatalf("ComputeWitness error: %v", err)
	}

	tampered := fq12Mul(f, millerLoop(p, q))
	if VerifyEquivalentPairings(tampered, fq12One(), c, wi) {
		t.Fatal("witness verified against a tampered pairing output")
	}
}

func TestLambdaCoprimeToH3(t *testing.T) {
	gcd := new(big.Int).GCD(nil, nil, lambda, h3)
	if gcd.Cmp(bigOne) != 0 {
		t.Fatalf("gcd(lambda, h3) = %s, want 1", gcd)
	}
}
