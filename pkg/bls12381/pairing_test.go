package bls12381

import (
	"math/big"
	"testing"
)

func TestPairingNonDegeneracy(t *testing.T) {
	e := Pair(G1Generator(), G2Generator())
	if e.isOne() {
		t.Fatal("e(G1, G2) == 1, expected non-degenerate pairing")
	}
}

func TestPairingIdentityShortCircuit(t *testing.T) {
	if !Pair(G1Identity(), G2Generator()).isOne() {
		t.Fatal("e(0, Q) != 1")
	}
	if !Pair(G1Generator(), G2Identity()).isOne() {
		t.Fatal("e(P, 0) != 1")
	}
}

func TestPairingBilinearityFirstArgument(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	lhs := Pair(g1ScalarMul(p, bigTwo), q)
	base := Pair(p, q)
	rhs := fq12Mul(base, base)
	if !fq12Equal(lhs, rhs) {
		t.Fatal("e(2P, Q) != e(P, Q)^2")
	}
}

func TestPairingBilinearitySecondArgument(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	lhs := Pair(p, g2ScalarMul(q, bigTwo))
	base := Pair(p, q)
	rhs := fq12Mul(base, base)
	if !fq12Equal(lhs, rhs) {
		t.Fatal("e(P, 2Q) != e(P, Q)^2")
	}
}

func TestPairingMixedScalars(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	lhs := Pair(g1ScalarMul(p, big.NewInt(25)), g2ScalarMul(q, big.NewInt(42)))
	rhs := Pair(g1ScalarMul(p, big.NewInt(1050)), q)
	if !fq12Equal(lhs, rhs) {
		t.Fatal("e(25P, 42Q) != e(1050P, Q)")
	}
}

func TestPairingInversionIdentity(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	lhs := fq12Mul(Pair(p, q), Pair(g1Neg(p), q))
	if !lhs.isOne() {
		t.Fatal("e(P, Q) * e(-P, Q) != 1")
	}
	rhs := fq12Mul(Pair(p, q), Pair(p, g2Neg(q)))
	if !rhs.isOne() {
		t.Fatal("e(P, Q) * e(P, -Q) != 1")
	}
}

func TestValidatePairingMatchesBLSShape(t *testing.T) {
	p := G1Generator()
	q := G2Generator()
	secret := big.NewInt(999)
	sig := g1ScalarMul(p, secret)
	pub := g2ScalarMul(q, secret)

	ok, err := ValidatePairing([]*G1{p, g1Neg(sig)}, []*G2{pub, q})
	if err != nil {
		t.Fatalf("ValidatePairing error: %v", err)
	}
	if !ok {
		t.Fatal("e(P, pub) * e(-sig, Q) != 1 for a consistent (sig, pub) pair")
	}
}

func TestValidatePairingRejectsLengthMismatch(t *testing.T) {
	_, err := ValidatePairing([]*G1{G1Generator()}, []*G2{G2Generator(), G2Generator()})
	if err != ErrInputMismatch {
		t.Fatalf("expected ErrInputMismatch, got %v", err)
	}
}
