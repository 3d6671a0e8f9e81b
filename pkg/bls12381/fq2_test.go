package bls12381

import (
	"math/big"
	"testing"
)

func randFq2(t *testing.T) *Fq2 {
	t.Helper()
	return &Fq2{A: mustRandFq(t), B: mustRandFq(t)}
}

func TestFq2FieldLaws(t *testing.T) {
	a, b, c := randFq2(t), randFq2(t), randFq2(t)

	if !fq2Equal(fq2Add(a, b), fq2Add(b, a)) {
		t.Fatal("add not commutative")
	}
	if !fq2Equal(fq2Mul(a, b), fq2Mul(b, a)) {
		t.Fatal("mul not commutative")
	}
	if !fq2Equal(fq2Add(fq2Add(a, b), c), fq2Add(a, fq2Add(b, c))) {
		t.Fatal("add not associative")
	}
	if !fq2Equal(fq2Mul(fq2Mul(a, b), c), fq2Mul(a, fq2Mul(b, c))) {
		t.Fatal("mul not associative")
	}
	if !fq2Equal(fq2Mul(a, fq2Add(b, c)), fq2Add(fq2Mul(a, b), fq2Mul(a, c))) {
		t.Fatal("mul does not distribute over add")
	}
	if !fq2Equal(fq2Add(a, fq2Zero()), a) {
		t.Fatal("a + 0 != a")
	}
	if !fq2Equal(fq2Mul(a, fq2One()), a) {
		t.Fatal("a * 1 != a")
	}
	if !fq2Add(a, fq2Neg(a)).isZero() {
		t.Fatal("a + (-a) != 0")
	}
}

func TestFq2Inverse(t *testing.T) {
	a := randFq2(t)
	if a.isZero() {
		a = fq2One()
	}
	inv := fq2Inv(a)
	if inv == nil {
		t.Fatal("inverse of non-zero element returned nil")
	}
	if !fq2Equal(fq2Mul(a, inv), fq2One()) {
		t.Fatal("a * a^-1 != 1")
	}
	if fq2Inv(fq2Zero()) != nil {
		t.Fatal("inverse of zero should be nil")
	}
}

func TestFq2NonResidueMultiplication(t *testing.T) {
	a := randFq2(t)
	xi := &Fq2{A: big.NewInt(1), B: big.NewInt(1)}
	if !fq2Equal(fq2MulByNonResidue(a), fq2Mul(a, xi)) {
		t.Fatal("mul_by_non_residue(a) != a * (1+u)")
	}
}

func TestFq2Frobenius(t *testing.T) {
	a := randFq2(t)
	// frobenius^2 == identity on Fq2.
	twice := fq2Frobenius(fq2Frobenius(a, 1), 1)
	if !fq2Equal(twice, a) {
		t.Fatal("frobenius^2 != identity on Fq2")
	}
	b := randFq2(t)
	if !fq2Equal(fq2Frobenius(fq2Mul(a, b), 1), fq2Mul(fq2Frobenius(a, 1), fq2Frobenius(b, 1))) {
		t.Fatal("frobenius(a*b) != frobenius(a)*frobenius(b)")
	}
}

func TestFq2Sqrt(t *testing.T) {
	a := randFq2(t)
	square := fq2Sqr(a)
	root, err := fq2Sqrt(square)
	if err != nil {
		t.Fatalf("sqrt of a square failed: %v", err)
	}
	if !fq2Equal(fq2Sqr(root), square) {
		t.Fatal("sqrt(a)^2 != a")
	}
}
