package bls12381

import (
	"math/big"
	"testing"
)

func TestG1GeneratorOnCurveAndInSubgroup(t *testing.T) {
	g := G1Generator()
	if !g1IsOnCurve(g) {
		t.Fatal("G1 generator not on curve")
	}
	if !g1InSubgroup(g) {
		t.Fatal("G1 generator not in order-r subgroup")
	}
	if !g1ScalarMul(g, r).Inf {
		t.Fatal("[r]G1 != identity")
	}
}

func TestG1GroupLaws(t *testing.T) {
	g := G1Generator()
	p := g1ScalarMul(g, big.NewInt(7))
	o := G1Identity()

	if !g1Equal(g1Add(p, o), p) {
		t.Fatal("P + 0 != P")
	}
	if !g1Add(p, g1Neg(p)).Inf {
		t.Fatal("P + (-P) != 0")
	}
	q := g1ScalarMul(g, big.NewInt(11))
	if !g1Equal(g1Add(p, q), g1Add(q, p)) {
		t.Fatal("P + Q != Q + P")
	}
	if !g1ScalarMul(g, bigZero).Inf {
		t.Fatal("[0]P != 0")
	}
	if !g1Equal(g1ScalarMul(g, bigOne), g) {
		t.Fatal("[1]P != P")
	}
}

func TestG1ScalarMulAdditivity(t *testing.T) {
	g := G1Generator()
	n, m := big.NewInt(25), big.NewInt(42)
	lhs := g1Add(g1ScalarMul(g, n), g1ScalarMul(g, m))
	rhs := g1ScalarMul(g, new(big.Int).Add(n, m))
	if !g1Equal(lhs, rhs) {
		t.Fatal("[n]P + [m]P != [n+m]P")
	}
}

func TestG1DoubleMatchesAdd(t *testing.T) {
	g := G1Generator()
	if !g1Equal(g1Double(g), g1Add(g, g)) {
		t.Fatal("g1Double(P) != g1Add(P, P)")
	}
}

func TestG1IdentityNotOnCurve(t *testing.T) {
	if g1IsOnCurve(G1Identity()) {
		t.Fatal("identity reported as on-curve")
	}
}

func TestG1SerializationRoundTrip(t *testing.T) {
	cases := []*G1{
		G1Identity(),
		G1Generator(),
		g1ScalarMul(G1Generator(), big.NewInt(123456789)),
	}
	for i, p := range cases {
		enc := SerializeG1(p)
		dec, err := DeserializeG1(enc)
		if err != nil {
			t.Fatalf("case %d: deserialize failed: %v", i, err)
		}
		if !g1Equal(dec, p) {
			t.Fatalf("case %d: round trip mismatch", i)
		}
	}
}
