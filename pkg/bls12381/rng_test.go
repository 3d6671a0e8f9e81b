package bls12381

import "testing"

func TestRandomScalarInRange(t *testing.T) {
	for i := 0; i < 8; i++ {
		s, err := RandomScalar()
		if err != nil {
			t.Fatalf("RandomScalar error: %v", err)
		}
		if s.Sign() <= 0 || s.Cmp(r) >= 0 {
			t.Fatalf("RandomScalar returned %s, want a value in [1, r)", s)
		}
	}
}

func TestRandomBlindingScalarNonZero(t *testing.T) {
	s, err := RandomBlindingScalar()
	if err != nil {
		t.Fatalf("RandomBlindingScalar error: %v", err)
	}
	if s.Sign() == 0 {
		t.Fatal("RandomBlindingScalar returned zero")
	}
}

func TestDeriveSecretKeyVariesWithInfo(t *testing.T) {
	ikm := []byte("sufficiently long input keying material, 32+ bytes")
	salt := []byte("salt")
	k1, err := DeriveSecretKey(ikm, salt, []byte("context-a"))
	if err != nil {
		t.Fatalf("DeriveSecretKey error: %v", err)
	}
	k2, err := DeriveSecretKey(ikm, salt, []byte("context-b"))
	if err != nil {
		t.Fatalf("DeriveSecretKey error: %v", err)
	}
	if k1.Cmp(k2) == 0 {
		t.Fatal("DeriveSecretKey produced identical keys for different info labels")
	}
}
