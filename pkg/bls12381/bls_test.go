package bls12381

import "testing"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	secret, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar error: %v", err)
	}
	pub := PubkeyFromSecret(secret)
	msg := []byte("idiomatic go for pairing-friendly curves")

	sig, err := Sign(secret, msg)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	ok, err := Verify(pub, msg, sig)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a correctly signed message")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	secret, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar error: %v", err)
	}
	pub := PubkeyFromSecret(secret)
	sig, err := Sign(secret, []byte("original message"))
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	ok, err := Verify(pub, []byte("tampered message"), sig)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	secretA, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar error: %v", err)
	}
	secretB, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar error: %v", err)
	}
	msg := []byte("message")
	sig, err := Sign(secretA, msg)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	pubB := PubkeyFromSecret(secretB)
	ok, err := Verify(pubB, msg, sig)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a signature under the wrong public key")
	}
}

func TestFastAggregateVerify(t *testing.T) {
	const n = 5
	msg := []byte("shared message")
	pubs := make([]*G2, n)
	sigs := make([]*G1, n)
	for i := 0; i < n; i++ {
		secret, err := RandomScalar()
		if err != nil {
			t.Fatalf("RandomScalar error: %v", err)
		}
		pubs[i] = PubkeyFromSecret(secret)
		sigs[i], err = Sign(secret, msg)
		if err != nil {
			t.Fatalf("Sign error: %v", err)
		}
	}
	aggSig := AggregateSignatures(sigs)
	ok, err := FastAggregateVerify(pubs, msg, aggSig)
	if err != nil {
		t.Fatalf("FastAggregateVerify error: %v", err)
	}
	if !ok {
		t.Fatal("FastAggregateVerify rejected a valid aggregate signature")
	}
}

func TestVerifyAggregateDistinctMessages(t *testing.T) {
	const n = 3
	pubs := make([]*G2, n)
	sigs := make([]*G1, n)
	msgs := make([][]byte, n)
	for i := 0; i < n; i++ {
		secret, err := RandomScalar()
		if err != nil {
			t.Fatalf("RandomScalar error: %v", err)
		}
		pubs[i] = PubkeyFromSecret(secret)
		msgs[i] = []byte{byte('a' + i)}
		sigs[i], err = Sign(secret, msgs[i])
		if err != nil {
			t.Fatalf("Sign error: %v", err)
		}
	}
	aggSig := AggregateSignatures(sigs)
	ok, err := VerifyAggregate(pubs, msgs, aggSig)
	if err != nil {
		t.Fatalf("VerifyAggregate error: %v", err)
	}
	if !ok {
		t.Fatal("VerifyAggregate rejected a valid multi-message aggregate")
	}
}

func TestDeriveSecretKeyDeterministic(t *testing.T) {
	ikm := []byte("sufficiently long input keying material, 32+ bytes")
	salt := []byte("salt")
	info := []byte("blstoise-key-derivation")

	k1, err := DeriveSecretKey(ikm, salt, info)
	if err != nil {
		t.Fatalf("DeriveSecretKey error: %v", err)
	}
	k2, err := DeriveSecretKey(ikm, salt, info)
	if err != nil {
		t.Fatalf("DeriveSecretKey error: %v", err)
	}
	if k1.Cmp(k2) != 0 {
		t.Fatal("DeriveSecretKey is not deterministic for identical inputs")
	}
	if k1.Sign() == 0 || k1.Cmp(r) >= 0 {
		t.Fatal("derived secret key not in [1, r)")
	}
}
