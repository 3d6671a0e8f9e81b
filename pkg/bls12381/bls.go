package bls12381

// BLS signatures over BLS12-381 in the MinSig convention: public keys
// live in G2 (96-byte compressed), signatures live in G1 (48-byte
// compressed). This trades a larger public key for a smaller signature,
// the convention used when many signatures but few public keys need to
// be transmitted.

import "math/big"

var dstSign = DSTHashToG1

// PubkeyFromSecret derives the G2 public key for a secret scalar.
func PubkeyFromSecret(secret *big.Int) *G2 {
	return g2ScalarMul(G2Generator(), secret)
}

// Sign produces a G1 signature over msg under the given secret scalar.
func Sign(secret *big.Int, msg []byte) (*G1, error) {
	hm, err := HashToG1(msg, dstSign)
	if err != nil {
		return nil, err
	}
	return g1ScalarMul(hm, secret), nil
}

// Verify checks a single BLS signature: it hashes msg to H(m) in G1 and
// passes it to rawVerify, which checks the two-pairing product
// e(H(m), pk) * e(-sig, G2.generator) == 1. This holds for a valid
// signature since signature = secret*H(m) and pk = secret*G2.generator.
func Verify(pubKey *G2, msg []byte, sig *G1) (bool, error) {
	hm, err := HashToG1(msg, dstSign)
	if err != nil {
		return false, err
	}
	return rawVerify(pubKey, hm, sig)
}

// rawVerify checks e(hashedMessage, pubKey) == e(signature, G2.generator)
// via the equivalent single multi-pairing product
// e(hashedMessage, pubKey) * e(-signature, G2.generator) == 1.
func rawVerify(pubKey *G2, hashedMessage, signature *G1) (bool, error) {
	if pubKey.Inf || signature.Inf {
		return false, nil
	}
	negSig := g1Neg(signature)
	return ValidatePairing(
		[]*G1{hashedMessage, negSig},
		[]*G2{pubKey, G2Generator()},
	)
}

// AggregatePublicKeys sums a set of G2 public keys.
func AggregatePublicKeys(keys []*G2) *G2 {
	agg := G2Identity()
	for _, k := range keys {
		agg = g2Add(agg, k)
	}
	return agg
}

// AggregateSignatures sums a set of G1 signatures.
func AggregateSignatures(sigs []*G1) *G1 {
	agg := G1Identity()
	for _, s := range sigs {
		agg = g1Add(agg, s)
	}
	return agg
}

// FastAggregateVerify checks an aggregate signature where every signer
// signed the same message: e(H(m), aggPK) == e(aggSig, G2.generator).
func FastAggregateVerify(pubKeys []*G2, msg []byte, sig *G1) (bool, error) {
	if len(pubKeys) == 0 {
		return false, nil
	}
	aggPK := AggregatePublicKeys(pubKeys)
	if aggPK.Inf {
		return false, nil
	}
	hm, err := HashToG1(msg, dstSign)
	if err != nil {
		return false, err
	}
	return rawVerify(aggPK, hm, sig)
}

// VerifyAggregate checks an aggregate signature where each signer may
// have signed a distinct message:
// product(e(H(m_i), pk_i)) == e(aggSig, G2.generator).
func VerifyAggregate(pubKeys []*G2, msgs [][]byte, sig *G1) (bool, error) {
	if len(pubKeys) == 0 || len(pubKeys) != len(msgs) {
		return false, ErrInputMismatch
	}
	if sig.Inf {
		return false, nil
	}

	n := len(pubKeys)
	g1Points := make([]*G1, n+1)
	g2Points := make([]*G2, n+1)
	for i := 0; i < n; i++ {
		if pubKeys[i].Inf {
			return false, nil
		}
		hm, err := HashToG1(msgs[i], dstSign)
		if err != nil {
			return false, err
		}
		g1Points[i] = hm
		g2Points[i] = pubKeys[i]
	}
	g1Points[n] = g1Neg(sig)
	g2Points[n] = G2Generator()

	return ValidatePairing(g1Points, g2Points)
}
