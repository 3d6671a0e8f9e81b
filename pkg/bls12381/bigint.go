// Package bls12381 implements the BLS12-381 pairing-friendly elliptic
// curve, its tower of field extensions, the optimal ate pairing, BLS
// signature verification, and the witness-residue construction for
// off-chain proving of pairing equations (Novakovic-Eagen, "On Proving
// Pairings").
package bls12381

import "math/big"

// mod returns the non-negative representative of n in [0, m).
func mod(n, m *big.Int) *big.Int {
	r := new(big.Int).Mod(n, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// modExp computes base^exp mod m using math/big's Exp.
// exp is treated as non-negative; callers reduce negative exponents first.
func modExp(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// modInverse returns the modular inverse of a mod m via the extended
// Euclidean algorithm, implemented iteratively to avoid stack growth on
// degenerate inputs. Returns nil if gcd(a, m) != 1.
func modInverse(a, m *big.Int) *big.Int {
	a = mod(a, m)
	if a.Sign() == 0 {
		return nil
	}

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		newR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, newR

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, newS
	}

	if oldR.Cmp(big.NewInt(1)) != 0 {
		return nil // gcd != 1
	}
	return mod(oldS, m)
}
