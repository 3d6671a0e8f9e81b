package bls12381

// Scalar field Fr arithmetic for BLS12-381: integers mod the subgroup
// order r = X^4 - X^2 + 1 (255 bits). Structurally identical to Fq; kept
// as a distinct set of functions so callers never confuse the two moduli.

import "math/big"

func frAdd(a, b *big.Int) *big.Int { return mod(new(big.Int).Add(a, b), r) }
func frSub(a, b *big.Int) *big.Int { return mod(new(big.Int).Sub(a, b), r) }
func frMul(a, b *big.Int) *big.Int { return mod(new(big.Int).Mul(a, b), r) }
func frSqr(a *big.Int) *big.Int    { return frMul(a, a) }

func frNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(r, mod(a, r))
}

// frInv returns a^-1 mod r, or nil if a == 0.
func frInv(a *big.Int) *big.Int {
	a = mod(a, r)
	if a.Sign() == 0 {
		return nil
	}
	return modInverse(a, r)
}

// frExp computes a^e mod r for a non-negative exponent e.
func frExp(a, e *big.Int) *big.Int {
	return modExp(mod(a, r), e, r)
}

func frEqual(a, b *big.Int) bool { return mod(a, r).Cmp(mod(b, r)) == 0 }
