package bls12381

// G1 point arithmetic over the curve y^2 = x^3 + 4 in Fq, in affine
// coordinates. Affine form keeps the case structure explicit (identity,
// doubling, vertical line, general add) at the cost of a field inversion
// per addition; this package trades the Jacobian speedup for the
// straight-line reading the witness-residue and pairing code depends on.

import "math/big"

// G1 is an affine point on the G1 curve. Inf marks the point at infinity;
// when Inf is true, X and Y are not meaningful.
type G1 struct {
	X, Y *big.Int
	Inf  bool
}

var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)

	// g1CofactorExp is 1-X, the exponent used to clear G1's cofactor by
	// multiplying a curve point directly ([1-X]P lies in the order-r
	// subgroup for any point on the curve).
	g1CofactorExp = func() *big.Int {
		return new(big.Int).Sub(bigOne, new(big.Int).Neg(absX))
	}()
)

// G1Generator returns the fixed generator of G1.
func G1Generator() *G1 {
	return &G1{X: new(big.Int).Set(g1GenX), Y: new(big.Int).Set(g1GenY)}
}

// G1Identity returns the point at infinity.
func G1Identity() *G1 { return &G1{Inf: true} }

func g1Equal(a, b *G1) bool {
	if a.Inf || b.Inf {
		return a.Inf == b.Inf
	}
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0
}

// g1IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + 4. The point
// at infinity is never on the curve under this predicate; callers that
// accept infinity must check Inf separately.
func g1IsOnCurve(p *G1) bool {
	if p.Inf {
		return false
	}
	lhs := fqSqr(p.Y)
	rhs := fqAdd(fqMul(fqSqr(p.X), p.X), curveB)
	return lhs.Cmp(rhs) == 0
}

// g1Neg returns -P.
func g1Neg(p *G1) *G1 {
	if p.Inf {
		return G1Identity()
	}
	return &G1{X: new(big.Int).Set(p.X), Y: fqNeg(p.Y)}
}

// g1Add adds two affine G1 points, handling the identity, the
// vertical-line (P + (-P) = O) and doubling cases explicitly before
// falling back to the general chord formula.
func g1Add(a, b *G1) *G1 {
	if a.Inf && b.Inf {
		return G1Identity()
	}
	if a.Inf {
		return &G1{X: new(big.Int).Set(b.X), Y: new(big.Int).Set(b.Y)}
	}
	if b.Inf {
		return &G1{X: new(big.Int).Set(a.X), Y: new(big.Int).Set(a.Y)}
	}
	if a.X.Cmp(b.X) == 0 {
		if fqEqual(a.Y, b.Y) {
			return g1Double(a)
		}
		// a.Y == -b.Y: vertical line, sum is the point at infinity.
		return G1Identity()
	}

	lambda := fqMul(fqSub(b.Y, a.Y), fqInv(fqSub(b.X, a.X)))
	x3 := fqSub(fqSub(fqSqr(lambda), a.X), b.X)
	y3 := fqSub(fqMul(lambda, fqSub(a.X, x3)), a.Y)
	return &G1{X: x3, Y: y3}
}

// g1Double computes 2P via the tangent-line slope (a=0 so the numerator
// is simply 3x^2).
func g1Double(a *G1) *G1 {
	if a.Inf {
		return G1Identity()
	}
	if a.Y.Sign() == 0 {
		return G1Identity()
	}
	lambda := fqMul(fqMul(big.NewInt(3), fqSqr(a.X)), fqInv(fqMul(bigTwo, a.Y)))
	x3 := fqSub(fqSqr(lambda), fqMul(bigTwo, a.X))
	y3 := fqSub(fqMul(lambda, fqSub(a.X, x3)), a.Y)
	return &G1{X: x3, Y: y3}
}

// g1ScalarMul computes [k]P via double-and-add over the unsigned
// magnitude of k. Negative k is handled by negating P first.
func g1ScalarMul(p *G1, k *big.Int) *G1 {
	if k.Sign() == 0 || p.Inf {
		return G1Identity()
	}
	base := p
	mag := k
	if k.Sign() < 0 {
		base = g1Neg(p)
		mag = new(big.Int).Neg(k)
	}

	acc := G1Identity()
	for i := mag.BitLen() - 1; i >= 0; i-- {
		acc = g1Double(acc)
		if mag.Bit(i) == 1 {
			acc = g1Add(acc, base)
		}
	}
	return acc
}

// g1ClearCofactor multiplies by (1-X), projecting an arbitrary curve
// point down into the order-r subgroup.
func g1ClearCofactor(p *G1) *G1 {
	return g1ScalarMul(p, g1CofactorExp)
}

// g1InSubgroup reports whether p is in the order-r subgroup: [r]P == O.
func g1InSubgroup(p *G1) bool {
	if p.Inf {
		return true
	}
	return g1ScalarMul(p, r).Inf
}
