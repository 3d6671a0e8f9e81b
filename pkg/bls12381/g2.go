package bls12381

// G2 point arithmetic over the twist curve y^2 = x^3 + 4(1+u) in Fq2, in
// affine coordinates. Mirrors g1.go's case structure one level up the
// tower.

import "math/big"

// G2 is an affine point on the G2 twist. Inf marks the point at infinity.
type G2 struct {
	X, Y *Fq2
	Inf  bool
}

var twistB = &Fq2{A: big.NewInt(4), B: big.NewInt(4)}

var (
	g2GenXA, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXB, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYA, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYB, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)

	// g2Cofactor is the fixed 507-bit cofactor of the G2 twist's full
	// point group over the order-r subgroup.
	g2Cofactor, _ = new(big.Int).SetString(
		"5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5", 16)
)

// G2Generator returns the fixed generator of G2.
func G2Generator() *G2 {
	return &G2{
		X: &Fq2{A: new(big.Int).Set(g2GenXA), B: new(big.Int).Set(g2GenXB)},
		Y: &Fq2{A: new(big.Int).Set(g2GenYA), B: new(big.Int).Set(g2GenYB)},
	}
}

// G2Identity returns the point at infinity.
func G2Identity() *G2 { return &G2{Inf: true} }

func g2Equal(a, b *G2) bool {
	if a.Inf || b.Inf {
		return a.Inf == b.Inf
	}
	return fq2Equal(a.X, b.X) && fq2Equal(a.Y, b.Y)
}

// g2IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + 4(1+u).
func g2IsOnCurve(p *G2) bool {
	if p.Inf {
		return false
	}
	lhs := fq2Sqr(p.Y)
	rhs := fq2Add(fq2Mul(fq2Sqr(p.X), p.X), twistB)
	return fq2Equal(lhs, rhs)
}

func g2Neg(p *G2) *G2 {
	if p.Inf {
		return G2Identity()
	}
	return &G2{X: &Fq2{A: new(big.Int).Set(p.X.A), B: new(big.Int).Set(p.X.B)}, Y: fq2Neg(p.Y)}
}

func g2Add(a, b *G2) *G2 {
	if a.Inf {
		return &G2{X: b.X, Y: b.Y, Inf: b.Inf}
	}
	if b.Inf {
		return &G2{X: a.X, Y: a.Y, Inf: a.Inf}
	}
	if fq2Equal(a.X, b.X) {
		if fq2Equal(a.Y, b.Y) {
			return g2Double(a)
		}
		return G2Identity()
	}

	lambda := fq2Mul(fq2Sub(b.Y, a.Y), fq2Inv(fq2Sub(b.X, a.X)))
	x3 := fq2Sub(fq2Sub(fq2Sqr(lambda), a.X), b.X)
	y3 := fq2Sub(fq2Mul(lambda, fq2Sub(a.X, x3)), a.Y)
	return &G2{X: x3, Y: y3}
}

func g2Double(a *G2) *G2 {
	if a.Inf || a.Y.isZero() {
		return G2Identity()
	}
	lambda := fq2Mul(fq2MulScalar(fq2Sqr(a.X), big.NewInt(3)), fq2Inv(fq2MulScalar(a.Y, bigTwo)))
	x3 := fq2Sub(fq2Sqr(lambda), fq2MulScalar(a.X, bigTwo))
	y3 := fq2Sub(fq2Mul(lambda, fq2Sub(a.X, x3)), a.Y)
	return &G2{X: x3, Y: y3}
}

// g2ScalarMul computes [k]P via double-and-add over |k|.
func g2ScalarMul(p *G2, k *big.Int) *G2 {
	if k.Sign() == 0 || p.Inf {
		return G2Identity()
	}
	base := p
	mag := k
	if k.Sign() < 0 {
		base = g2Neg(p)
		mag = new(big.Int).Neg(k)
	}

	acc := G2Identity()
	for i := mag.BitLen() - 1; i >= 0; i-- {
		acc = g2Double(acc)
		if mag.Bit(i) == 1 {
			acc = g2Add(acc, base)
		}
	}
	return acc
}

// g2ClearCofactor multiplies by the fixed G2 cofactor, projecting an
// arbitrary twist point down into the order-r subgroup.
func g2ClearCofactor(p *G2) *G2 {
	return g2ScalarMul(p, g2Cofactor)
}

func g2InSubgroup(p *G2) bool {
	if p.Inf {
		return true
	}
	return g2ScalarMul(p, r).Inf
}
