package bls12381

// Optimal ate pairing e: G1 x G2 -> GT for BLS12-381.
//
// G2 lives on the sextic twist E'(Fq2); before a line function can be
// evaluated against a G1 point (which lives over the base field Fq) the
// twist point is lifted ("untwisted") into the full extension field Fq12
// via the root v = w^2, so that the chord/tangent through the lifted
// points can be evaluated in the same field as P.

import "math/big"

// xiInv is the inverse of the sextic twist non-residue xi = 1+u, used to
// scale the untwist embeddings: v^3 = xi means v^-1 = v^2 * xi^-1, and
// (vw)^2 = xi means (vw)^-1 = vw * xi^-1.
var xiInv = fq2Inv(&Fq2{A: new(big.Int).Set(bigOne), B: new(big.Int).Set(bigOne)})

// untwistX lifts a G2 x-coordinate into Fq12 as x*v^-1 = x*xi^-1*v^2,
// landing in the v^2 ("Z") slot of the X component.
func untwistX(x *Fq2) *Fq12 {
	scaled := fq2Mul(x, xiInv)
	return &Fq12{X: &Fq6{X: fq2Zero(), Y: fq2Zero(), Z: scaled}, Y: fq6Zero()}
}

// untwistY lifts a G2 y-coordinate into Fq12 as y*(vw)^-1 = y*xi^-1*vw,
// landing in the v^1 ("Y") slot of the Y component (i.e. the vw term).
func untwistY(y *Fq2) *Fq12 {
	scaled := fq2Mul(y, xiInv)
	return &Fq12{X: fq6Zero(), Y: &Fq6{X: fq2Zero(), Y: scaled, Z: fq2Zero()}}
}

// untwistG2 lifts an affine G2 point into the pair of Fq12 elements
// representing its untwisted x and y coordinates.
func untwistG2(p *G2) (wideX, wideY *Fq12) {
	return untwistX(p.X), untwistY(p.Y)
}

// fq12MulScalar multiplies an Fq12 element by a small integer scalar.
func fq12MulScalar(a *Fq12, s *big.Int) *Fq12 {
	return fq12Mul(a, fq12FromFq(s))
}

// lineDouble computes the tangent line at R, evaluated entirely in Fq12
// over the untwisted embedding, and returns (line value at P, 2R).
func lineDouble(rPoint *G2, px, py *big.Int) (*Fq12, *G2) {
	if rPoint.Inf || rPoint.Y.isZero() {
		return fq12One(), G2Identity()
	}
	wideX, wideY := untwistG2(rPoint)
	slopeNum := fq12MulScalar(fq12Sqr(wideX), big.NewInt(3))
	slopeDenInv := fq12Inv(fq12MulScalar(wideY, bigTwo))
	slope := fq12Mul(slopeNum, slopeDenInv)
	vTerm := fq12Sub(wideY, fq12Mul(slope, wideX))
	f := fq12Sub(fq12Sub(fq12FromFq(py), fq12Mul(fq12FromFq(px), slope)), vTerm)
	return f, g2Double(rPoint)
}

// lineAdd computes the chord line through R and Q, evaluated entirely in
// Fq12 over the untwisted embedding, and returns (line value at P, R+Q).
func lineAdd(rPoint *G2, q *G2, px, py *big.Int) (*Fq12, *G2) {
	if rPoint.Inf {
		return fq12One(), &G2{X: q.X, Y: q.Y, Inf: q.Inf}
	}
	if fq2Equal(rPoint.X, q.X) {
		if fq2Equal(rPoint.Y, q.Y) {
			return lineDouble(rPoint, px, py)
		}
		wideXR, _ := untwistG2(rPoint)
		return fq12Sub(fq12FromFq(px), wideXR), G2Identity()
	}

	wideXR, wideYR := untwistG2(rPoint)
	wideXQ, wideYQ := untwistG2(q)
	slopeNum := fq12Sub(wideYQ, wideYR)
	slopeDenInv := fq12Inv(fq12Sub(wideXQ, wideXR))
	slope := fq12Mul(slopeNum, slopeDenInv)
	vTerm := fq12Sub(wideYR, fq12Mul(slope, wideXR))
	f := fq12Sub(fq12Sub(fq12FromFq(py), fq12Mul(fq12FromFq(px), slope)), vTerm)
	return f, g2Add(rPoint, q)
}

// millerLoop runs the Miller loop over the bits of |X|, accumulating the
// product of line-function evaluations against P while doubling (and
// occasionally adding Q to) the running accumulator R.
func millerLoop(p *G1, qPoint *G2) *Fq12 {
	if p.Inf || qPoint.Inf {
		return fq12One()
	}

	f := fq12One()
	acc := &G2{X: qPoint.X, Y: qPoint.Y}

	for i := absX.BitLen() - 2; i >= 0; i-- {
		var lf *Fq12
		lf, acc = lineDouble(acc, p.X, p.Y)
		f = fq12Mul(fq12Sqr(f), lf)

		if absX.Bit(i) == 1 {
			lf, acc = lineAdd(acc, qPoint, p.X, p.Y)
			f = fq12Mul(f, lf)
		}
	}

	// X is negative; conjugating f accounts for the sign (equivalent to
	// running the loop over -|X| and inverting the accumulated value).
	return fq12Conjugate(f)
}

// Pair computes the optimal ate pairing e(P, Q) in GT, as a raw Fq12
// element before the final exponentiation cofactor has been checked.
func Pair(p *G1, qPoint *G2) *Fq12 {
	return fq12FinalExponentiation(millerLoop(p, qPoint))
}

// MultiMillerLoop computes the product of Miller loop evaluations over a
// batch of pairs, without applying the final exponentiation. Useful for
// multi-pairing checks where only the product needs to reach the
// identity in GT.
func MultiMillerLoop(g1Points []*G1, g2Points []*G2) (*Fq12, error) {
	if len(g1Points) != len(g2Points) {
		return nil, ErrInputMismatch
	}
	f := fq12One()
	for i := range g1Points {
		if g1Points[i].Inf || g2Points[i].Inf {
			continue
		}
		f = fq12Mul(f, millerLoop(g1Points[i], g2Points[i]))
	}
	return f, nil
}

// ValidatePairing reports whether the product of e(P_i, Q_i) over all
// pairs equals the identity of GT.
func ValidatePairing(g1Points []*G1, g2Points []*G2) (bool, error) {
	f, err := MultiMillerLoop(g1Points, g2Points)
	if err != nil {
		return false, err
	}
	return fq12FinalExponentiation(f).isOne(), nil
}
