package bls12381

// Fq12 is the quadratic extension Fq6[w]/(w^2 - v): elements (x, y)
// interpreted as x + y*w. Used as the pairing target field (before the
// final exponentiation cofactor is removed) and as the ambient field for
// line-function evaluation in the Miller loop.

import "math/big"

// Fq12 holds an element x + y*w of Fq12.
type Fq12 struct {
	X, Y *Fq6
}

func fq12Zero() *Fq12 { return &Fq12{X: fq6Zero(), Y: fq6Zero()} }
func fq12One() *Fq12  { return &Fq12{X: fq6One(), Y: fq6Zero()} }

func fq12Equal(a, b *Fq12) bool { return fq6Equal(a.X, b.X) && fq6Equal(a.Y, b.Y) }

func (a *Fq12) isOne() bool { return fq12Equal(a, fq12One()) }

func fq12Add(a, b *Fq12) *Fq12 {
	return &Fq12{X: fq6Add(a.X, b.X), Y: fq6Add(a.Y, b.Y)}
}

func fq12Sub(a, b *Fq12) *Fq12 {
	return &Fq12{X: fq6Sub(a.X, b.X), Y: fq6Sub(a.Y, b.Y)}
}

func fq12Neg(a *Fq12) *Fq12 {
	return &Fq12{X: fq6Neg(a.X), Y: fq6Neg(a.Y)}
}

// fq12Mul multiplies two Fq12 elements via Karatsuba over Fq6.
func fq12Mul(a, b *Fq12) *Fq12 {
	t0 := fq6Mul(a.X, b.X)
	t1 := fq6Mul(a.Y, b.Y)

	x := fq6Add(t0, fq6MulByNonResidue(t1))
	y := fq6Sub(fq6Sub(fq6Mul(fq6Add(a.X, a.Y), fq6Add(b.X, b.Y)), t0), t1)

	return &Fq12{X: x, Y: y}
}

func fq12Sqr(a *Fq12) *Fq12 {
	ab := fq6Mul(a.X, a.Y)
	x := fq6Add(
		fq6Mul(fq6Add(a.X, a.Y), fq6Add(a.X, fq6MulByNonResidue(a.Y))),
		fq6Neg(fq6Add(ab, fq6MulByNonResidue(ab))))
	y := fq6Add(ab, ab)
	return &Fq12{X: x, Y: y}
}

// fq12Inv returns a^-1 using the quadratic-extension formula
// 1/(x+yw) = (x - yw) / (x^2 - v*y^2).
func fq12Inv(a *Fq12) *Fq12 {
	t := fq6Sub(fq6Sqr(a.X), fq6MulByNonResidue(fq6Sqr(a.Y)))
	tInv := fq6Inv(t)
	if tInv == nil {
		return nil
	}
	return &Fq12{X: fq6Mul(a.X, tInv), Y: fq6Neg(fq6Mul(a.Y, tInv))}
}

// fq12Conjugate negates the w-coordinate: x + yw -> x - yw. This is the
// Frobenius map raised to the 6th power (the "easy part" automorphism).
func fq12Conjugate(a *Fq12) *Fq12 {
	return &Fq12{X: a.X, Y: fq6Neg(a.Y)}
}

// --- Frobenius coefficients ---
//
// gamma[j] = xi^((q^j - 1)/6), xi = 1+u in Fq2, j = 0..11. q = 1 mod 6
// so the division is exact. Computed once at package initialisation.

var frob12Gamma [12]*Fq2

func init() {
	xi := &Fq2{A: new(big.Int).Set(bigOne), B: new(big.Int).Set(bigOne)}
	six := big.NewInt(6)
	qPow := big.NewInt(1)
	for j := 0; j < 12; j++ {
		e := new(big.Int).Sub(qPow, bigOne)
		e.Div(e, six)
		frob12Gamma[j] = fq2Exp(xi, e)
		qPow = new(big.Int).Mul(qPow, q)
	}
}

// fq6ScaleFq2 multiplies every Fq2 coordinate of a by an Fq2 scalar.
func fq6ScaleFq2(a *Fq6, s *Fq2) *Fq6 {
	return &Fq6{X: fq2Mul(a.X, s), Y: fq2Mul(a.Y, s), Z: fq2Mul(a.Z, s)}
}

// fq12Frobenius computes a^(q^power).
func fq12Frobenius(a *Fq12, power int) *Fq12 {
	j := ((power % 12) + 12) % 12
	x := fq6Frobenius(a.X, power)
	y := fq6ScaleFq2(fq6Frobenius(a.Y, power), frob12Gamma[j])
	return &Fq12{X: x, Y: y}
}

// fq12FromFq scalar-injects an Fq element as an Fq12 constant.
func fq12FromFq(v *big.Int) *Fq12 {
	return &Fq12{
		X: &Fq6{X: &Fq2{A: new(big.Int).Set(v), B: new(big.Int)}, Y: fq2Zero(), Z: fq2Zero()},
		Y: fq6Zero(),
	}
}

// fq12Exp computes a^k in Fq12 for a non-negative exponent via
// left-to-right square-and-multiply.
func fq12Exp(a *Fq12, k *big.Int) *Fq12 {
	result := fq12One()
	if k.Sign() == 0 {
		return result
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = fq12Sqr(result)
		if k.Bit(i) == 1 {
			result = fq12Mul(result, a)
		}
	}
	return result
}

// --- cyclotomic subgroup acceleration (section 4.5) ---

// fq12CyclotomicSquare is the Granger-Scott compressed squaring for
// elements of the order-Phi12(q) cyclotomic subgroup, computed via three
// Fq4 squarings (fq4Square) over pairs of Fq2 coordinates.
func fq12CyclotomicSquare(a *Fq12) *Fq12 {
	// gi is the Fq2 coefficient of w^i: X = (g0, g2, g4), Y = (g1, g3, g5).
	// Since w^6 = xi, the pairs (g0, g3), (g1, g4), (g2, g5) are Fq4 elements.
	g0, g2, g4 := a.X.X, a.X.Y, a.X.Z
	g1, g3, g5 := a.Y.X, a.Y.Y, a.Y.Z

	t0, t1 := fq4Square(g0, g3)
	t2, t3 := fq4Square(g1, g4)
	t4, t5 := fq4Square(g2, g5)
	t5 = fq2MulByNonResidue(t5)

	c0 := fq2Add(fq2MulScalar(fq2Sub(t0, g0), bigTwo), t0)
	c2 := fq2Add(fq2MulScalar(fq2Sub(t2, g2), bigTwo), t2)
	c4 := fq2Add(fq2MulScalar(fq2Sub(t4, g4), bigTwo), t4)
	c1 := fq2Add(fq2MulScalar(fq2Add(t5, g1), bigTwo), t5)
	c3 := fq2Add(fq2MulScalar(fq2Add(t1, g3), bigTwo), t1)
	c5 := fq2Add(fq2MulScalar(fq2Add(t3, g5), bigTwo), t3)

	return &Fq12{
		X: &Fq6{X: c0, Y: c2, Z: c4},
		Y: &Fq6{X: c1, Y: c3, Z: c5},
	}
}

// fq4Square computes the pair (t0, t1) = (a^2 + xi*b^2, 2ab) used by the
// compressed cyclotomic squaring, where (a, b) is treated as an Fq4
// element a + b*w over Fq2 with w^2 = xi.
func fq4Square(a, b *Fq2) (*Fq2, *Fq2) {
	t0 := fq2Sqr(a)
	t1 := fq2Sqr(b)
	t2 := fq2MulByNonResidue(t1)
	c0 := fq2Add(t2, t0)
	c1 := fq2Sub(fq2Sqr(fq2Add(a, b)), fq2Add(t0, t1))
	return c0, c1
}

// fq12CyclotomicExp raises a cyclotomic-subgroup element to a non-negative
// exponent using cyclotomic squaring in place of general squaring.
func fq12CyclotomicExp(a *Fq12, e *big.Int) *Fq12 {
	result := fq12One()
	if e.Sign() == 0 {
		return result
	}
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = fq12CyclotomicSquare(result)
		if e.Bit(i) == 1 {
			result = fq12Mul(result, a)
		}
	}
	return result
}

// absX is |X|, the unsigned curve parameter used throughout the Miller
// loop and final exponentiation addition chain.
var absX = func() *big.Int {
	v, _ := new(big.Int).SetString("d201000000010000", 16)
	return v
}()

// fq12FinalExponentiation raises f to (q^12-1)/r, split into the cheap
// "easy part" (the unitary projection) and the hard part (the
// Fuentes-Castaneda-style addition chain parameterised by |X|).
func fq12FinalExponentiation(f *Fq12) *Fq12 {
	// Easy part: (f^(q^6) * f^-1)^(q^2) * f^(q^6) * f^-1.
	fInv := fq12Inv(f)
	t0 := fq12Mul(fq12Frobenius(f, 6), fInv)
	easy := fq12Mul(fq12Frobenius(t0, 2), t0)

	// Hard part (section 4.5), operating entirely within the cyclotomic
	// subgroup via cyclotomic squaring/exponentiation. easy is already
	// frob^2(t0)*t0 from above, i.e. the addition chain's t1 - do not
	// re-apply the easy-part map a second time here.
	t1 := easy

	cycExp := func(x *Fq12) *Fq12 { return fq12CyclotomicExp(x, absX) }

	t2 := fq12Conjugate(cycExp(t1))
	t3 := fq12Mul(fq12Conjugate(fq12CyclotomicSquare(t1)), t2)
	t4 := fq12Conjugate(cycExp(t3))
	t5 := fq12Conjugate(cycExp(t4))
	t6 := fq12Mul(fq12Conjugate(cycExp(t5)), fq12CyclotomicSquare(t2))
	t7 := fq12Conjugate(cycExp(t6))

	result := fq12Mul(fq12Frobenius(fq12Mul(t2, t5), 2), fq12Frobenius(fq12Mul(t4, t1), 3))
	result = fq12Mul(result, fq12Frobenius(fq12Mul(t6, fq12Conjugate(t1)), 1))
	result = fq12Mul(result, fq12Mul(t7, fq12Mul(fq12Conjugate(t3), t1)))

	return result
}
