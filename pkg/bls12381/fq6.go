package bls12381

// Fq6 is the cubic extension Fq2[v]/(v^3 - xi), xi = 1+u the Fq2
// non-residue. Elements (x, y, z) are interpreted as x + y*v + z*v^2.

import "math/big"

// Fq6 holds an element x + y*v + z*v^2 of Fq6.
type Fq6 struct {
	X, Y, Z *Fq2
}

func fq6Zero() *Fq6 { return &Fq6{X: fq2Zero(), Y: fq2Zero(), Z: fq2Zero()} }
func fq6One() *Fq6  { return &Fq6{X: fq2One(), Y: fq2Zero(), Z: fq2Zero()} }

func fq6Equal(a, b *Fq6) bool {
	return fq2Equal(a.X, b.X) && fq2Equal(a.Y, b.Y) && fq2Equal(a.Z, b.Z)
}

func (a *Fq6) isZero() bool { return a.X.isZero() && a.Y.isZero() && a.Z.isZero() }

func fq6Add(a, b *Fq6) *Fq6 {
	return &Fq6{X: fq2Add(a.X, b.X), Y: fq2Add(a.Y, b.Y), Z: fq2Add(a.Z, b.Z)}
}

func fq6Sub(a, b *Fq6) *Fq6 {
	return &Fq6{X: fq2Sub(a.X, b.X), Y: fq2Sub(a.Y, b.Y), Z: fq2Sub(a.Z, b.Z)}
}

func fq6Neg(a *Fq6) *Fq6 {
	return &Fq6{X: fq2Neg(a.X), Y: fq2Neg(a.Y), Z: fq2Neg(a.Z)}
}

// fq6MulByNonResidue multiplies by v: (x,y,z)*v = (xi*z, x, y).
func fq6MulByNonResidue(a *Fq6) *Fq6 {
	return &Fq6{X: fq2MulByNonResidue(a.Z), Y: a.X, Z: a.Y}
}

// fq6Mul multiplies using the 6-multiplication Karatsuba-style formula.
func fq6Mul(a, b *Fq6) *Fq6 {
	t0 := fq2Mul(a.X, b.X)
	t1 := fq2Mul(a.Y, b.Y)
	t2 := fq2Mul(a.Z, b.Z)

	z0 := fq2Add(t0, fq2MulByNonResidue(
		fq2Sub(fq2Mul(fq2Add(a.Y, a.Z), fq2Add(b.Y, b.Z)), fq2Add(t1, t2))))
	z1 := fq2Add(
		fq2Sub(fq2Mul(fq2Add(a.X, a.Y), fq2Add(b.X, b.Y)), fq2Add(t0, t1)),
		fq2MulByNonResidue(t2))
	z2 := fq2Add(
		fq2Sub(fq2Mul(fq2Add(a.X, a.Z), fq2Add(b.X, b.Z)), fq2Add(t0, t2)), t1)

	return &Fq6{X: z0, Y: z1, Z: z2}
}

func fq6Sqr(a *Fq6) *Fq6 { return fq6Mul(a, a) }

func fq6Conjugate(a *Fq6) *Fq6 {
	return &Fq6{X: fq2Conjugate(a.X), Y: fq2Conjugate(a.Y), Z: fq2Conjugate(a.Z)}
}

// fq6Inv returns a^-1 using the standard cubic-extension inversion
// formula with three auxiliary Fq2 elements and a single Fq2 inversion.
func fq6Inv(a *Fq6) *Fq6 {
	t0 := fq2Sub(fq2Sqr(a.X), fq2MulByNonResidue(fq2Mul(a.Y, a.Z)))
	t1 := fq2Sub(fq2MulByNonResidue(fq2Sqr(a.Z)), fq2Mul(a.X, a.Y))
	t2 := fq2Sub(fq2Sqr(a.Y), fq2Mul(a.X, a.Z))

	denom := fq2Add(fq2Mul(a.X, t0),
		fq2MulByNonResidue(fq2Add(fq2Mul(a.Z, t1), fq2Mul(a.Y, t2))))
	denomInv := fq2Inv(denom)
	if denomInv == nil {
		return nil
	}

	return &Fq6{
		X: fq2Mul(t0, denomInv),
		Y: fq2Mul(t1, denomInv),
		Z: fq2Mul(t2, denomInv),
	}
}

// --- Frobenius coefficients (section 4.4) ---
//
// frob6C1[j] = xi^((1*q^j - 1)/3), frob6C2[j] = xi^((2*q^j - 2)/3), for
// j = 0..5, with xi = 1+u the Fq2 non-residue. Computed once at package
// initialisation directly from q; q = 1 mod 3 so the division is exact.

var frob6C1, frob6C2 [6]*Fq2

func init() {
	xi := &Fq2{A: new(big.Int).Set(bigOne), B: new(big.Int).Set(bigOne)} // 1+u
	three := big.NewInt(3)
	qPow := big.NewInt(1)
	for j := 0; j < 6; j++ {
		e1 := new(big.Int).Mul(bigOne, qPow)
		e1.Sub(e1, bigOne)
		e1.Div(e1, three)

		e2 := new(big.Int).Mul(bigTwo, qPow)
		e2.Sub(e2, bigTwo)
		e2.Div(e2, three)

		frob6C1[j] = fq2Exp(xi, e1)
		frob6C2[j] = fq2Exp(xi, e2)

		qPow = new(big.Int).Mul(qPow, q)
	}
}

// fq6Frobenius computes a^(q^power).
func fq6Frobenius(a *Fq6, power int) *Fq6 {
	j := ((power % 6) + 6) % 6
	x := fq2Frobenius(a.X, power)
	y := fq2Mul(fq2Frobenius(a.Y, power), frob6C1[j])
	z := fq2Mul(fq2Frobenius(a.Z, power), frob6C2[j])
	return &Fq6{X: x, Y: y, Z: z}
}
