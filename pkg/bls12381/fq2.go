package bls12381

// Fq2 is the quadratic extension Fq[u]/(u^2 + 1): elements (a, b)
// interpreted as a + b*u. u^2 = -1, i.e. fq2MulByNonResidue multiplies by
// the element (1 + u).

import "math/big"

// Fq2 holds an element a + b*u of Fq2. Always kept reduced.
type Fq2 struct {
	A, B *big.Int
}

func newFq2(a, b *big.Int) *Fq2 {
	return &Fq2{A: mod(a, q), B: mod(b, q)}
}

func fq2Zero() *Fq2 { return &Fq2{A: new(big.Int), B: new(big.Int)} }
func fq2One() *Fq2  { return &Fq2{A: new(big.Int).Set(bigOne), B: new(big.Int)} }

func (e *Fq2) isZero() bool { return e.A.Sign() == 0 && e.B.Sign() == 0 }

func fq2Equal(e, f *Fq2) bool { return fqEqual(e.A, f.A) && fqEqual(e.B, f.B) }

func fq2Add(e, f *Fq2) *Fq2 {
	return &Fq2{A: fqAdd(e.A, f.A), B: fqAdd(e.B, f.B)}
}

func fq2Sub(e, f *Fq2) *Fq2 {
	return &Fq2{A: fqSub(e.A, f.A), B: fqSub(e.B, f.B)}
}

func fq2Neg(e *Fq2) *Fq2 {
	return &Fq2{A: fqNeg(e.A), B: fqNeg(e.B)}
}

// fq2Mul multiplies using schoolbook expansion with u^2 = -1:
// (a0+b0 u)(a1+b1 u) = (a0 a1 - b0 b1) + (a0 b1 + a1 b0) u.
func fq2Mul(e, f *Fq2) *Fq2 {
	aa := fqMul(e.A, f.A)
	bb := fqMul(e.B, f.B)
	ab := fqMul(fqAdd(e.A, e.B), fqAdd(f.A, f.B))
	return &Fq2{
		A: fqSub(aa, bb),
		B: fqSub(ab, fqAdd(aa, bb)),
	}
}

func fq2Sqr(e *Fq2) *Fq2 { return fq2Mul(e, e) }

// fq2MulScalar multiplies an Fq2 element by a scalar in Fq.
func fq2MulScalar(e *Fq2, s *big.Int) *Fq2 {
	return &Fq2{A: fqMul(e.A, s), B: fqMul(e.B, s)}
}

// fq2MulByNonResidue multiplies e by (1 + u):
// (a+b u)(1+u) = (a-b) + (a+b) u.
func fq2MulByNonResidue(e *Fq2) *Fq2 {
	return &Fq2{A: fqSub(e.A, e.B), B: fqAdd(e.A, e.B)}
}

// fq2Inv returns e^-1, or nil if e == 0.
// factor = (a^2+b^2)^-1; result = (a*factor, -b*factor).
func fq2Inv(e *Fq2) *Fq2 {
	if e.isZero() {
		return nil
	}
	norm := fqAdd(fqSqr(e.A), fqSqr(e.B))
	factor := fqInv(norm)
	return &Fq2{A: fqMul(e.A, factor), B: fqMul(fqNeg(e.B), factor)}
}

// fq2Conjugate negates the u-coordinate: the Frobenius map for odd powers.
func fq2Conjugate(e *Fq2) *Fq2 {
	return &Fq2{A: new(big.Int).Set(e.A), B: fqNeg(e.B)}
}

// fq2Frobenius is x -> x^q. Conjugates when the power is odd, identity
// otherwise (Frobenius on Fq2 has order 2).
func fq2Frobenius(e *Fq2, power int) *Fq2 {
	if power%2 == 1 {
		return fq2Conjugate(e)
	}
	return &Fq2{A: new(big.Int).Set(e.A), B: new(big.Int).Set(e.B)}
}

// fq2Exp computes e^k for a non-negative exponent via left-to-right
// square-and-multiply.
func fq2Exp(e *Fq2, k *big.Int) *Fq2 {
	result := fq2One()
	if k.Sign() == 0 {
		return result
	}
	base := e
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = fq2Sqr(result)
		if k.Bit(i) == 1 {
			result = fq2Mul(result, base)
		}
	}
	return result
}

// --- square root (section 4.3) ---
//
// q^2 = 9 mod 16, so (q^2+8)/16 is taken with floor division and equals
// (q^2+7)/16. fq2EighthRoots holds zeta^k, k = 0..7, for the primitive
// eighth root of unity zeta = (1+u)^((q^2-1)/8); the even-indexed entries
// are the fourth roots of unity {1, u, -1, -u}, and zeta^(k/2) is a
// square root of zeta^k.

var q2Plus8Over16 = func() *big.Int {
	q2 := new(big.Int).Mul(q, q)
	e := new(big.Int).Add(q2, big.NewInt(8))
	return e.Rsh(e, 4)
}()

var fq2EighthRoots = func() []*Fq2 {
	e := new(big.Int).Sub(new(big.Int).Mul(q, q), bigOne)
	zeta := fq2Exp(&Fq2{A: big.NewInt(1), B: big.NewInt(1)}, e.Rsh(e, 3))
	roots := []*Fq2{fq2One()}
	for k := 1; k < 8; k++ {
		roots = append(roots, fq2Mul(roots[k-1], zeta))
	}
	return roots
}()

// fq2Lt and fq2Gt compare both coordinates with the same inequality.
// This is NOT a total order; it is preserved verbatim from the source
// because deserialization and sqrt sign selection depend on it exactly
// (see design notes: re-evaluate against the IETF BLS spec before reuse
// elsewhere).
func fq2Lt(e, f *Fq2) bool {
	return e.A.Cmp(f.A) < 0 && e.B.Cmp(f.B) < 0
}

func fq2Gt(e, f *Fq2) bool {
	return e.A.Cmp(f.A) > 0 && e.B.Cmp(f.B) > 0
}

// fq2SignBigEndian reports whether e is "lt" its own negation.
func fq2SignBigEndian(e *Fq2) bool {
	return fq2Lt(e, fq2Neg(e))
}

// fq2Sqrt returns a square root of e using the eighth-roots-of-unity
// algorithm documented in the Ethereum consensus BLS12-381 notes.
func fq2Sqrt(value *Fq2) (*Fq2, error) {
	if value.isZero() {
		return fq2Zero(), nil
	}

	s := fq2Exp(value, q2Plus8Over16)
	vInv := fq2Inv(value)
	if vInv == nil {
		return nil, ErrNoSquareRoot
	}
	check := fq2Mul(fq2Sqr(s), vInv)

	idx := -1
	for i := 0; i < 8; i += 2 {
		if fq2Equal(check, fq2EighthRoots[i]) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNoSquareRoot
	}

	rootInv := fq2Inv(fq2EighthRoots[idx/2])
	candidate := fq2Mul(s, rootInv)
	negCandidate := fq2Neg(candidate)

	if fq2Gt(candidate, negCandidate) {
		return candidate, nil
	}
	return negCandidate, nil
}
