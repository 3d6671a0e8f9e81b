package bls12381

// Witness residue construction for off-chain pairing verification
// (Novakovic-Eagen, "On Proving Pairings"). Rather than have a verifier
// compute the full final-exponentiation hard part (an exponentiation by
// the ~1269-bit d = (q^4-q^2+1)/r), a prover can precompute a witness
// (c, wi) off-chain such that c^lambda = f * wi, where f is the easy-part
// output of a product of Miller loops. Checking that identity and that
// wi collapses the 3- and p-parts of f is far cheaper than repeating the
// hard part directly.
//
// The full final exponent h = (q^12-1)/r factors as 27 * p * h3 for a
// fixed prime p and a residual cofactor h3 coprime to 3 and p. lambda =
// 27 * p is exactly the part of h that is coprime to h3, so once wi has
// been chosen to cancel the 3-part and p-part of f, what remains
// (shifted) lies in the order-h3 subgroup whenever the pairing product
// is one, and has a well-defined lambda-th root mod h3.

import "math/big"

// pFactor is the known prime factor of the hard-part exponent named in
// the construction.
var pFactor, _ = new(big.Int).SetString("5044125407647214251", 10)

var (
	// hardExp is h = (q^12 - 1) / r, the full final-exponentiation
	// exponent, which factors as 27 * p * h3.
	hardExp *big.Int
	// h3 is the residual cofactor of hardExp after removing 27 and p.
	h3 *big.Int
	// lambda is the part of hardExp coprime to h3 (27 * p); the witness
	// certifies c^lambda = f * wi once wi has cancelled f's 3- and
	// p-parts.
	lambda *big.Int
)

func init() {
	hardExp = new(big.Int).Exp(q, big.NewInt(12), nil)
	hardExp.Sub(hardExp, bigOne)
	hardExp.Div(hardExp, r)

	lambda = new(big.Int).Mul(big.NewInt(27), pFactor)
	h3 = new(big.Int).Div(hardExp, lambda)
}

// pThRootShift computes w_p_shift, the factor that cancels f's
// contribution along the order-p part of the cyclotomic subgroup. If f
// is already a p-th residue (f^(27*h3) == 1), no correction is needed.
func pThRootShift(f *Fq12) (*Fq12, error) {
	v := new(big.Int).Mul(big.NewInt(27), h3)
	wj := fq12CyclotomicExp(f, v)
	if wj.isOne() {
		return fq12One(), nil
	}
	vInv := modInverse(v, pFactor)
	if vInv == nil {
		return nil, ErrWitnessComputationFailed
	}
	s := mod(new(big.Int).Neg(vInv), pFactor)
	return fq12CyclotomicExp(wj, s), nil
}

// order3Power returns the smallest k in {0,1,2,3} with a^(3^k) == 1.
func order3Power(a *Fq12) int {
	cur := a
	for k := 0; k < 3; k++ {
		if cur.isOne() {
			return k
		}
		cur = fq12CyclotomicExp(cur, big.NewInt(3))
	}
	return 3
}

// twentySevenThRootShift computes w_27_shift, the factor that cancels
// f's contribution along the order-27 part of the cyclotomic subgroup.
func twentySevenThRootShift(f *Fq12) (*Fq12, error) {
	v := new(big.Int).Mul(pFactor, h3)
	wj := fq12CyclotomicExp(f, v)
	pw := order3Power(wj)
	if pw == 0 {
		return fq12One(), nil
	}
	ord := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(pw)), nil)
	vInv := modInverse(v, ord)
	if vInv == nil {
		return nil, ErrWitnessComputationFailed
	}
	s := mod(new(big.Int).Neg(vInv), ord)
	return fq12CyclotomicExp(wj, s), nil
}

// ComputeWitness builds a witness (c, wi) for the easy-part output f of a
// product of Miller loops, satisfying c^lambda = f * wi with lambda =
// 27*p. wi is the product of the p-th and 27-th root shifts; once it has
// cancelled those components of f, the remainder (shifted) lies in the
// order-h3 subgroup and c is its lambda-th root, computed via lambda's
// inverse mod h3. Such a witness exists only when the pairing product is
// one; for any other f the c^lambda check fails and
// ErrWitnessComputationFailed is returned.
func ComputeWitness(f *Fq12) (c, wi *Fq12, err error) {
	wp, err := pThRootShift(f)
	if err != nil {
		return nil, nil, err
	}
	w27, err := twentySevenThRootShift(f)
	if err != nil {
		return nil, nil, err
	}
	wi = fq12Mul(wp, w27)
	shifted := fq12Mul(f, wi)

	lambdaInv := modInverse(lambda, h3)
	if lambdaInv == nil {
		return nil, nil, ErrWitnessComputationFailed
	}
	c = fq12CyclotomicExp(shifted, lambdaInv)

	if !fq12Equal(shifted, fq12CyclotomicExp(c, lambda)) {
		return nil, nil, ErrWitnessComputationFailed
	}
	cInvLambda := fq12Inv(fq12CyclotomicExp(c, lambda))
	if cInvLambda == nil || !fq12Mul(cInvLambda, shifted).isOne() {
		return nil, nil, ErrWitnessResidueCheckFailed
	}

	return c, wi, nil
}

// VerifyEquivalentPairings recomputes f as the easy-part output of p*q
// and checks that c^lambda * wi^-1 == f, confirming f reduces to the
// identity under the final-exponentiation hard part without the
// verifier repeating ComputeWitness's work.
func VerifyEquivalentPairings(p, q, c, wi *Fq12) bool {
	wiInv := fq12Inv(wi)
	if wiInv == nil {
		return false
	}
	f := PairingEasyPart(fq12Mul(p, q))
	candidate := fq12Mul(fq12CyclotomicExp(c, lambda), wiInv)
	return fq12Equal(candidate, f)
}

// PairingEasyPart exposes the cheap (Frobenius-based) portion of the
// final exponentiation, the input the witness-residue construction
// operates on.
func PairingEasyPart(f *Fq12) *Fq12 {
	fInv := fq12Inv(f)
	t0 := fq12Mul(fq12Frobenius(f, 6), fInv)
	return fq12Mul(fq12Frobenius(t0, 2), t0)
}
