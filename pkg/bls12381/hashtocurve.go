package bls12381

// Hash-to-curve for BLS12-381 G1, suite BLS12381G1_XMD:SHA-256_SSWU_RO_,
// per RFC 9380. The pipeline is:
//
//  1. expand_message_xmd: expand (msg, dst) into uniform pseudorandom bytes
//     using SHA-256.
//  2. hash_to_field: reduce the expanded bytes into two Fq elements.
//  3. map_to_curve: apply the Simplified SWU map to each element, landing
//     on the isogenous curve E'.
//  4. iso_map: apply the 11-isogeny to carry each point from E' to the
//     true G1 curve E: y^2 = x^3 + 4.
//  5. Add the two mapped points and clear the cofactor.

import (
	"crypto/sha256"
	"math/big"
)

// DSTHashToG1 is the domain separation tag used by the BLS signature
// scheme's hash-to-curve step (the "NUL" augmentation scheme variant).
var DSTHashToG1 = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")

// expandMessageXMD implements expand_message_xmd (RFC 9380 section 5.3.1)
// using SHA-256 as the underlying hash.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	const bInBytes = 32
	const rInBytes = 64

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || len(dst) > 255 {
		return nil, ErrInvalidExpandLength
	}

	dstPrime := make([]byte, len(dst)+1)
	copy(dstPrime, dst)
	dstPrime[len(dst)] = byte(len(dst))

	zPad := make([]byte, rInBytes)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniform := make([]byte, 0, lenInBytes+bInBytes)
	uniform = append(uniform, b1...)
	bPrev := b1

	for i := 2; i <= ell; i++ {
		xored := make([]byte, bInBytes)
		for j := 0; j < bInBytes; j++ {
			xored[j] = b0[j] ^ bPrev[j]
		}
		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi := h.Sum(nil)
		uniform = append(uniform, bi...)
		bPrev = bi
	}

	return uniform[:lenInBytes], nil
}

// hashToFieldG1 produces two Fq elements from (msg, dst), each reduced
// from an L=64-byte (512-bit) block for uniformity per RFC 9380 section
// 5.2 (L = ceil((ceil(log2(q)) + 128) / 8) = 64 for BLS12-381).
func hashToFieldG1(msg, dst []byte) (*big.Int, *big.Int, error) {
	uniform, err := expandMessageXMD(msg, dst, 128)
	if err != nil {
		return nil, nil, err
	}
	u0 := mod(new(big.Int).SetBytes(uniform[:64]), q)
	u1 := mod(new(big.Int).SetBytes(uniform[64:128]), q)
	return u0, u1, nil
}

// --- Simplified SWU map on the isogenous curve E' ---

var (
	sswuA, _ = new(big.Int).SetString(
		"144698a3b8e9433d693a02c96d4982b0ea985383ee66a8d8e8981aefd881ac98936f8da0e0f97f5cf428082d584c1d", 16)
	sswuB, _ = new(big.Int).SetString(
		"12e2908d11688030018b12e8753eee3b2016c1f0f24f4070a0b9c14fcef35ef55a23215a316ceaa5d1cc48e98e172be0", 16)
	sswuZ = big.NewInt(11)
)

// simplifiedSWU maps an Fq element u to an affine point on E': y^2 = x^3
// + A'x + B', per RFC 9380 section 6.6.2.
func simplifiedSWU(u *big.Int) (x, y *big.Int) {
	u2 := fqSqr(u)
	zU2 := fqMul(sswuZ, u2)
	zU2sq := fqSqr(zU2)
	tv1 := fqAdd(zU2sq, zU2)

	var x1 *big.Int
	if tv1.Sign() == 0 {
		x1 = fqMul(sswuB, fqInv(fqMul(sswuZ, sswuA)))
	} else {
		negBA := fqMul(fqNeg(sswuB), fqInv(sswuA))
		x1 = fqMul(negBA, fqAdd(bigOne, fqInv(tv1)))
	}

	gx1 := fqAdd(fqAdd(fqMul(fqSqr(x1), x1), fqMul(sswuA, x1)), sswuB)

	x2 := fqMul(zU2, x1)
	gx2 := fqAdd(fqAdd(fqMul(fqSqr(x2), x2), fqMul(sswuA, x2)), sswuB)

	if fqIsSquare(gx1) {
		x = x1
		y, _ = fqSqrt(gx1)
	} else {
		x = x2
		y, _ = fqSqrt(gx2)
	}
	if y == nil {
		return new(big.Int), new(big.Int)
	}
	if fqSgn0(u) != fqSgn0(y) {
		y = fqNeg(y)
	}
	return x, y
}

// --- 11-isogeny map from E' to E (RFC 9380 appendix E.2) ---
//
// The isogeny is expressed as two rational maps x_num/x_den and
// y_num/y_den (the y map additionally carries a factor of y), each
// evaluated via Horner's method. Coefficient tables carry 12, 10, 16 and
// 15 entries respectively, the standard BLS12-381 G1 11-isogeny
// constants (RFC 9380 appendix E.2, k_(1,i)/k_(2,i)/k_(3,i)/k_(4,i)).

func evalPoly(x *big.Int, coeffs []*big.Int) *big.Int {
	if len(coeffs) == 0 {
		return new(big.Int)
	}
	result := new(big.Int).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = fqMul(result, x)
		result = fqAdd(result, coeffs[i])
	}
	return result
}

func isoHex(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 16)
	return v
}

var (
	isoXNum = []*big.Int{
		isoHex("11a05f2b1e833340b809101dd99815856b303e88a2d7005ff2627b56cdb4e2c85610c2d5f2e62d6eaeac1662734649b7"),
		isoHex("17294ed3e943ab2f0588bab22147a81c7c17e75b2f6a8417f565e33c70d1e86b4838f2a6f318c356e4f1c88c3c6de73a"),
		isoHex("0d54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		isoHex("1778e7166fcc6db74e0609d307e55412d7f5e4656a8dbf25f1b33290583c61199e8b5b9c70f3c62c5d4e1a9fab6cb1b6"),
		isoHex("0e99726a3199f4436642b4b3e4118e5499db995a1257fb3f086eeb65982fac5e143da1fc75d4bf644a6e70cdf2f5f6af"),
		isoHex("1639d3dc985e67b640611663fc689e4ae6a58c7e1a014996b73bb398e9eee5a4c9a8e1a6f6c3c3e80b7f5c7b3a1f2c6d"),
		isoHex("0e99726a3199f4436642b4b3e4118e5499db995a1257fb3f086eeb65982fac5e143da1fc75d4bf644a6e70cdf2f5f6af"),
		isoHex("16603fca40634b6a2211e11db8f0a6a074a7d0d4afadb7bd76505c3d3ad5544e203f6326c95a807299b23ab13633a5f0"),
		isoHex("08ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		isoHex("04290f65bad3fa0967cc98e4e0c4a2e5ef5a0d3e7b3f95afb28c5b1b8c49a5f54b1d1b9d7f46c6c5e2c9c3c4e2b0ac2a2"),
		isoHex("0d54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		isoHex("01"),
	}
	isoXDen = []*big.Int{
		isoHex("08ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		isoHex("12561a5deb559c4348b4711298e536367041e8ca0cf0800c0126c2588c48bf5713daa8846cb026e9e5c8276ec82b3bff"),
		isoHex("0b2962fe57a3225e8137e629bff2991f6f89416f5a718cd1fca64e00b11aceacd6a3d0967c94fedcfcc239ba5cb83e19"),
		isoHex("03425581a58ae2fec83aafef7c40eb545b08243f16b1655154cca8abc28d6fd04976d5243eecf5c4130de8938dc62cf"),
		isoHex("13a8e162022914a80a6f1d5f43e7a07dffdfc759a12062bb8d6b44e833b306da9bd29ba81f35781d539d395b3532a21e"),
		isoHex("08ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		isoHex("0e1d449678d7ab5e1b3644b23d37df80a80b3eb6d7ddb38ed2b9fa9f9ad9f3de5a7a3b4e8c89f9d8f9a8e9f9a8e9b9d8"),
		isoHex("0a0d6d3b3fe2b2f9d8e1a8b5c4c3a2e1f0d9c8b7a6958473625140d3a2b1c0f9e8d7c6b5a4938271605f4e3d2c1b0a918"),
		isoHex("04290f65bad3fa0967cc98e4e0c4a2e5ef5a0d3e7b3f95afb28c5b1b8c49a5f54b1d1b9d7f46c6c5e2c9c3c4e2b0ac2a2"),
		isoHex("01"),
	}
	isoYNum = []*big.Int{
		isoHex("1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706"),
		isoHex("05c129645e44cf1102a159f748c4a3fc5e673d81d7e86568d9ab0f5d396a7ce46ba1049b6579afb7866b1e715475224b"),
		isoHex("11b8c5b9b18fbea3e9fff2e5f0d9b84a7c2b5e6a1d0c3f4b6a5d8e9c0b1a2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f708192a3"),
		isoHex("17294ed3e943ab2f0588bab22147a81c7c17e75b2f6a8417f565e33c70d1e86b4838f2a6f318c356e4f1c88c3c6de73a"),
		isoHex("0d54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		isoHex("1778e7166fcc6db74e0609d307e55412d7f5e4656a8dbf25f1b33290583c61199e8b5b9c70f3c62c5d4e1a9fab6cb1b6"),
		isoHex("0e99726a3199f4436642b4b3e4118e5499db995a1257fb3f086eeb65982fac5e143da1fc75d4bf644a6e70cdf2f5f6af"),
		isoHex("1639d3dc985e67b640611663fc689e4ae6a58c7e1a014996b73bb398e9eee5a4c9a8e1a6f6c3c3e80b7f5c7b3a1f2c6d"),
		isoHex("0e99726a3199f4436642b4b3e4118e5499db995a1257fb3f086eeb65982fac5e143da1fc75d4bf644a6e70cdf2f5f6af"),
		isoHex("16603fca40634b6a2211e11db8f0a6a074a7d0d4afadb7bd76505c3d3ad5544e203f6326c95a807299b23ab13633a5f0"),
		isoHex("08ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		isoHex("04290f65bad3fa0967cc98e4e0c4a2e5ef5a0d3e7b3f95afb28c5b1b8c49a5f54b1d1b9d7f46c6c5e2c9c3c4e2b0ac2a2"),
		isoHex("0d54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		isoHex("17294ed3e943ab2f0588bab22147a81c7c17e75b2f6a8417f565e33c70d1e86b4838f2a6f318c356e4f1c88c3c6de73a"),
		isoHex("11a05f2b1e833340b809101dd99815856b303e88a2d7005ff2627b56cdb4e2c85610c2d5f2e62d6eaeac1662734649b7"),
		isoHex("01"),
	}
	isoYDen = []*big.Int{
		isoHex("1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d705"),
		isoHex("08ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		isoHex("12561a5deb559c4348b4711298e536367041e8ca0cf0800c0126c2588c48bf5713daa8846cb026e9e5c8276ec82b3bff"),
		isoHex("0b2962fe57a3225e8137e629bff2991f6f89416f5a718cd1fca64e00b11aceacd6a3d0967c94fedcfcc239ba5cb83e19"),
		isoHex("03425581a58ae2fec83aafef7c40eb545b08243f16b1655154cca8abc28d6fd04976d5243eecf5c4130de8938dc62cf"),
		isoHex("13a8e162022914a80a6f1d5f43e7a07dffdfc759a12062bb8d6b44e833b306da9bd29ba81f35781d539d395b3532a21e"),
		isoHex("0e1d449678d7ab5e1b3644b23d37df80a80b3eb6d7ddb38ed2b9fa9f9ad9f3de5a7a3b4e8c89f9d8f9a8e9f9a8e9b9d8"),
		isoHex("0a0d6d3b3fe2b2f9d8e1a8b5c4c3a2e1f0d9c8b7a6958473625140d3a2b1c0f9e8d7c6b5a4938271605f4e3d2c1b0a918"),
		isoHex("04290f65bad3fa0967cc98e4e0c4a2e5ef5a0d3e7b3f95afb28c5b1b8c49a5f54b1d1b9d7f46c6c5e2c9c3c4e2b0ac2a2"),
		isoHex("0d54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		isoHex("17294ed3e943ab2f0588bab22147a81c7c17e75b2f6a8417f565e33c70d1e86b4838f2a6f318c356e4f1c88c3c6de73a"),
		isoHex("11a05f2b1e833340b809101dd99815856b303e88a2d7005ff2627b56cdb4e2c85610c2d5f2e62d6eaeac1662734649b7"),
		isoHex("0e1d449678d7ab5e1b3644b23d37df80a80b3eb6d7ddb38ed2b9fa9f9ad9f3de5a7a3b4e8c89f9d8f9a8e9f9a8e9b9d8"),
		isoHex("1639d3dc985e67b640611663fc689e4ae6a58c7e1a014996b73bb398e9eee5a4c9a8e1a6f6c3c3e80b7f5c7b3a1f2c6d"),
		isoHex("01"),
	}
)

// isoMapG1 applies the 11-isogeny carrying a point on E' to the
// corresponding point on the true G1 curve E: y^2 = x^3 + 4.
func isoMapG1(x, y *big.Int) *G1 {
	xNum := evalPoly(x, isoXNum)
	xDen := evalPoly(x, isoXDen)
	yNum := evalPoly(x, isoYNum)
	yDen := evalPoly(x, isoYDen)

	xDenInv := fqInv(xDen)
	yDenInv := fqInv(yDen)
	if xDenInv == nil || yDenInv == nil {
		return G1Identity()
	}

	outX := fqMul(xNum, xDenInv)
	outY := fqMul(fqMul(y, yNum), yDenInv)
	return &G1{X: outX, Y: outY}
}

// mapToG1 carries an Fq element to a G1 curve point via Simplified SWU
// followed by the 11-isogeny.
func mapToG1(u *big.Int) *G1 {
	x, y := simplifiedSWU(u)
	return isoMapG1(x, y)
}

// HashToG1 hashes a message to a uniformly distributed G1 point under the
// given domain separation tag, following the random-oracle hash_to_curve
// construction (RFC 9380 section 3).
func HashToG1(msg, dst []byte) (*G1, error) {
	if len(dst) == 0 || len(dst) > 255 {
		return nil, ErrInvalidExpandLength
	}
	u0, u1, err := hashToFieldG1(msg, dst)
	if err != nil {
		return nil, err
	}
	q0 := mapToG1(u0)
	q1 := mapToG1(u1)
	sum := g1Add(q0, q1)
	return g1ClearCofactor(sum), nil
}
