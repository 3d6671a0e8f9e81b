package bls12381

// Compressed point serialization per the Zcash/IETF BLS12-381 convention.
// The top three bits of the first byte carry flags:
//
//	bit 7 (0x80): compressed flag, always set on output
//	bit 6 (0x40): infinity flag
//	bit 5 (0x20): sort flag, set when y is the lexicographically larger root
//
// Signatures (G1 points, MinSig convention) serialize to 48 bytes;
// public keys (G2 points) serialize to 96 bytes.

import "math/big"

const (
	G1CompressedSize = 48
	G2CompressedSize = 96
)

// SerializeG1 compresses a G1 point to its 48-byte representation.
func SerializeG1(p *G1) [G1CompressedSize]byte {
	var out [G1CompressedSize]byte
	if p.Inf {
		out[0] = 0xC0
		return out
	}
	xBytes := p.X.Bytes()
	copy(out[G1CompressedSize-len(xBytes):], xBytes)
	out[0] |= 0x80
	if fqSign(p.Y) == false {
		out[0] |= 0x20
	}
	return out
}

// DeserializeG1 decompresses a 48-byte G1 point, validating that it lies
// on the curve and in the order-r subgroup. Returns an error otherwise.
func DeserializeG1(data [G1CompressedSize]byte) (*G1, error) {
	if data[0]&0x80 == 0 {
		return nil, ErrInvalidPoint
	}
	if data[0]&0x40 != 0 {
		return G1Identity(), nil
	}
	sortFlag := data[0]&0x20 != 0
	data[0] &= 0x1F
	x := new(big.Int).SetBytes(data[:])
	if x.Cmp(q) >= 0 {
		return nil, ErrInvalidPoint
	}

	rhs := fqAdd(fqMul(fqSqr(x), x), curveB)
	y, err := fqSqrt(rhs)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if sortFlag != !fqSign(y) {
		y = fqNeg(y)
	}

	p := &G1{X: x, Y: y}
	if !g1IsOnCurve(p) || !g1InSubgroup(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// SerializeG2 compresses a G2 point to its 96-byte representation, x
// encoded as (c1, c0) high-to-low per the IETF convention.
func SerializeG2(p *G2) [G2CompressedSize]byte {
	var out [G2CompressedSize]byte
	if p.Inf {
		out[0] = 0xC0
		return out
	}
	c1Bytes := p.X.B.Bytes()
	c0Bytes := p.X.A.Bytes()
	copy(out[G1CompressedSize-len(c1Bytes):G1CompressedSize], c1Bytes)
	copy(out[G2CompressedSize-len(c0Bytes):], c0Bytes)
	out[0] |= 0x80
	if !fq2SignBigEndian(p.Y) {
		out[0] |= 0x20
	}
	return out
}

// DeserializeG2 decompresses a 96-byte G2 point, validating on-curve and
// subgroup membership.
func DeserializeG2(data [G2CompressedSize]byte) (*G2, error) {
	if data[0]&0x80 == 0 {
		return nil, ErrInvalidPoint
	}
	if data[0]&0x40 != 0 {
		return G2Identity(), nil
	}
	sortFlag := data[0]&0x20 != 0
	data[0] &= 0x1F
	c1 := new(big.Int).SetBytes(data[:G1CompressedSize])
	c0 := new(big.Int).SetBytes(data[G1CompressedSize:])
	if c0.Cmp(q) >= 0 || c1.Cmp(q) >= 0 {
		return nil, ErrInvalidPoint
	}

	x := &Fq2{A: c0, B: c1}
	rhs := fq2Add(fq2Mul(fq2Sqr(x), x), twistB)
	y, err := fq2Sqrt(rhs)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if sortFlag != !fq2SignBigEndian(y) {
		y = fq2Neg(y)
	}

	p := &G2{X: x, Y: y}
	if !g2IsOnCurve(p) || !g2InSubgroup(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}
