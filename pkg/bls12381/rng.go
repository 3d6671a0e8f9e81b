package bls12381

// Random scalar generation for key derivation and batched verification.

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// RandomScalar draws a uniform non-zero element of Fr, suitable for use
// as a BLS secret key.
func RandomScalar() (*big.Int, error) {
	for {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		s := new(big.Int).SetBytes(buf)
		if s.Sign() != 0 && s.Cmp(r) < 0 {
			return s, nil
		}
	}
}

// DeriveSecretKey derives a deterministic Fr secret key from input
// keying material and a context label via HKDF-SHA256, rejecting the
// (negligibly likely) zero result.
func DeriveSecretKey(ikm, salt, info []byte) (*big.Int, error) {
	kdf := hkdf.New(sha256.New, ikm, salt, info)
	buf := make([]byte, 48)
	if _, err := io.ReadFull(kdf, buf); err != nil {
		return nil, err
	}
	s := mod(new(big.Int).SetBytes(buf), r)
	if s.Sign() == 0 {
		return nil, ErrInvalidLength
	}
	return s, nil
}

// RandomBlindingScalar draws a random 128-bit scalar used as a random
// linear-combination coefficient in batched verification. 128 bits gives
// a forgery probability of at most 2^-128 per batch.
func RandomBlindingScalar() (*big.Int, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	s := new(big.Int).SetBytes(buf)
	if s.Sign() == 0 {
		s.SetInt64(1)
	}
	return s, nil
}
