package bls12381

import "errors"

// Error kinds surfaced synchronously by the package. The on-curve and
// subgroup predicates never return an error; they answer yes or no.
// ValidatePairing answers yes or no for equal-length inputs and returns
// ErrInputMismatch otherwise. Construction and decoding fail loudly.
var (
	// ErrInversionOfZero is returned when a field or scalar inverse of
	// zero is requested.
	ErrInversionOfZero = errors.New("bls12381: inversion of zero")

	// ErrNoSquareRoot is returned when Sqrt is called on a non-residue.
	ErrNoSquareRoot = errors.New("bls12381: no square root exists")

	// ErrInvalidPoint is returned by DeserializeG1 and DeserializeG2 when
	// the compressed flag is missing, x is not below q, no y exists for
	// x, or the recovered point is off its curve or outside the
	// prime-order subgroup. An encoding with the infinity flag set decodes
	// to the identity without its other bits being checked. Pair,
	// MultiMillerLoop and ValidatePairing do not validate their input
	// points and never return it.
	ErrInvalidPoint = errors.New("bls12381: invalid point")

	// ErrInvalidLength is returned when a byte buffer is the wrong size
	// for the requested (de)serialization.
	ErrInvalidLength = errors.New("bls12381: invalid encoded length")

	// ErrInvalidExpandLength is returned when expand_message_xmd
	// parameters exceed the caps in RFC 9380 section 5.4.1.
	ErrInvalidExpandLength = errors.New("bls12381: invalid expand_message length")

	// ErrInputMismatch is returned when ValidatePairing is called with
	// unequal-length G1/G2 sequences.
	ErrInputMismatch = errors.New("bls12381: mismatched pairing input lengths")

	// ErrWitnessComputationFailed is returned when the internal
	// consistency check shifted == c^lambda fails during witness
	// computation.
	ErrWitnessComputationFailed = errors.New("bls12381: witness computation failed")

	// ErrWitnessResidueCheckFailed is returned when the final residue
	// identity check fails during witness computation.
	ErrWitnessResidueCheckFailed = errors.New("bls12381: witness residue check failed")
)
