package crypto

import (
	"errors"
	"fmt"
)

// Error kinds reported by the envelope. Callers match them with [errors.Is].
var (
	// ErrValidation is the kind of every input problem detected before any
	// cryptography runs: malformed envelopes, out-of-range iteration counts
	// and salts, keys of the wrong size.
	ErrValidation = errors.New("validation error")

	// ErrAuthentication is returned when the AEAD tag does not verify.
	// A wrong password, a wrong iteration count and tampered bytes all end
	// here and cannot be told apart.
	ErrAuthentication = errors.New("authentication failed")
)

// Validation details. They are always wrapped together with [ErrValidation].
var (
	// ErrInvalidIterations is returned when the iteration count is outside
	// [MinIterations, MaxIterations].
	ErrInvalidIterations = errors.New("iteration count out of range")

	// ErrInvalidSaltLength is returned when a salt is outside
	// [MinSaltSize, MaxSaltSize].
	ErrInvalidSaltLength = errors.New("salt length out of range")

	// ErrMalformedEnvelope is returned when envelope bytes or text cannot be
	// split into salt, nonce, ciphertext and tag.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrInvalidKeySize is returned when a derived key is not [KeySize] bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPublicKey is returned when a key-agreement peer key has the
	// wrong size or is a low-order point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPasswordHash is returned when a stored password verifier
	// cannot be parsed.
	ErrInvalidPasswordHash = errors.New("invalid password hash")
)

func validationError(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrValidation, kind}, args...)...)
}
