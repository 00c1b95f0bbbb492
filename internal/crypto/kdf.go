package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Key derives a [KeySize]-byte key with PBKDF2-HMAC-SHA256.
func pbkdf2Key(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New)
}

func validateIterations(iterations int) error {
	if iterations < MinIterations || iterations > MaxIterations {
		return validationError(ErrInvalidIterations, "got %d, want %d..%d", iterations, MinIterations, MaxIterations)
	}
	return nil
}

func validateSalt(salt []byte) error {
	if len(salt) < MinSaltSize || len(salt) > MaxSaltSize {
		return validationError(ErrInvalidSaltLength, "got %d, want %d..%d", len(salt), MinSaltSize, MaxSaltSize)
	}
	return nil
}

func validateKey(key []byte) error {
	if len(key) != KeySize {
		return validationError(ErrInvalidKeySize, "got %d, want %d", len(key), KeySize)
	}
	return nil
}

func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// NewSalt returns n random bytes suitable as a KDF salt.
func NewSalt(n int) ([]byte, error) {
	if n < MinSaltSize || n > MaxSaltSize {
		return nil, validationError(ErrInvalidSaltLength, "got %d, want %d..%d", n, MinSaltSize, MaxSaltSize)
	}
	return randomBytes(rand.Reader, n)
}
