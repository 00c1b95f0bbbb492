// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-sealed-table/models"
	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/hkdf"
)

// KeyPair is an X25519 key pair used to agree on a table key without
// sharing a password.
type KeyPair struct {
	Public  x25519.Key
	Private x25519.Key
}

// GenerateKeyPair creates a fresh X25519 key pair from the OS CSPRNG.
func GenerateKeyPair() (KeyPair, error) {
	return generateKeyPair(rand.Reader)
}

func generateKeyPair(r io.Reader) (KeyPair, error) {
	var kp KeyPair
	if _, err := io.ReadFull(r, kp.Private[:]); err != nil {
		return KeyPair{}, fmt.Errorf("generate private key: %w", err)
	}
	x25519.KeyGen(&kp.Public, &kp.Private)
	return kp, nil
}

// Zero wipes the private half of the pair.
func (kp *KeyPair) Zero() {
	zeroBytes(kp.Private[:])
}

// SharedKey combines the local private key with the peer's public key and
// expands the X25519 secret through HKDF-SHA256 into a [models.DerivedKey].
//
// Both peers must pass the same salt; it becomes the salt carried in every
// envelope sealed with the key. Iterations is left at zero because no
// PBKDF2 is involved, so such envelopes open only through the derived-key
// path.
func SharedKey(private x25519.Key, peerPublic, salt []byte) (models.DerivedKey, error) {
	if len(peerPublic) != x25519.Size {
		return models.DerivedKey{}, validationError(ErrInvalidPublicKey, "got %d bytes, want %d", len(peerPublic), x25519.Size)
	}
	if err := validateSalt(salt); err != nil {
		return models.DerivedKey{}, err
	}

	var public, shared x25519.Key
	copy(public[:], peerPublic)
	if !x25519.Shared(&shared, &private, &public) {
		return models.DerivedKey{}, validationError(ErrInvalidPublicKey, "low-order point")
	}
	defer zeroBytes(shared[:])

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared[:], salt, []byte(hkdfInfo)), key); err != nil {
		return models.DerivedKey{}, fmt.Errorf("expand shared secret: %w", err)
	}

	return models.DerivedKey{
		Key:  key,
		Salt: append([]byte(nil), salt...),
	}, nil
}
