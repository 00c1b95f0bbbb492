// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-sealed-table/models"
)

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct {
	// random is the source of salts and nonces.
	random io.Reader
}

// NewEnvelopeService constructs an [EnvelopeService] reading salts and
// nonces from the OS CSPRNG.
func NewEnvelopeService() EnvelopeService {
	return &envelopeService{random: rand.Reader}
}

// Encrypt implements [EnvelopeService].
func (s *envelopeService) Encrypt(plaintext, password, salt []byte, iterations int) ([]byte, error) {
	if err := validateIterations(iterations); err != nil {
		return nil, err
	}

	if salt == nil {
		generated, err := randomBytes(s.random, DefaultSaltSize)
		if err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		salt = generated
	}

	key, err := s.DeriveKey(password, salt, iterations)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return s.seal(plaintext, key.Key, key.Salt)
}

// Decrypt implements [EnvelopeService].
func (s *envelopeService) Decrypt(envelope, password []byte, iterations int) ([]byte, error) {
	if err := validateIterations(iterations); err != nil {
		return nil, err
	}

	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key := pbkdf2Key(password, env.Salt, iterations)
	defer zeroBytes(key)

	return open(env, key)
}

// DeriveKey implements [EnvelopeService]. Identical inputs always produce
// identical key bytes.
func (s *envelopeService) DeriveKey(password, salt []byte, iterations int) (models.DerivedKey, error) {
	if err := validateIterations(iterations); err != nil {
		return models.DerivedKey{}, err
	}
	if err := validateSalt(salt); err != nil {
		return models.DerivedKey{}, err
	}

	return models.DerivedKey{
		Key:        pbkdf2Key(password, salt, iterations),
		Salt:       bytes.Clone(salt),
		Iterations: iterations,
	}, nil
}

// EncryptWithDerivedKey implements [EnvelopeService].
func (s *envelopeService) EncryptWithDerivedKey(plaintext []byte, key models.DerivedKey) ([]byte, error) {
	if err := validateKey(key.Key); err != nil {
		return nil, err
	}
	if err := validateSalt(key.Salt); err != nil {
		return nil, err
	}

	return s.seal(plaintext, key.Key, key.Salt)
}

// DecryptWithDerivedKey implements [EnvelopeService]. The salt embedded in
// the envelope is not compared with key.Salt: a key derived from another
// salt simply fails tag verification.
func (s *envelopeService) DecryptWithDerivedKey(envelope []byte, key models.DerivedKey) ([]byte, error) {
	if err := validateKey(key.Key); err != nil {
		return nil, err
	}

	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	return open(env, key.Key)
}

// PeekSalt implements [EnvelopeService].
func (s *envelopeService) PeekSalt(envelope []byte) ([]byte, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(env.Salt), nil
}

// seal encrypts plaintext with AES-256-GCM under key and lays the result out
// as an envelope carrying salt.
func (s *envelopeService) seal(plaintext, key, salt []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(s.random, gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	tagStart := len(sealed) - TagSize

	return Envelope{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: sealed[:tagStart],
		Tag:        sealed[tagStart:],
	}.MarshalBinary()
}

// open verifies and decrypts env under key. Any GCM failure is reported as
// [ErrAuthentication] without further detail.
func open(env Envelope, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open([]byte{}, env.Nonce, env.sealed(), nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithTagSize(block, TagSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
