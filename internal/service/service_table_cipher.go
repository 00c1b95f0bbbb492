// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/cloudflare/circl/dh/x25519"

	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/models"
)

type tableCipherService struct {
	envelopes crypto.EnvelopeService

	// keyCache is optional. When set, DecryptRows derives each
	// (password, salt, iterations) key once.
	keyCache *crypto.KeyCache

	saltLength        int
	defaultIterations int

	logger *logger.Logger
}

// NewTableCipherService builds a TableCipherService on top of envelopes.
// keyCache may be nil.
func NewTableCipherService(envelopes crypto.EnvelopeService, keyCache *crypto.KeyCache, cfg config.App, logger *logger.Logger) TableCipherService {
	saltLength := cfg.SaltLength
	if saltLength == 0 {
		saltLength = crypto.DefaultSaltSize
	}

	return &tableCipherService{
		envelopes:         envelopes,
		keyCache:          keyCache,
		saltLength:        saltLength,
		defaultIterations: cfg.Iterations,
		logger:            logger,
	}
}

func (s *tableCipherService) EncryptRows(ctx context.Context, rows []models.TypedRow, password string, iterations int) (string, error) {
	log := logger.FromContext(ctx)

	plaintext, err := codec.MarshalRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*tableCipherService.EncryptRows").Msg("error encoding rows")
		return "", fmt.Errorf("%w: %w", ErrEncryptingRows, err)
	}
	defer crypto.ZeroBytes(plaintext)

	salt, err := crypto.NewSalt(s.saltLength)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptingRows, err)
	}

	secret := []byte(password)
	defer crypto.ZeroBytes(secret)

	envelope, err := s.envelopes.Encrypt(plaintext, secret, salt, s.iterations(iterations))
	if err != nil {
		log.Err(err).Str("func", "*tableCipherService.EncryptRows").Msg("error sealing document")
		return "", fmt.Errorf("%w: %w", ErrEncryptingRows, err)
	}

	log.Debug().Str("func", "*tableCipherService.EncryptRows").
		Int("rows", len(rows)).
		Int("envelope_size", len(envelope)).
		Msg("rows sealed")

	return crypto.EncodeText(envelope), nil
}

func (s *tableCipherService) DecryptRows(ctx context.Context, envelopeText, password string, iterations int) ([]models.TypedRow, error) {
	log := logger.FromContext(ctx)

	envelope, err := crypto.DecodeText(envelopeText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptingRows, err)
	}

	secret := []byte(password)
	defer crypto.ZeroBytes(secret)

	var plaintext []byte
	if s.keyCache != nil {
		plaintext, err = s.openWithCache(envelope, secret, s.iterations(iterations))
	} else {
		plaintext, err = s.envelopes.Decrypt(envelope, secret, s.iterations(iterations))
	}
	if err != nil {
		log.Err(err).Str("func", "*tableCipherService.DecryptRows").Msg("error opening envelope")
		return nil, fmt.Errorf("%w: %w", ErrDecryptingRows, err)
	}
	defer crypto.ZeroBytes(plaintext)

	return s.unmarshal(ctx, plaintext, "*tableCipherService.DecryptRows")
}

func (s *tableCipherService) openWithCache(envelope, password []byte, iterations int) ([]byte, error) {
	salt, err := s.envelopes.PeekSalt(envelope)
	if err != nil {
		return nil, err
	}

	key, err := s.keyCache.Get(password, salt, iterations)
	if err != nil {
		return nil, err
	}

	return s.envelopes.DecryptWithDerivedKey(envelope, key)
}

func (s *tableCipherService) DeriveKey(ctx context.Context, password string, salt []byte, iterations int) (models.DerivedKey, error) {
	if salt == nil {
		generated, err := crypto.NewSalt(s.saltLength)
		if err != nil {
			return models.DerivedKey{}, err
		}
		salt = generated
	}

	secret := []byte(password)
	defer crypto.ZeroBytes(secret)

	key, err := s.envelopes.DeriveKey(secret, salt, s.iterations(iterations))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tableCipherService.DeriveKey").Msg("error deriving key")
		return models.DerivedKey{}, err
	}

	return key, nil
}

func (s *tableCipherService) EncryptRowsWithKey(ctx context.Context, rows []models.TypedRow, key models.DerivedKey) (string, error) {
	log := logger.FromContext(ctx)

	plaintext, err := codec.MarshalRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*tableCipherService.EncryptRowsWithKey").Msg("error encoding rows")
		return "", fmt.Errorf("%w: %w", ErrEncryptingRows, err)
	}
	defer crypto.ZeroBytes(plaintext)

	envelope, err := s.envelopes.EncryptWithDerivedKey(plaintext, key)
	if err != nil {
		log.Err(err).Str("func", "*tableCipherService.EncryptRowsWithKey").Msg("error sealing document")
		return "", fmt.Errorf("%w: %w", ErrEncryptingRows, err)
	}

	return crypto.EncodeText(envelope), nil
}

func (s *tableCipherService) DecryptRowsWithKey(ctx context.Context, envelopeText string, key models.DerivedKey) ([]models.TypedRow, error) {
	envelope, err := crypto.DecodeText(envelopeText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptingRows, err)
	}

	plaintext, err := s.envelopes.DecryptWithDerivedKey(envelope, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tableCipherService.DecryptRowsWithKey").Msg("error opening envelope")
		return nil, fmt.Errorf("%w: %w", ErrDecryptingRows, err)
	}
	defer crypto.ZeroBytes(plaintext)

	return s.unmarshal(ctx, plaintext, "*tableCipherService.DecryptRowsWithKey")
}

func (s *tableCipherService) SharedKey(ctx context.Context, private x25519.Key, peerPublic, salt []byte) (models.DerivedKey, error) {
	key, err := crypto.SharedKey(private, peerPublic, salt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tableCipherService.SharedKey").Msg("key agreement failed")
		return models.DerivedKey{}, err
	}
	return key, nil
}

func (s *tableCipherService) unmarshal(ctx context.Context, plaintext []byte, caller string) ([]models.TypedRow, error) {
	rows, err := codec.UnmarshalRows(plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Msg("error decoding document")
		return nil, fmt.Errorf("%w: %w", ErrDecryptingRows, err)
	}
	return rows, nil
}

func (s *tableCipherService) iterations(requested int) int {
	if requested == 0 {
		return s.defaultIterations
	}
	return requested
}
