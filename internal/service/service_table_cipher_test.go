// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/mock"
	"github.com/MKhiriev/go-sealed-table/models"
)

const (
	testPassword   = "TestPassword123!"
	testIterations = 2000
)

var testAppConfig = config.App{Iterations: 10000, SaltLength: 16, Version: "1.0.0"}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestTableCipherSvc(t *testing.T, ctrl *gomock.Controller) (TableCipherService, *mock.MockEnvelopeService) {
	t.Helper()
	envelopes := mock.NewMockEnvelopeService(ctrl)
	return NewTableCipherService(envelopes, nil, testAppConfig, logger.Nop()), envelopes
}

func newRealTableCipherSvc(keyCache *crypto.KeyCache) TableCipherService {
	return NewTableCipherService(crypto.NewEnvelopeService(), keyCache, testAppConfig, logger.Nop())
}

func scenarioRows() []models.TypedRow {
	row := func(id int64, name, value string) models.TypedRow {
		return models.TypedRow{
			{Name: "ID", Tag: models.Integer, Value: id},
			{Name: "Name", Tag: models.String, Value: name},
			{Name: "Value", Tag: models.Decimal, Value: decimal.RequireFromString(value)},
		}
	}
	return []models.TypedRow{
		row(1, "Test1", "100.50"),
		row(2, "Test2", "200.75"),
		row(3, "한국어", "300.25"),
	}
}

func assertRowsEqual(t *testing.T, want, got []models.TypedRow) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j, w := range want[i] {
			g := got[i][j]
			assert.Equal(t, w.Name, g.Name)
			assert.Equal(t, w.Tag, g.Tag, "row %d col %q", i, w.Name)

			switch wv := w.Value.(type) {
			case decimal.Decimal:
				gv, ok := g.Value.(decimal.Decimal)
				require.True(t, ok, "row %d col %q: got %T", i, w.Name, g.Value)
				assert.True(t, wv.Equal(gv), "row %d col %q: want %s, got %s", i, w.Name, wv, gv)
			case time.Time:
				gv, ok := g.Value.(time.Time)
				require.True(t, ok, "row %d col %q: got %T", i, w.Name, g.Value)
				assert.True(t, wv.Equal(gv))
			default:
				assert.Equal(t, w.Value, g.Value, "row %d col %q", i, w.Name)
			}
		}
	}
}

// ─────────────────────────────────────────────
// EncryptRows / DecryptRows
// ─────────────────────────────────────────────

func TestTableCipherService_UnicodeScenario(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	text, err := svc.EncryptRows(ctx, scenarioRows(), testPassword, testIterations)
	require.NoError(t, err)

	_, err = base64.StdEncoding.DecodeString(text)
	require.NoError(t, err, "envelope must be standard base64")

	got, err := svc.DecryptRows(ctx, text, testPassword, testIterations)
	require.NoError(t, err)
	assertRowsEqual(t, scenarioRows(), got)
	assert.Equal(t, "한국어", got[2][1].Value)
}

func TestTableCipherService_AllTypesRoundTrip(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	rows := []models.TypedRow{
		{
			{Name: "Active", Tag: models.Boolean, Value: true},
			{Name: "Key", Tag: models.Guid, Value: uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")},
			{Name: "At", Tag: models.DateTime, Value: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
			{Name: "Note", Tag: models.String, Value: nil},
		},
	}

	text, err := svc.EncryptRows(ctx, rows, testPassword, testIterations)
	require.NoError(t, err)

	got, err := svc.DecryptRows(ctx, text, testPassword, testIterations)
	require.NoError(t, err)
	assertRowsEqual(t, rows, got)
}

func TestTableCipherService_DecryptRows_WrongPassword(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	text, err := svc.EncryptRows(ctx, scenarioRows(), testPassword, testIterations)
	require.NoError(t, err)

	rows, err := svc.DecryptRows(ctx, text, "WrongPassword", testIterations)
	assert.Nil(t, rows)
	require.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.ErrorIs(t, err, ErrDecryptingRows)
}

func TestTableCipherService_DecryptRows_IterationMismatch(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	text, err := svc.EncryptRows(ctx, scenarioRows(), testPassword, 2000)
	require.NoError(t, err)

	_, err = svc.DecryptRows(ctx, text, testPassword, 5000)
	require.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestTableCipherService_DecryptRows_MalformedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestTableCipherSvc(t, ctrl)

	_, err := svc.DecryptRows(context.Background(), "not base64!", testPassword, testIterations)
	require.ErrorIs(t, err, crypto.ErrMalformedEnvelope)
	assert.ErrorIs(t, err, crypto.ErrValidation)
}

func TestTableCipherService_EncryptRows_DefaultIterations(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, envelopes := newTestTableCipherSvc(t, ctrl)

	envelopes.EXPECT().
		Encrypt(gomock.Any(), []byte(testPassword), gomock.Len(16), testAppConfig.Iterations).
		Return([]byte{1, 2, 3}, nil)

	text, err := svc.EncryptRows(context.Background(), scenarioRows(), testPassword, 0)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), text)
}

func TestTableCipherService_EncryptRows_EnvelopeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, envelopes := newTestTableCipherSvc(t, ctrl)

	envelopes.EXPECT().
		Encrypt(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(nil, crypto.ErrValidation)

	_, err := svc.EncryptRows(context.Background(), scenarioRows(), testPassword, 10)
	require.ErrorIs(t, err, crypto.ErrValidation)
	assert.ErrorIs(t, err, ErrEncryptingRows)
}

func TestTableCipherService_EncryptRows_InconsistentRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestTableCipherSvc(t, ctrl)

	rows := scenarioRows()
	rows[1] = rows[1][:2]

	// the envelope service must not be reached
	_, err := svc.EncryptRows(context.Background(), rows, testPassword, testIterations)
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
}

func TestTableCipherService_DecryptRows_CorruptDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, envelopes := newTestTableCipherSvc(t, ctrl)

	envelopes.EXPECT().
		Decrypt([]byte{1, 2, 3}, []byte(testPassword), testIterations).
		Return([]byte("<Table><Row>"), nil)

	text := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	_, err := svc.DecryptRows(context.Background(), text, testPassword, testIterations)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptingRows)
}

// ─────────────────────────────────────────────
// Key cache
// ─────────────────────────────────────────────

func TestTableCipherService_DecryptRows_KeyCache(t *testing.T) {
	cache := crypto.NewKeyCache(crypto.NewEnvelopeService(), &sync.Mutex{})
	svc := newRealTableCipherSvc(cache)
	ctx := context.Background()

	first, err := svc.EncryptRows(ctx, scenarioRows(), testPassword, testIterations)
	require.NoError(t, err)
	second, err := svc.EncryptRows(ctx, scenarioRows()[:1], testPassword, testIterations)
	require.NoError(t, err)

	for _, text := range []string{first, first, second} {
		_, err = svc.DecryptRows(ctx, text, testPassword, testIterations)
		require.NoError(t, err)
	}
	// one key per distinct salt
	assert.Equal(t, 2, cache.Len())

	_, err = svc.DecryptRows(ctx, first, "WrongPassword", testIterations)
	require.ErrorIs(t, err, crypto.ErrAuthentication)

	cache.Purge()
	assert.Zero(t, cache.Len())
}

func TestTableCipherService_DecryptRows_KeyCacheCallsDerivedKeyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	envelopes := mock.NewMockEnvelopeService(ctrl)
	cache := crypto.NewKeyCache(envelopes, nil)
	svc := NewTableCipherService(envelopes, cache, testAppConfig, logger.Nop())

	raw := []byte{9, 9, 9}
	salt := []byte("0123456789abcdef")
	key := models.DerivedKey{Key: make([]byte, crypto.KeySize), Salt: salt, Iterations: testIterations}
	plaintext, err := codec.MarshalRows(scenarioRows())
	require.NoError(t, err)

	envelopes.EXPECT().PeekSalt(raw).Return(salt, nil).Times(2)
	envelopes.EXPECT().DeriveKey([]byte(testPassword), salt, testIterations).Return(key, nil).Times(1)
	envelopes.EXPECT().DecryptWithDerivedKey(raw, key).DoAndReturn(func([]byte, models.DerivedKey) ([]byte, error) {
		return append([]byte(nil), plaintext...), nil
	}).Times(2)

	text := base64.StdEncoding.EncodeToString(raw)
	for range 2 {
		got, err := svc.DecryptRows(context.Background(), text, testPassword, testIterations)
		require.NoError(t, err)
		assertRowsEqual(t, scenarioRows(), got)
	}
}

// ─────────────────────────────────────────────
// Derived keys
// ─────────────────────────────────────────────

func TestTableCipherService_DeriveKey_GeneratesSalt(t *testing.T) {
	svc := newRealTableCipherSvc(nil)

	key, err := svc.DeriveKey(context.Background(), testPassword, nil, testIterations)
	require.NoError(t, err)
	defer key.Zero()

	assert.Len(t, key.Salt, testAppConfig.SaltLength)
	assert.Len(t, key.Key, crypto.KeySize)
	assert.Equal(t, testIterations, key.Iterations)
}

func TestTableCipherService_DeriveKey_Deterministic(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()
	salt := []byte("fixed-salt-value")

	var keys []models.DerivedKey
	for range 3 {
		key, err := svc.DeriveKey(ctx, testPassword, salt, testIterations)
		require.NoError(t, err)
		keys = append(keys, key)
	}

	assert.Equal(t, keys[0].Key, keys[1].Key)
	assert.Equal(t, keys[1].Key, keys[2].Key)
}

func TestTableCipherService_DeriveKey_InvalidIterations(t *testing.T) {
	svc := newRealTableCipherSvc(nil)

	_, err := svc.DeriveKey(context.Background(), testPassword, nil, 999)
	require.ErrorIs(t, err, crypto.ErrInvalidIterations)
}

func TestTableCipherService_CrossPath(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	key, err := svc.DeriveKey(ctx, testPassword, nil, testIterations)
	require.NoError(t, err)

	t.Run("derived key to password", func(t *testing.T) {
		text, err := svc.EncryptRowsWithKey(ctx, scenarioRows(), key)
		require.NoError(t, err)

		got, err := svc.DecryptRows(ctx, text, testPassword, testIterations)
		require.NoError(t, err)
		assertRowsEqual(t, scenarioRows(), got)
	})

	t.Run("password to derived key", func(t *testing.T) {
		text, err := svc.EncryptRows(ctx, scenarioRows(), testPassword, testIterations)
		require.NoError(t, err)

		raw, err := crypto.DecodeText(text)
		require.NoError(t, err)
		env, err := crypto.ParseEnvelope(raw)
		require.NoError(t, err)

		envKey, err := svc.DeriveKey(ctx, testPassword, env.Salt, testIterations)
		require.NoError(t, err)

		got, err := svc.DecryptRowsWithKey(ctx, text, envKey)
		require.NoError(t, err)
		assertRowsEqual(t, scenarioRows(), got)

		_, err = svc.DecryptRowsWithKey(ctx, text, key)
		require.ErrorIs(t, err, crypto.ErrAuthentication)
	})
}

func TestTableCipherService_DecryptRowsWithKey_WrongKey(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	key, err := svc.DeriveKey(ctx, testPassword, nil, testIterations)
	require.NoError(t, err)
	other, err := svc.DeriveKey(ctx, "another password", key.Salt, testIterations)
	require.NoError(t, err)

	text, err := svc.EncryptRowsWithKey(ctx, scenarioRows(), key)
	require.NoError(t, err)

	_, err = svc.DecryptRowsWithKey(ctx, text, other)
	require.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestTableCipherService_SharedKey(t *testing.T) {
	svc := newRealTableCipherSvc(nil)
	ctx := context.Background()

	alice, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	bob, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	salt := []byte("shared-table-salt")

	aliceKey, err := svc.SharedKey(ctx, alice.Private, bob.Public[:], salt)
	require.NoError(t, err)
	bobKey, err := svc.SharedKey(ctx, bob.Private, alice.Public[:], salt)
	require.NoError(t, err)

	text, err := svc.EncryptRowsWithKey(ctx, scenarioRows(), aliceKey)
	require.NoError(t, err)

	got, err := svc.DecryptRowsWithKey(ctx, text, bobKey)
	require.NoError(t, err)
	assertRowsEqual(t, scenarioRows(), got)

	_, err = svc.SharedKey(ctx, alice.Private, []byte("short"), salt)
	require.True(t, errors.Is(err, crypto.ErrInvalidPublicKey))
}
