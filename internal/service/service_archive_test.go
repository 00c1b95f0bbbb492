// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/mock"
	"github.com/MKhiriev/go-sealed-table/internal/store"
	"github.com/MKhiriev/go-sealed-table/models"
)

const testArchiveID = "01920d8e-7c3a-7f3e-9a1b-2c3d4e5f6a7b"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// cheapHasher keeps argon2id fast in tests.
var cheapHasher = crypto.PasswordHasher{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

type archiveMocks struct {
	cipher *mock.MockTableCipherService
	tables *mock.MockSealedTableRepository
	source *mock.MockRowSource
	sink   *mock.MockRowSink
	ids    *mock.MockIDGenerator
}

func newTestArchiveSvc(t *testing.T, ctrl *gomock.Controller) (*archiveService, archiveMocks) {
	t.Helper()
	m := archiveMocks{
		cipher: mock.NewMockTableCipherService(ctrl),
		tables: mock.NewMockSealedTableRepository(ctrl),
		source: mock.NewMockRowSource(ctrl),
		sink:   mock.NewMockRowSink(ctrl),
		ids:    mock.NewMockIDGenerator(ctrl),
	}
	svc := &archiveService{
		cipher:            m.cipher,
		tables:            m.tables,
		source:            m.source,
		sink:              m.sink,
		hasher:            cheapHasher,
		idGenerator:       m.ids,
		now:               func() time.Time { return testNow },
		defaultIterations: testAppConfig.Iterations,
		logger:            logger.Nop(),
	}
	return svc, m
}

func ownerHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := cheapHasher.Hash([]byte(password))
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// NewArchiveService
// ─────────────────────────────────────────────

func TestNewArchiveService_UsesStorages(t *testing.T) {
	ctrl := gomock.NewController(t)
	tables := mock.NewMockSealedTableRepository(ctrl)
	storages := &store.Storages{SealedTables: tables}

	svc := NewArchiveService(nil, storages, testAppConfig, logger.Nop())
	require.NotNil(t, svc)

	tables.EXPECT().List(gomock.Any()).Return([]models.SealedTableInfo{{ID: testArchiveID}}, nil)

	infos, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

// ─────────────────────────────────────────────
// SealQuery
// ─────────────────────────────────────────────

func TestArchiveService_SealQuery_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	req := models.SealQueryRequest{
		Name:     "orders",
		Query:    "SELECT * FROM orders WHERE id > ?",
		Args:     []any{int64(10)},
		Password: testPassword,
	}
	rows := scenarioRows()

	m.source.EXPECT().QueryRows(ctx, req.Query, int64(10)).Return(rows, nil)
	m.cipher.EXPECT().EncryptRows(ctx, rows, testPassword, testAppConfig.Iterations).Return("ENVELOPE", nil)
	m.ids.EXPECT().Generate().Return(testArchiveID)

	var saved models.SealedTable
	m.tables.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, table models.SealedTable) error {
		saved = table
		return nil
	})

	info, err := svc.SealQuery(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, models.SealedTableInfo{
		ID:          testArchiveID,
		Name:        "orders",
		Iterations:  testAppConfig.Iterations,
		RowCount:    3,
		ColumnCount: 3,
		CreatedAt:   testNow,
	}, info)
	assert.Equal(t, "ENVELOPE", saved.Envelope)

	ok, err := cheapHasher.Verify([]byte(testPassword), saved.OwnerHash)
	require.NoError(t, err)
	assert.True(t, ok, "owner hash must verify the sealing password")
}

func TestArchiveService_SealQuery_ExplicitIterations(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	req := models.SealQueryRequest{Name: "n", Query: "SELECT 1", Password: testPassword, Iterations: testIterations}

	m.source.EXPECT().QueryRows(ctx, req.Query).Return(nil, nil)
	m.cipher.EXPECT().EncryptRows(ctx, gomock.Nil(), testPassword, testIterations).Return("E", nil)
	m.ids.EXPECT().Generate().Return(testArchiveID)
	m.tables.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	info, err := svc.SealQuery(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, testIterations, info.Iterations)
	assert.Zero(t, info.RowCount)
	assert.Zero(t, info.ColumnCount)
}

func TestArchiveService_SealQuery_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("syntax error")

	m.source.EXPECT().QueryRows(ctx, "SELEC").Return(nil, dbErr)

	_, err := svc.SealQuery(ctx, models.SealQueryRequest{Name: "n", Query: "SELEC", Password: testPassword})
	require.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrSealingQuery)
}

func TestArchiveService_SealQuery_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.source.EXPECT().QueryRows(ctx, "SELECT 1").Return(scenarioRows(), nil)
	m.cipher.EXPECT().EncryptRows(ctx, gomock.Any(), testPassword, gomock.Any()).Return("", crypto.ErrValidation)

	_, err := svc.SealQuery(ctx, models.SealQueryRequest{Name: "n", Query: "SELECT 1", Password: testPassword})
	require.ErrorIs(t, err, crypto.ErrValidation)
}

func TestArchiveService_SealQuery_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.source.EXPECT().QueryRows(ctx, "SELECT 1").Return(scenarioRows(), nil)
	m.cipher.EXPECT().EncryptRows(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("E", nil)
	m.ids.EXPECT().Generate().Return(testArchiveID)
	m.tables.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrSealedTableAlreadyExists)

	_, err := svc.SealQuery(ctx, models.SealQueryRequest{Name: "n", Query: "SELECT 1", Password: testPassword})
	require.ErrorIs(t, err, store.ErrSealedTableAlreadyExists)
}

// ─────────────────────────────────────────────
// Open
// ─────────────────────────────────────────────

func TestArchiveService_Open_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{ID: testArchiveID, Envelope: "E", Iterations: testIterations}, nil)
	m.cipher.EXPECT().DecryptRows(ctx, "E", testPassword, testIterations).Return(scenarioRows(), nil)

	rows, err := svc.Open(ctx, testArchiveID, testPassword)
	require.NoError(t, err)
	assertRowsEqual(t, scenarioRows(), rows)
}

func TestArchiveService_Open_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{}, store.ErrSealedTableNotFound)

	_, err := svc.Open(ctx, testArchiveID, testPassword)
	require.ErrorIs(t, err, store.ErrSealedTableNotFound)
}

func TestArchiveService_Open_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{Envelope: "E", Iterations: testIterations}, nil)
	m.cipher.EXPECT().DecryptRows(ctx, "E", "nope", testIterations).
		Return(nil, errors.Join(ErrDecryptingRows, crypto.ErrAuthentication))

	_, err := svc.Open(ctx, testArchiveID, "nope")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

// ─────────────────────────────────────────────
// Restore
// ─────────────────────────────────────────────

func TestArchiveService_Restore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()
	rows := scenarioRows()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{Envelope: "E", Iterations: testIterations}, nil)
	m.cipher.EXPECT().DecryptRows(ctx, "E", testPassword, testIterations).Return(rows, nil)
	m.sink.EXPECT().InsertRows(ctx, "public.orders_restored", rows).Return(int64(3), nil)

	n, err := svc.Restore(ctx, testArchiveID, testPassword, "public.orders_restored")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestArchiveService_Restore_EmptyTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{Envelope: "E", Iterations: testIterations}, nil)
	m.cipher.EXPECT().DecryptRows(ctx, "E", testPassword, testIterations).Return(nil, nil)

	n, err := svc.Restore(ctx, testArchiveID, testPassword, "target")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestArchiveService_Restore_NoTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestArchiveSvc(t, ctrl)

	_, err := svc.Restore(context.Background(), testArchiveID, testPassword, "")
	require.ErrorIs(t, err, ErrEmptyTargetTable)
}

func TestArchiveService_Restore_SinkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{Envelope: "E", Iterations: testIterations}, nil)
	m.cipher.EXPECT().DecryptRows(ctx, "E", testPassword, testIterations).Return(scenarioRows(), nil)
	m.sink.EXPECT().InsertRows(ctx, "bad name", gomock.Any()).Return(int64(0), store.ErrInvalidTableName)

	_, err := svc.Restore(ctx, testArchiveID, testPassword, "bad name")
	require.ErrorIs(t, err, store.ErrInvalidTableName)
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestArchiveService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{OwnerHash: ownerHash(t, testPassword)}, nil)
	m.tables.EXPECT().Delete(ctx, testArchiveID).Return(nil)

	require.NoError(t, svc.Delete(ctx, testArchiveID, testPassword))
}

func TestArchiveService_Delete_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	// Delete on the repository must not be called
	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{OwnerHash: ownerHash(t, testPassword)}, nil)

	err := svc.Delete(ctx, testArchiveID, "nope")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestArchiveService_Delete_BrokenVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{OwnerHash: "garbage"}, nil)

	err := svc.Delete(ctx, testArchiveID, testPassword)
	require.ErrorIs(t, err, ErrVerifyingPassword)
	assert.ErrorIs(t, err, crypto.ErrInvalidPasswordHash)
}

func TestArchiveService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestArchiveSvc(t, ctrl)
	ctx := context.Background()

	m.tables.EXPECT().Get(ctx, testArchiveID).Return(models.SealedTable{}, store.ErrSealedTableNotFound)

	require.ErrorIs(t, svc.Delete(ctx, testArchiveID, testPassword), store.ErrSealedTableNotFound)
}
