// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/store"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/models"
)

type archiveService struct {
	cipher TableCipherService

	tables store.SealedTableRepository
	source store.RowSource
	sink   store.RowSink

	hasher      crypto.PasswordHasher
	idGenerator IDGenerator
	now         func() time.Time

	defaultIterations int

	logger *logger.Logger
}

func NewArchiveService(cipher TableCipherService, storages *store.Storages, cfg config.App, logger *logger.Logger) ArchiveService {
	return &archiveService{
		cipher:            cipher,
		tables:            storages.SealedTables,
		source:            storages.Source,
		sink:              storages.Sink,
		hasher:            crypto.NewPasswordHasher(),
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		defaultIterations: cfg.Iterations,
		logger:            logger,
	}
}

func (s *archiveService) SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error) {
	log := logger.FromContext(ctx)

	iterations := req.Iterations
	if iterations == 0 {
		iterations = s.defaultIterations
	}

	rows, err := s.source.QueryRows(ctx, req.Query, req.Args...)
	if err != nil {
		log.Err(err).Str("func", "*archiveService.SealQuery").Msg("error querying source database")
		return models.SealedTableInfo{}, fmt.Errorf("%w: %w", ErrSealingQuery, err)
	}

	envelope, err := s.cipher.EncryptRows(ctx, rows, req.Password, iterations)
	if err != nil {
		return models.SealedTableInfo{}, fmt.Errorf("%w: %w", ErrSealingQuery, err)
	}

	ownerHash, err := s.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*archiveService.SealQuery").Msg("error hashing password")
		return models.SealedTableInfo{}, err
	}

	table := models.SealedTable{
		ID:          s.idGenerator.Generate(),
		Name:        req.Name,
		Envelope:    envelope,
		Iterations:  iterations,
		RowCount:    len(rows),
		ColumnCount: columnCount(rows),
		OwnerHash:   ownerHash,
		CreatedAt:   s.now().UTC(),
	}

	if err = s.tables.Save(ctx, table); err != nil {
		return models.SealedTableInfo{}, fmt.Errorf("%w: %w", ErrSealingQuery, err)
	}

	log.Info().Str("func", "*archiveService.SealQuery").
		Str("id", table.ID).
		Int("rows", table.RowCount).
		Int("columns", table.ColumnCount).
		Msg("query result sealed")

	return table.Info(), nil
}

func (s *archiveService) Open(ctx context.Context, id, password string) ([]models.TypedRow, error) {
	table, err := s.tables.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.cipher.DecryptRows(ctx, table.Envelope, password, table.Iterations)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			return nil, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return nil, err
	}

	return rows, nil
}

func (s *archiveService) Restore(ctx context.Context, id, password, targetTable string) (int64, error) {
	if targetTable == "" {
		return 0, ErrEmptyTargetTable
	}

	rows, err := s.Open(ctx, id, password)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	restored, err := s.sink.InsertRows(ctx, targetTable, rows)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*archiveService.Restore").
			Str("id", id).
			Str("target", targetTable).
			Msg("error restoring rows")
		return 0, err
	}

	return restored, nil
}

func (s *archiveService) List(ctx context.Context) ([]models.SealedTableInfo, error) {
	return s.tables.List(ctx)
}

func (s *archiveService) Delete(ctx context.Context, id, password string) error {
	table, err := s.tables.Get(ctx, id)
	if err != nil {
		return err
	}

	secret := []byte(password)
	defer crypto.ZeroBytes(secret)

	ok, err := s.hasher.Verify(secret, table.OwnerHash)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*archiveService.Delete").Str("id", id).Msg("stored verifier is unreadable")
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}
	if !ok {
		return ErrWrongPassword
	}

	return s.tables.Delete(ctx, id)
}

func (s *archiveService) hashPassword(password string) (string, error) {
	secret := []byte(password)
	defer crypto.ZeroBytes(secret)

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return hash, nil
}

func columnCount(rows []models.TypedRow) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}
