// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the sealed-table HTTP API.
//
// [ServerAdapter] mirrors the archive and table-cipher operations of the
// service layer, so the CLI can run against a remote server with the same
// calls it uses locally. The HTTP implementation ([NewHTTPServerAdapter])
// signs request bodies and verifies response bodies with the HashSHA256
// header when a hash key is configured.
//
// Status codes are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for a
// wrong password, [ErrNotFound] for an unknown archive).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sealed-table/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a sealed-table server.
type ServerAdapter interface {
	// Version returns the server version reported by GET /api/version.
	Version(ctx context.Context) (string, error)

	// EncryptRows seals rows into an envelope on the server. iterations of
	// zero lets the server apply its default.
	EncryptRows(ctx context.Context, rows []models.TypedRow, password string, iterations int) (string, error)

	// DecryptRows opens an envelope on the server and returns its rows.
	DecryptRows(ctx context.Context, envelope, password string, iterations int) ([]models.TypedRow, error)

	// SealQuery asks the server to run a query against its source database
	// and archive the sealed result set.
	SealQuery(ctx context.Context, req models.SealQueryRequest) (models.SealedTableInfo, error)

	// List returns the public view of every archived table.
	List(ctx context.Context) ([]models.SealedTableInfo, error)

	// Open decrypts an archived table and returns its rows.
	Open(ctx context.Context, id, password string) ([]models.TypedRow, error)

	// Restore decrypts an archived table into targetTable of the server's
	// source database and reports how many rows were written.
	Restore(ctx context.Context, id, password, targetTable string) (int64, error)

	// Delete removes an archived table. password must be the sealing one.
	Delete(ctx context.Context, id, password string) error
}
