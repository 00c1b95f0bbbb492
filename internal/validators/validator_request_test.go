// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-table/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

func validWireRows() []models.WireRow {
	return []models.WireRow{
		{{Name: "ID", Type: models.Integer, Value: strPtr("1")}, {Name: "Name", Type: models.String, Value: strPtr("Alice")}},
		{{Name: "ID", Type: models.Integer, Value: strPtr("2")}, {Name: "Name", Type: models.String, Value: nil}},
	}
}

func validSealQueryRequest() models.SealQueryRequest {
	return models.SealQueryRequest{
		Name:       "report",
		Query:      "SELECT 1",
		Password:   "TestPassword123!",
		Iterations: 2000,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		req := validSealQueryRequest()
		require.NoError(t, v.Validate(ctx, req))
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validSealQueryRequest(), "Nope"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Struct rules
// ---------------------------------------------------------------------------

func TestValidate_SealQueryRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.SealQueryRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.SealQueryRequest) {}},
		{name: "default iterations", mutate: func(r *models.SealQueryRequest) { r.Iterations = 0 }},
		{name: "empty name", mutate: func(r *models.SealQueryRequest) { r.Name = "" }, wantErr: ErrEmptyName},
		{name: "empty query", mutate: func(r *models.SealQueryRequest) { r.Query = "" }, wantErr: ErrEmptyQuery},
		{name: "empty password", mutate: func(r *models.SealQueryRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "iterations too low", mutate: func(r *models.SealQueryRequest) { r.Iterations = 999 }, wantErr: ErrInvalidIterations},
		{name: "iterations too high", mutate: func(r *models.SealQueryRequest) { r.Iterations = 100001 }, wantErr: ErrInvalidIterations},
		{name: "first failing field wins", mutate: func(r *models.SealQueryRequest) { r.Name = ""; r.Password = "" }, wantErr: ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSealQueryRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	req := validSealQueryRequest()
	req.Query = ""

	require.NoError(t, v.Validate(ctx, req, FieldName, FieldPassword))
	require.ErrorIs(t, v.Validate(ctx, req, FieldQuery), ErrEmptyQuery)
}

func TestValidate_ArchiveRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.OpenArchiveRequest{Password: "p"}))
	require.ErrorIs(t, v.Validate(ctx, models.OpenArchiveRequest{}), ErrEmptyPassword)

	require.NoError(t, v.Validate(ctx, &models.RestoreArchiveRequest{Password: "p", TargetTable: "t"}))
	require.ErrorIs(t, v.Validate(ctx, models.RestoreArchiveRequest{Password: "p"}), ErrEmptyTargetTable)

	require.NoError(t, v.Validate(ctx, models.DecryptRequest{Envelope: "AAAA", Password: "p"}))
	require.ErrorIs(t, v.Validate(ctx, models.DecryptRequest{Password: "p"}), ErrEmptyEnvelope)
	require.ErrorIs(t, v.Validate(ctx, models.DecryptRequest{Envelope: "AAAA", Password: "p", Iterations: 10}), ErrInvalidIterations)
}

// ---------------------------------------------------------------------------
// Row rules
// ---------------------------------------------------------------------------

func TestValidate_EncryptRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		rows    func() []models.WireRow
		wantErr error
	}{
		{name: "valid", rows: validWireRows},
		{name: "no rows", rows: func() []models.WireRow { return nil }},
		{
			name: "empty column name",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[0][0].Name = ""
				return r
			},
			wantErr: ErrEmptyColumnName,
		},
		{
			name: "invalid type",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[0][1].Type = models.TypeTag(42)
				return r
			},
			wantErr: ErrInvalidColumnType,
		},
		{
			name: "duplicate column",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[0][1].Name = "ID"
				return r
			},
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "missing column",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[1] = r[1][:1]
				return r
			},
			wantErr: ErrInconsistentRows,
		},
		{
			name: "reordered columns",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[1][0], r[1][1] = r[1][1], r[1][0]
				return r
			},
			wantErr: ErrInconsistentRows,
		},
		{
			name: "type differs from first row",
			rows: func() []models.WireRow {
				r := validWireRows()
				r[1][0].Type = models.Decimal
				return r
			},
			wantErr: ErrInconsistentRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.EncryptRequest{Rows: tt.rows(), Password: "p", Iterations: 2000}

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EncryptRequest_Fields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	rows := validWireRows()
	rows[1] = rows[1][:1]
	req := models.EncryptRequest{Rows: rows}

	require.NoError(t, v.Validate(ctx, req, FieldIterations))
	require.ErrorIs(t, v.Validate(ctx, req, FieldPassword), ErrEmptyPassword)
	require.ErrorIs(t, v.Validate(ctx, req, FieldRows), ErrInconsistentRows)
}
