// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-table/models"
)

func Test_buildSaveSealedTableQuery(t *testing.T) {
	table := models.SealedTable{
		ID:          "id-1",
		Name:        "report",
		Envelope:    "AAAA",
		Iterations:  2000,
		RowCount:    1,
		ColumnCount: 2,
		OwnerHash:   "hash",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := buildSaveSealedTableQuery(sq.Dollar, table)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sealed_tables")
	for _, c := range sealedTableColumns {
		require.Contains(t, q, c)
	}
	require.Contains(t, query, "$8")
	require.Equal(t, []any{"id-1", "report", "AAAA", 2000, 1, 2, "hash", table.CreatedAt}, args)
}

func Test_buildSealedTableQueries_Placeholders(t *testing.T) {
	tests := []struct {
		name  string
		build func(ph sq.PlaceholderFormat) (string, []any, error)
		want  map[sq.PlaceholderFormat]string
	}{
		{
			name:  "get",
			build: func(ph sq.PlaceholderFormat) (string, []any, error) { return buildGetSealedTableQuery(ph, "x") },
			want: map[sq.PlaceholderFormat]string{
				sq.Dollar:   "WHERE id = $1",
				sq.Question: "WHERE id = ?",
			},
		},
		{
			name:  "delete",
			build: func(ph sq.PlaceholderFormat) (string, []any, error) { return buildDeleteSealedTableQuery(ph, "x") },
			want: map[sq.PlaceholderFormat]string{
				sq.Dollar:   "DELETE FROM sealed_tables WHERE id = $1",
				sq.Question: "DELETE FROM sealed_tables WHERE id = ?",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for ph, fragment := range tt.want {
				query, args, err := tt.build(ph)
				require.NoError(t, err)
				require.Contains(t, query, fragment)
				require.Equal(t, []any{"x"}, args)
			}
		})
	}
}

func Test_buildListSealedTablesQuery(t *testing.T) {
	query, args, err := buildListSealedTablesQuery(sq.Dollar)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from sealed_tables")
	require.Contains(t, q, "order by created_at desc")
	require.NotContains(t, q, "envelope")
	require.NotContains(t, q, "owner_hash")
}

func Test_buildInsertRowsQuery(t *testing.T) {
	rows := []models.TypedRow{
		{{Name: "ID", Value: int64(1)}, {Name: `we"ird`, Value: "a"}},
		{{Name: "ID", Value: int64(2)}, {Name: `we"ird`, Value: nil}},
	}

	query, args, err := buildInsertRowsQuery(sq.Dollar, "public.items", rows[0].Names(), rows)
	require.NoError(t, err)
	require.Equal(t, `INSERT INTO "public"."items" ("ID","we""ird") VALUES ($1,$2),($3,$4)`, query)
	require.Equal(t, []any{int64(1), "a", int64(2), nil}, args)

	_, _, err = buildInsertRowsQuery(sq.Question, "", rows[0].Names(), rows)
	require.ErrorIs(t, err, ErrInvalidTableName)
}

func Test_quoteTableName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "people", want: `"people"`},
		{in: "Main Table", want: `"Main Table"`},
		{in: "s.t", want: `"s"."t"`},
		{in: `a"b`, want: `"a""b"`},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "s.", wantErr: true},
		{in: ".t", wantErr: true},
		{in: "a.b.c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := quoteTableName(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTableName)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_insertBatchSize(t *testing.T) {
	require.Equal(t, 1, insertBatchSize(0))
	require.Equal(t, 999, insertBatchSize(1))
	require.Equal(t, 333, insertBatchSize(3))
	require.Equal(t, 1, insertBatchSize(5000))
}
