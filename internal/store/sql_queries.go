package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sealed-table/models"
)

const sealedTablesTable = "sealed_tables"

var sealedTableColumns = []string{
	"id",
	"name",
	"envelope",
	"iterations",
	"row_count",
	"column_count",
	"owner_hash",
	"created_at",
}

var sealedTableInfoColumns = []string{
	"id",
	"name",
	"iterations",
	"row_count",
	"column_count",
	"created_at",
}

// maxInsertParams keeps a multi-row INSERT under SQLite's default bound
// parameter limit.
const maxInsertParams = 999

func buildSaveSealedTableQuery(ph sq.PlaceholderFormat, t models.SealedTable) (string, []any, error) {
	return sq.Insert(sealedTablesTable).
		Columns(sealedTableColumns...).
		Values(t.ID, t.Name, t.Envelope, t.Iterations, t.RowCount, t.ColumnCount, t.OwnerHash, t.CreatedAt).
		PlaceholderFormat(ph).
		ToSql()
}

func buildGetSealedTableQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	return sq.Select(sealedTableColumns...).
		From(sealedTablesTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildListSealedTablesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(sealedTableInfoColumns...).
		From(sealedTablesTable).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteSealedTableQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	return sq.Delete(sealedTablesTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildInsertRowsQuery builds one INSERT for a batch of rows sharing the
// column names of columns.
func buildInsertRowsQuery(ph sq.PlaceholderFormat, table string, columns []string, rows []models.TypedRow) (string, []any, error) {
	quotedTable, err := quoteTableName(table)
	if err != nil {
		return "", nil, err
	}

	quotedColumns := make([]string, len(columns))
	for i, c := range columns {
		quotedColumns[i] = quoteIdentifier(c)
	}

	builder := sq.Insert(quotedTable).
		Columns(quotedColumns...).
		PlaceholderFormat(ph)

	for _, row := range rows {
		values := make([]any, len(row))
		for i, f := range row {
			values[i] = f.Value
		}
		builder = builder.Values(values...)
	}

	return builder.ToSql()
}

// insertBatchSize returns how many rows of width columns fit in one INSERT.
func insertBatchSize(columns int) int {
	if columns <= 0 {
		return 1
	}
	return max(1, maxInsertParams/columns)
}

// quoteIdentifier quotes a column or table name with ANSI double quotes,
// understood by both SQLite and PostgreSQL.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteTableName quotes every dot-separated part of a possibly
// schema-qualified table name.
func quoteTableName(table string) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidTableName)
	}

	parts := strings.Split(table, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidTableName, table)
		}
		parts[i] = quoteIdentifier(p)
	}

	return strings.Join(parts, "."), nil
}
