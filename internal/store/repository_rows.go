// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/models"
)

// rowRepository implements both [RowSource] and [RowSink] on top of one
// database.
type rowRepository struct {
	*DB
	logger *logger.Logger
}

// NewRowSource constructs a [RowSource] reading from db.
func NewRowSource(db *DB, logger *logger.Logger) RowSource {
	return &rowRepository{DB: db, logger: logger}
}

// NewRowSink constructs a [RowSink] writing to db.
func NewRowSink(db *DB, logger *logger.Logger) RowSink {
	return &rowRepository{DB: db, logger: logger}
}

// QueryRows runs query and scans the whole result set without a
// predeclared schema.
//
// Column tags come from the declared database types. A column whose type
// is unknown (SQLite expressions, for instance) takes the tag of the Go type
// of its first non-NULL value; an all-NULL column becomes String.
func (r *rowRepository) QueryRows(ctx context.Context, query string, args ...any) ([]models.TypedRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.QueryRows").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.QueryRows").Msg("failed to read column types")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	names := make([]string, len(columnTypes))
	tags := make([]models.TypeTag, len(columnTypes))
	resolved := make([]bool, len(columnTypes))
	for i, ct := range columnTypes {
		names[i] = ct.Name()
		tags[i], resolved[i] = tagForDatabaseType(ct.DatabaseTypeName())
	}

	raw := make([][]any, 0, 64)
	for rows.Next() {
		values := make([]any, len(columnTypes))
		dest := make([]any, len(columnTypes))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", "*rowRepository.QueryRows").Int("row", len(raw)).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		for i, v := range values {
			if !resolved[i] {
				tags[i], resolved[i] = tagForValue(v)
			}
		}
		raw = append(raw, values)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*rowRepository.QueryRows").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range tags {
		if !resolved[i] {
			tags[i] = models.String
		}
	}

	result := make([]models.TypedRow, len(raw))
	for rowIdx, values := range raw {
		row := make(models.TypedRow, len(values))
		for i, v := range values {
			converted, err := convertValue(tags[i], v)
			if err != nil {
				log.Err(err).
					Str("func", "*rowRepository.QueryRows").
					Int("row", rowIdx).
					Str("column", names[i]).
					Stringer("tag", tags[i]).
					Msg("failed to convert value")
				return nil, fmt.Errorf("%w: row %d, column %q as %s: %w", ErrConvertingValue, rowIdx, names[i], tags[i], err)
			}
			row[i] = models.TypedField{Name: names[i], Tag: tags[i], Value: converted}
		}
		result[rowIdx] = row
	}

	log.Debug().Str("func", "*rowRepository.QueryRows").Int("rows", len(result)).Int("columns", len(names)).Msg("query scanned")

	return result, nil
}

// InsertRows writes rows into table in batches inside one transaction. Every
// row must carry the column names of the first row in the same order.
func (r *rowRepository) InsertRows(ctx context.Context, table string, rows []models.TypedRow) (int64, error) {
	log := logger.FromContext(ctx)

	if len(rows) == 0 {
		return 0, nil
	}

	columns := rows[0].Names()
	for i, row := range rows[1:] {
		if !slices.Equal(columns, row.Names()) {
			return 0, fmt.Errorf("%w: row %d", ErrInconsistentRows, i+1)
		}
	}
	if _, err := quoteTableName(table); err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.InsertRows").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var inserted int64
	batch := insertBatchSize(len(columns))
	for chunk := range slices.Chunk(rows, batch) {
		query, args, err := buildInsertRowsQuery(r.placeholder(), table, columns, chunk)
		if err != nil {
			log.Err(err).Str("func", "*rowRepository.InsertRows").Msg("failed to build query")
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*rowRepository.InsertRows").Str("table", table).Msg("failed to insert rows")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		inserted += affected
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*rowRepository.InsertRows").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return inserted, nil
}
