package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/models"
)

// sealedTableRepository is the database/sql implementation of
// [SealedTableRepository] over the "sealed_tables" table. It works with both
// SQLite and PostgreSQL; the placeholder dialect comes from [DB].
type sealedTableRepository struct {
	*DB
	logger *logger.Logger
}

// NewSealedTableRepository constructs a [SealedTableRepository] backed by db.
func NewSealedTableRepository(db *DB, logger *logger.Logger) SealedTableRepository {
	logger.Debug().Msg("creating sealed table repository")
	return &sealedTableRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts a new sealed table.
//
// Error handling:
//   - unique violation on id → [ErrSealedTableAlreadyExists].
//   - zero affected rows → [ErrSealedTableNotSaved].
func (r *sealedTableRepository) Save(ctx context.Context, table models.SealedTable) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSealedTableQuery(r.placeholder(), table)
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Save").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Save").Str("id", table.ID).Msg("failed to insert sealed table")
		if isUniqueViolation(err) {
			return ErrSealedTableAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSealedTableNotSaved
	}

	return nil
}

// Get returns the sealed table with the given id, envelope included.
func (r *sealedTableRepository) Get(ctx context.Context, id string) (models.SealedTable, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSealedTableQuery(r.placeholder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Get").Msg("failed to build query")
		return models.SealedTable{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.SealedTable
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&t.ID,
			&t.Name,
			&t.Envelope,
			&t.Iterations,
			&t.RowCount,
			&t.ColumnCount,
			&t.OwnerHash,
			&t.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SealedTable{}, ErrSealedTableNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Get").Str("id", id).Msg("failed to scan sealed table")
		return models.SealedTable{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

// List returns every sealed table without envelopes, newest first.
// It returns an empty slice when the archive is empty.
func (r *sealedTableRepository) List(ctx context.Context) ([]models.SealedTableInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSealedTablesQuery(r.placeholder())
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	infos := make([]models.SealedTableInfo, 0)
	for rows.Next() {
		var info models.SealedTableInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Iterations, &info.RowCount, &info.ColumnCount, &info.CreatedAt); err != nil {
			log.Err(err).Str("func", "*sealedTableRepository.List").Msg("failed to scan sealed table row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return infos, nil
}

// Delete removes the sealed table with the given id.
func (r *sealedTableRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSealedTableQuery(r.placeholder(), id)
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sealedTableRepository.Delete").Str("id", id).Msg("failed to delete sealed table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSealedTableNotFound
	}

	return nil
}
