package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sealed-table/internal/config"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
)

// Storages groups the repositories the service layer depends on.
type Storages struct {
	// SealedTables is the archive of encrypted result sets.
	SealedTables SealedTableRepository

	// Source runs the queries whose results get sealed.
	Source RowSource

	// Sink receives restored rows.
	Sink RowSink

	closers []*DB
}

// NewStorages connects to the archive database, applies its migrations and
// connects to the source database. When the source settings match the
// archive settings a single connection is shared.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	archive, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("archive database connection error: %w", err)
	}

	if err := archive.Migrate(); err != nil {
		archive.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		SealedTables: NewSealedTableRepository(archive, logger),
		closers:      []*DB{archive},
	}

	source := archive
	if sourceCfg := cfg.SourceDB(); sourceCfg != cfg.DB {
		source, err = NewConnect(ctx, sourceCfg, logger)
		if err != nil {
			archive.Close()
			return nil, fmt.Errorf("source database connection error: %w", err)
		}
		storages.closers = append(storages.closers, source)
	}

	storages.Source = NewRowSource(source, logger)
	storages.Sink = NewRowSink(source, logger)

	return storages, nil
}

// Close closes every database connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for _, db := range s.closers {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
