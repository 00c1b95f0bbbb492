package store

import (
	"context"

	"github.com/MKhiriev/go-sealed-table/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RowSource runs arbitrary read-only queries whose column set is not known in
// advance and returns the result set as typed rows.
type RowSource interface {
	QueryRows(ctx context.Context, query string, args ...any) ([]models.TypedRow, error)
}

// RowSink writes typed rows into an existing table.
type RowSink interface {
	// InsertRows inserts rows into table within one transaction and returns
	// the number of inserted rows. Column names are taken from the rows.
	InsertRows(ctx context.Context, table string, rows []models.TypedRow) (int64, error)
}

// SealedTableRepository persists sealed tables in the archive database.
type SealedTableRepository interface {
	Save(ctx context.Context, table models.SealedTable) error
	Get(ctx context.Context, id string) (models.SealedTable, error)
	List(ctx context.Context) ([]models.SealedTableInfo, error)
	Delete(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
