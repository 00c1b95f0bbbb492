package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSealedTableNotFound is returned when no sealed table has the
	// requested ID.
	ErrSealedTableNotFound = errors.New("sealed table was not found")

	// ErrSealedTableAlreadyExists is returned when a sealed table with the
	// same ID is already stored.
	ErrSealedTableAlreadyExists = errors.New("sealed table already exists")

	// ErrSealedTableNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrSealedTableNotSaved = errors.New("sealed table was not saved")

	// ErrInvalidTableName is returned by [RowSink.InsertRows] for an empty
	// or malformed target table name.
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrInconsistentRows is returned by [RowSink.InsertRows] when rows do
	// not share the column names of the first row.
	ErrInconsistentRows = errors.New("rows have inconsistent columns")

	// ErrConvertingValue is returned by [RowSource.QueryRows] when a scanned
	// value cannot be represented with the tag of its column.
	ErrConvertingValue = errors.New("failed to convert scanned value")

	// ErrUnsupportedDriver is returned for a database driver other than
	// "sqlite3" or "pgx".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
