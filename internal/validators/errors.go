package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyQuery         = errors.New("query is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidIterations  = errors.New("iterations must be between 1000 and 100000")
	ErrEmptyEnvelope      = errors.New("envelope is required")
	ErrEmptyTargetTable   = errors.New("target table is required")
	ErrEmptyColumnName    = errors.New("column name cannot be empty")
	ErrInvalidColumnType  = errors.New("invalid column type")
	ErrInconsistentRows   = errors.New("rows must share the columns of the first row")
	ErrDuplicateColumn    = errors.New("duplicate column name")
	ErrInvalidRequestData = errors.New("invalid request data")
)
