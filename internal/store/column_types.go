package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/models"
)

// databaseTypeTags maps normalised database type names, as reported by
// [sql.ColumnType.DatabaseTypeName] for pgx and go-sqlite3, to type tags.
var databaseTypeTags = map[string]models.TypeTag{
	"BOOL":    models.Boolean,
	"BOOLEAN": models.Boolean,

	"INT":       models.Integer,
	"INT2":      models.Integer,
	"INT4":      models.Integer,
	"INT8":      models.Integer,
	"INTEGER":   models.Integer,
	"SMALLINT":  models.Integer,
	"BIGINT":    models.Integer,
	"TINYINT":   models.Integer,
	"MEDIUMINT": models.Integer,

	"NUMERIC": models.Decimal,
	"DECIMAL": models.Decimal,
	"REAL":    models.Decimal,
	"FLOAT":   models.Decimal,
	"FLOAT4":  models.Decimal,
	"FLOAT8":  models.Decimal,
	"DOUBLE":  models.Decimal,
	"MONEY":   models.String,

	"UUID": models.Guid,

	"DATE":        models.DateTime,
	"DATETIME":    models.DateTime,
	"TIMESTAMP":   models.DateTime,
	"TIMESTAMPTZ": models.DateTime,

	"TEXT":     models.String,
	"VARCHAR":  models.String,
	"CHAR":     models.String,
	"BPCHAR":   models.String,
	"NAME":     models.String,
	"CLOB":     models.String,
	"JSON":     models.String,
	"JSONB":    models.String,
	"XML":      models.String,
	"BLOB":     models.String,
	"BYTEA":    models.String,
	"INTERVAL": models.String,
	"TIME":     models.String,
	"TIMETZ":   models.String,
}

// tagForDatabaseType resolves a declared column type. The second result is
// false when the type is empty or unknown and the tag has to come from the
// scanned values instead.
func tagForDatabaseType(name string) (models.TypeTag, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(normalized, '('); i >= 0 {
		normalized = strings.TrimSpace(normalized[:i])
	}
	if normalized == "" {
		return 0, false
	}

	if tag, ok := databaseTypeTags[normalized]; ok {
		return tag, true
	}

	// multi-word names such as "DOUBLE PRECISION" or "UNSIGNED BIG INT"
	switch {
	case strings.HasPrefix(normalized, "TIMESTAMP"):
		return models.DateTime, true
	case strings.HasPrefix(normalized, "DOUBLE"):
		return models.Decimal, true
	case strings.HasSuffix(normalized, " INT"), strings.HasSuffix(normalized, "INTEGER"):
		return models.Integer, true
	case strings.Contains(normalized, "CHAR"), strings.Contains(normalized, "TEXT"):
		return models.String, true
	}

	return 0, false
}

// tagForValue picks a tag from the Go type of a scanned value.
func tagForValue(v any) (models.TypeTag, bool) {
	switch v.(type) {
	case nil:
		return 0, false
	case bool:
		return models.Boolean, true
	case int64, int32, int16, int8, int:
		return models.Integer, true
	case float64, float32:
		return models.Decimal, true
	case time.Time:
		return models.DateTime, true
	case [16]byte:
		return models.Guid, true
	default:
		return models.String, true
	}
}

// convertValue turns a database/sql scan result into the canonical Go value
// of tag.
func convertValue(tag models.TypeTag, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch tag {
	case models.Boolean:
		switch b := v.(type) {
		case int64:
			return b != 0, nil
		case string:
			return codec.ParseValue(tag, b)
		case []byte:
			return codec.ParseValue(tag, string(b))
		}
	case models.Integer:
		switch n := v.(type) {
		case string:
			return codec.ParseValue(tag, n)
		case []byte:
			return codec.ParseValue(tag, string(n))
		}
	case models.DateTime:
		switch t := v.(type) {
		case string:
			return codec.ParseValue(tag, t)
		case []byte:
			return codec.ParseValue(tag, string(t))
		}
	case models.String:
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		case time.Time:
			return s.Format(time.RFC3339Nano), nil
		default:
			return fmt.Sprint(s), nil
		}
	}

	text, err := codec.FormatValue(tag, v)
	if err != nil {
		return nil, err
	}
	return codec.ParseValue(tag, text)
}
