package codec

import (
	"fmt"

	"github.com/MKhiriev/go-sealed-table/models"
)

// Reconstruct casts the raw field text of rows into Go values typed by cols.
// rows must follow cols column for column, as returned by [Parse]. NULL
// fields become nil values.
func Reconstruct(cols []models.ColumnMetadata, rows []models.Row) ([]models.TypedRow, error) {
	out := make([]models.TypedRow, 0, len(rows))

	for i, row := range rows {
		if len(row.Fields) != len(cols) {
			return nil, &SchemaMismatchError{
				Row:    i,
				Reason: fmt.Sprintf("has %d fields, expected %d columns", len(row.Fields), len(cols)),
			}
		}

		typed := make(models.TypedRow, len(cols))
		for j, col := range cols {
			f := row.Fields[j]
			if f.Name != col.Name {
				return nil, &SchemaMismatchError{Row: i, Column: f.Name, Reason: fmt.Sprintf("expected column %q", col.Name)}
			}

			typed[j] = models.TypedField{Name: col.Name, Tag: col.Tag}
			if f.Null {
				continue
			}

			v, err := ParseValue(col.Tag, f.RawValue)
			if err != nil {
				return nil, &TypeCoercionError{Row: i, Column: col.Name, Tag: col.Tag, Value: f.RawValue, Err: err}
			}
			typed[j].Value = v
		}

		out = append(out, typed)
	}

	return out, nil
}
