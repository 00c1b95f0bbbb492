package codec

import (
	"fmt"

	"github.com/MKhiriev/go-sealed-table/models"
)

// ToWire renders typed rows in their JSON form, every value as its canonical
// document text.
func ToWire(rows []models.TypedRow) ([]models.WireRow, error) {
	out := make([]models.WireRow, 0, len(rows))

	for i, row := range rows {
		wire := make(models.WireRow, len(row))
		for j, f := range row {
			wire[j] = models.WireField{Name: f.Name, Type: f.Tag}
			if f.Value == nil {
				continue
			}

			raw, err := FormatValue(f.Tag, f.Value)
			if err != nil {
				return nil, &TypeCoercionError{Row: i, Column: f.Name, Tag: f.Tag, Value: fmt.Sprint(f.Value), Err: err}
			}
			wire[j].Value = &raw
		}
		out = append(out, wire)
	}

	return out, nil
}

// FromWire parses the JSON form of rows back into typed values. It checks
// tags and values only; schema consistency across rows is left to [Encode].
func FromWire(rows []models.WireRow) ([]models.TypedRow, error) {
	out := make([]models.TypedRow, 0, len(rows))

	for i, wire := range rows {
		row := make(models.TypedRow, len(wire))
		for j, f := range wire {
			if !f.Type.Valid() {
				return nil, &SchemaMismatchError{Row: i, Column: f.Name, Reason: fmt.Sprintf("invalid type tag %s", f.Type)}
			}

			row[j] = models.TypedField{Name: f.Name, Tag: f.Type}
			if f.Value == nil {
				continue
			}

			v, err := ParseValue(f.Type, *f.Value)
			if err != nil {
				return nil, &TypeCoercionError{Row: i, Column: f.Name, Tag: f.Type, Value: *f.Value, Err: err}
			}
			row[j].Value = v
		}
		out = append(out, row)
	}

	return out, nil
}
