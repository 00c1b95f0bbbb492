package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/MKhiriev/go-sealed-table/models"
)

const (
	rootElement   = "Table"
	rowElement    = "Row"
	typeAttribute = "type"
	nullAttribute = "null"
)

// Encode converts typed rows into a document. Every field carries its tag.
//
// All rows must have the columns of the first row: same count, names, order
// and tags. A nil value becomes a NULL field. A value whose Go type does not
// fit its tag is a [TypeCoercionError].
func Encode(rows []models.TypedRow) (models.Document, error) {
	doc := models.Document{Rows: make([]models.Row, 0, len(rows))}
	if len(rows) == 0 {
		return doc, nil
	}

	schema := rows[0]
	if len(schema) == 0 {
		return models.Document{}, &UnsupportedStructureError{Row: 0, Element: rowElement, Reason: "row has no columns"}
	}
	if err := checkColumns(schema); err != nil {
		return models.Document{}, err
	}

	for i, row := range rows {
		if err := matchSchema(i, schema, row); err != nil {
			return models.Document{}, err
		}

		fields := make([]models.Field, len(row))
		for j, f := range row {
			fields[j] = models.Field{Name: f.Name, Tag: models.TagPtr(f.Tag)}
			if f.Value == nil {
				fields[j].Null = true
				continue
			}

			raw, err := FormatValue(f.Tag, f.Value)
			if err != nil {
				return models.Document{}, &TypeCoercionError{
					Row:    i,
					Column: f.Name,
					Tag:    f.Tag,
					Value:  fmt.Sprint(f.Value),
					Err:    err,
				}
			}
			fields[j].RawValue = raw
		}

		doc.Rows = append(doc.Rows, models.Row{Fields: fields})
	}

	return doc, nil
}

func checkColumns(schema models.TypedRow) error {
	seen := make(map[string]struct{}, len(schema))
	for _, f := range schema {
		if f.Name == "" {
			return &SchemaMismatchError{Row: 0, Reason: "empty column name"}
		}
		if !f.Tag.Valid() {
			return &SchemaMismatchError{Row: 0, Column: f.Name, Reason: fmt.Sprintf("invalid type tag %s", f.Tag)}
		}
		if _, dup := seen[f.Name]; dup {
			return &SchemaMismatchError{Row: 0, Column: f.Name, Reason: "duplicate column"}
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

func matchSchema(ordinal int, schema, row models.TypedRow) error {
	if len(row) != len(schema) {
		return &SchemaMismatchError{
			Row:    ordinal,
			Reason: fmt.Sprintf("has %d columns, first row has %d", len(row), len(schema)),
		}
	}
	for j, f := range row {
		want := schema[j]
		if f.Name != want.Name {
			return &SchemaMismatchError{
				Row:    ordinal,
				Column: f.Name,
				Reason: fmt.Sprintf("column %d is %q in the first row", j, want.Name),
			}
		}
		if f.Tag != want.Tag {
			return &SchemaMismatchError{
				Row:    ordinal,
				Column: f.Name,
				Reason: fmt.Sprintf("tagged %s, first row tagged %s", f.Tag, want.Tag),
			}
		}
	}
	return nil
}

// Marshal writes doc in element form with inline metadata. Column names are
// passed through [EscapeName].
func Marshal(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	root := xml.StartElement{Name: xml.Name{Local: rootElement}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for i, row := range doc.Rows {
		if len(row.Fields) == 0 {
			return nil, &UnsupportedStructureError{Row: i, Element: rowElement, Reason: "row has no fields"}
		}

		start := xml.StartElement{Name: xml.Name{Local: rowElement}}
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}

		for _, f := range row.Fields {
			if err := encodeField(enc, f); err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i, f.Name, err)
			}
		}

		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeField(enc *xml.Encoder, f models.Field) error {
	start := xml.StartElement{Name: xml.Name{Local: EscapeName(f.Name)}}
	if f.Tag != nil {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: typeAttribute}, Value: f.Tag.String()})
	}
	if f.Null {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: nullAttribute}, Value: literalTrue})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if !f.Null && f.RawValue != "" {
		if err := enc.EncodeToken(xml.CharData(f.RawValue)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// MarshalAttributes writes doc in attribute form, <Row Col="v"/>, without
// type metadata. NULL cannot be expressed in this form.
func MarshalAttributes(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	root := xml.StartElement{Name: xml.Name{Local: rootElement}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for i, row := range doc.Rows {
		if len(row.Fields) == 0 {
			return nil, &UnsupportedStructureError{Row: i, Element: rowElement, Reason: "row has no fields"}
		}

		start := xml.StartElement{Name: xml.Name{Local: rowElement}}
		for _, f := range row.Fields {
			if f.Null {
				return nil, &UnsupportedStructureError{Row: i, Element: rowElement, Reason: fmt.Sprintf("column %q is NULL", f.Name)}
			}
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: EscapeName(f.Name)}, Value: f.RawValue})
		}

		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalRows is Encode followed by Marshal.
func MarshalRows(rows []models.TypedRow) ([]byte, error) {
	doc, err := Encode(rows)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}
