// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TypedField is a column value in its native Go representation.
//
// Value holds, depending on Tag:
//   - Boolean:  bool
//   - Integer:  int64
//   - Decimal:  decimal.Decimal (github.com/shopspring/decimal)
//   - Guid:     uuid.UUID (github.com/google/uuid)
//   - DateTime: time.Time
//   - String:   string
//
// A nil Value is SQL NULL.
type TypedField struct {
	Name  string
	Tag   TypeTag
	Value any
}

// TypedRow is one row of a result set with typed values, ordered by column
// ordinal.
type TypedRow []TypedField

// Names returns the column names of the row in ordinal order.
func (r TypedRow) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Columns returns the column metadata implied by the row.
func (r TypedRow) Columns() []ColumnMetadata {
	cols := make([]ColumnMetadata, len(r))
	for i, f := range r {
		cols[i] = ColumnMetadata{Name: f.Name, Ordinal: i, Tag: f.Tag}
	}
	return cols
}
