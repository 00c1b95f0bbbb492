// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field is a single named value of a document row in its raw text form.
type Field struct {
	// Name is the column name the field belongs to.
	Name string

	// RawValue is the field text exactly as it appears in the document.
	RawValue string

	// Tag is the type metadata embedded at encode time. It is nil when the
	// document carried no metadata and the type has to be inferred.
	Tag *TypeTag

	// Null marks a field that carries SQL NULL. RawValue is empty then.
	Null bool
}

// Row is an ordered sequence of fields. Every row of a document has the same
// field names, in the same order, as the first row.
type Row struct {
	Fields []Field
}

// Document is an ordered sequence of rows sharing one logical schema.
type Document struct {
	Rows []Row
}

// ColumnMetadata describes one column of a decoded document. A document has
// exactly one ColumnMetadata set, derived from its first row.
type ColumnMetadata struct {
	Name    string  `json:"name"`
	Ordinal int     `json:"ordinal"`
	Tag     TypeTag `json:"type"`
}

// TagPtr returns a pointer to a copy of tag, handy for building [Field] values.
func TagPtr(tag TypeTag) *TypeTag {
	return &tag
}
