package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-sealed-table/models"
)

// FieldEncoding says how a document stores the fields of a row.
type FieldEncoding int

const (
	// EncodingAttribute stores fields as attributes: <Row A="1" B="x"/>.
	EncodingAttribute FieldEncoding = iota + 1
	// EncodingElement stores fields as child elements: <Row><A>1</A></Row>.
	EncodingElement
)

func (e FieldEncoding) String() string {
	switch e {
	case EncodingAttribute:
		return "attribute"
	case EncodingElement:
		return "element"
	default:
		return fmt.Sprintf("FieldEncoding(%d)", int(e))
	}
}

const mixedRowReason = "row has both attributes and child elements"

// rowNode is a row element as read from the token stream, before the field
// encoding is applied.
type rowNode struct {
	name     string
	attrs    []xml.Attr
	children []childNode
}

type childNode struct {
	name  string
	attrs []xml.Attr
	text  string
}

// Parse reads a document in either field encoding and returns its column
// metadata and rows. The encoding is detected on the first row and then
// required of every row. The names of the root and row elements are not
// checked.
//
// Column tags come from inline type metadata when the first row carries it,
// and from [Infer] on the first row's values otherwise. A document with no
// rows yields no columns and no error.
func Parse(text []byte) ([]models.ColumnMetadata, []models.Row, error) {
	nodes, err := readRows(text)
	if err != nil {
		return nil, nil, err
	}
	if len(nodes) == 0 {
		return nil, nil, nil
	}

	encoding, err := detectEncoding(nodes[0])
	if err != nil {
		return nil, nil, err
	}

	rows := make([]models.Row, len(nodes))
	for i, node := range nodes {
		rows[i], err = node.fields(i, encoding)
		if err != nil {
			return nil, nil, err
		}
	}

	cols := columnsFromFirstRow(rows[0])

	for i := 1; i < len(rows); i++ {
		if err := checkRowSchema(i, cols, rows[i]); err != nil {
			return nil, nil, err
		}
	}

	return cols, rows, nil
}

// UnmarshalRows is Parse followed by Reconstruct.
func UnmarshalRows(text []byte) ([]models.TypedRow, error) {
	cols, rows, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Reconstruct(cols, rows)
}

func detectEncoding(first rowNode) (FieldEncoding, error) {
	switch {
	case len(first.attrs) > 0 && len(first.children) > 0:
		return 0, &UnsupportedStructureError{Row: 0, Element: first.name, Reason: mixedRowReason}
	case len(first.attrs) > 0:
		return EncodingAttribute, nil
	case len(first.children) > 0:
		return EncodingElement, nil
	default:
		return 0, &UnsupportedStructureError{Row: 0, Element: first.name, Reason: "row has neither attributes nor child elements"}
	}
}

func (n rowNode) fields(ordinal int, encoding FieldEncoding) (models.Row, error) {
	if len(n.attrs) == 0 && len(n.children) == 0 {
		return models.Row{}, &UnsupportedStructureError{Row: ordinal, Element: n.name, Reason: "row has neither attributes nor child elements"}
	}
	if len(n.attrs) > 0 && len(n.children) > 0 {
		return models.Row{}, &UnsupportedStructureError{Row: ordinal, Element: n.name, Reason: mixedRowReason}
	}

	var fields []models.Field

	switch encoding {
	case EncodingAttribute:
		if len(n.attrs) == 0 {
			return models.Row{}, &SchemaMismatchError{Row: ordinal, Reason: "row uses element encoding, document uses attribute encoding"}
		}
		fields = make([]models.Field, 0, len(n.attrs))
		for _, a := range n.attrs {
			fields = append(fields, models.Field{Name: UnescapeName(a.Name.Local), RawValue: a.Value})
		}

	case EncodingElement:
		if len(n.children) == 0 {
			return models.Row{}, &SchemaMismatchError{Row: ordinal, Reason: "row uses attribute encoding, document uses element encoding"}
		}
		fields = make([]models.Field, 0, len(n.children))
		for _, c := range n.children {
			f, err := c.field(ordinal)
			if err != nil {
				return models.Row{}, err
			}
			fields = append(fields, f)
		}
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return models.Row{}, &SchemaMismatchError{Row: ordinal, Column: f.Name, Reason: "duplicate column"}
		}
		seen[f.Name] = struct{}{}
	}

	return models.Row{Fields: fields}, nil
}

func (c childNode) field(ordinal int) (models.Field, error) {
	f := models.Field{Name: UnescapeName(c.name), RawValue: c.text}

	for _, a := range c.attrs {
		switch a.Name.Local {
		case typeAttribute:
			tag, err := models.ParseTypeTag(a.Value)
			if err != nil {
				return models.Field{}, &UnsupportedStructureError{Row: ordinal, Element: c.name, Reason: err.Error()}
			}
			f.Tag = &tag
		case nullAttribute:
			f.Null = strings.EqualFold(a.Value, literalTrue)
		}
	}

	if f.Null {
		f.RawValue = ""
	}
	return f, nil
}

func columnsFromFirstRow(first models.Row) []models.ColumnMetadata {
	cols := make([]models.ColumnMetadata, len(first.Fields))
	for i, f := range first.Fields {
		tag := models.String
		switch {
		case f.Tag != nil:
			tag = *f.Tag
		case !f.Null:
			tag = Infer(f.RawValue)
		}
		cols[i] = models.ColumnMetadata{Name: f.Name, Ordinal: i, Tag: tag}
	}
	return cols
}

func checkRowSchema(ordinal int, cols []models.ColumnMetadata, row models.Row) error {
	if len(row.Fields) != len(cols) {
		return &SchemaMismatchError{
			Row:    ordinal,
			Reason: fmt.Sprintf("has %d fields, first row has %d", len(row.Fields), len(cols)),
		}
	}
	for i, f := range row.Fields {
		col := cols[i]
		if f.Name != col.Name {
			return &SchemaMismatchError{
				Row:    ordinal,
				Column: f.Name,
				Reason: fmt.Sprintf("field %d is %q in the first row", i, col.Name),
			}
		}
		if f.Tag != nil && *f.Tag != col.Tag {
			return &SchemaMismatchError{
				Row:    ordinal,
				Column: f.Name,
				Reason: fmt.Sprintf("tagged %s, column is %s", *f.Tag, col.Tag),
			}
		}
	}
	return nil
}

// readRows tokenises text and returns the children of the root element.
func readRows(text []byte) ([]rowNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(text))
	dec.Strict = true

	if err := findRoot(dec); err != nil {
		return nil, err
	}

	var rows []rowNode
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(unexpectedEOF(err))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			row, err := readRow(dec, t, len(rows))
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, malformed(errors.New("text between rows"))
			}
		case xml.EndElement:
			return rows, checkTrailer(dec)
		}
	}
}

func findRoot(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return malformed(errors.New("document has no root element"))
		}
		if err != nil {
			return malformed(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return malformed(errors.New("text before root element"))
			}
		}
	}
}

func checkTrailer(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformed(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return malformed(errors.New("more than one root element"))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return malformed(errors.New("text after root element"))
			}
		}
	}
}

func readRow(dec *xml.Decoder, start xml.StartElement, ordinal int) (rowNode, error) {
	node := rowNode{name: start.Name.Local, attrs: fieldAttrs(start.Attr)}

	for {
		tok, err := dec.Token()
		if err != nil {
			return rowNode{}, malformed(unexpectedEOF(err))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readChild(dec, t, ordinal)
			if err != nil {
				return rowNode{}, err
			}
			node.children = append(node.children, child)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return rowNode{}, &UnsupportedStructureError{Row: ordinal, Element: node.name, Reason: "row contains text"}
			}
		case xml.EndElement:
			return node, nil
		}
	}
}

func readChild(dec *xml.Decoder, start xml.StartElement, ordinal int) (childNode, error) {
	child := childNode{name: start.Name.Local, attrs: start.Attr}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return childNode{}, malformed(unexpectedEOF(err))
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return childNode{}, &UnsupportedStructureError{Row: ordinal, Element: child.name, Reason: "field contains nested elements"}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			child.text = text.String()
			return child, nil
		}
	}
}

// fieldAttrs drops namespace declarations, which are not fields.
func fieldAttrs(attrs []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
