package codec

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sealed-table/models"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with [errors.Is].
var (
	ErrSchemaMismatch       = errors.New("schema mismatch")
	ErrUnsupportedStructure = errors.New("unsupported document structure")
	ErrTypeCoercion         = errors.New("type coercion failed")
	ErrMalformedDocument    = errors.New("malformed document")
)

var (
	errUnsupportedGoType = errors.New("unsupported Go type for tag")
	errUnknownTag        = errors.New("unknown type tag")
	errInvalidXMLChar    = errors.New("value contains a character not allowed in XML")
	errBooleanLiteral    = errors.New("not a boolean literal")
	errDecimalGrammar    = errors.New("not a decimal literal")
	errGuidLayout        = errors.New("not a canonical guid")
	errDateTimeLayout    = errors.New("no accepted date/time layout matches")
)

// SchemaMismatchError reports a row whose columns differ from the first
// row's. Row is the zero-based row ordinal.
type SchemaMismatchError struct {
	Row    int
	Column string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: row %d: %s", ErrSchemaMismatch, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: row %d, column %q: %s", ErrSchemaMismatch, e.Row, e.Column, e.Reason)
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

// UnsupportedStructureError reports a row node the parser cannot read, most
// often one with neither attributes nor child elements.
type UnsupportedStructureError struct {
	Row     int
	Element string
	Reason  string
}

func (e *UnsupportedStructureError) Error() string {
	return fmt.Sprintf("%s: row %d <%s>: %s", ErrUnsupportedStructure, e.Row, e.Element, e.Reason)
}

func (e *UnsupportedStructureError) Unwrap() error {
	return ErrUnsupportedStructure
}

// TypeCoercionError reports a value that does not fit its column type.
type TypeCoercionError struct {
	Row    int
	Column string
	Tag    models.TypeTag
	Value  string
	Err    error
}

func (e *TypeCoercionError) Error() string {
	msg := fmt.Sprintf("%s: row %d, column %q: value %q is not a valid %s", ErrTypeCoercion, e.Row, e.Column, e.Value, e.Tag)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeCoercionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeCoercion}
	}
	return []error{ErrTypeCoercion, e.Err}
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
}
