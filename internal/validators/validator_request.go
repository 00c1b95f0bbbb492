package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-sealed-table/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldName        = "Name"
	FieldQuery       = "Query"
	FieldPassword    = "Password"
	FieldIterations  = "Iterations"
	FieldEnvelope    = "Envelope"
	FieldTargetTable = "TargetTable"
	FieldRows        = "Rows"
)

// fieldErrors maps a struct field failing its tag rules to the sentinel
// reported for it.
var fieldErrors = map[string]error{
	FieldName:        ErrEmptyName,
	FieldQuery:       ErrEmptyQuery,
	FieldPassword:    ErrEmptyPassword,
	FieldIterations:  ErrInvalidIterations,
	FieldEnvelope:    ErrEmptyEnvelope,
	FieldTargetTable: ErrEmptyTargetTable,
}

// RequestValidator validates the request models of the sealed-table API.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SealQueryRequest:
		return v.validateStruct(value, fields...)
	case *models.SealQueryRequest:
		return v.validateStruct(*value, fields...)

	case models.EncryptRequest:
		return v.validateEncryptRequest(value, fields...)
	case *models.EncryptRequest:
		return v.validateEncryptRequest(*value, fields...)

	case models.DecryptRequest:
		return v.validateStruct(value, fields...)
	case *models.DecryptRequest:
		return v.validateStruct(*value, fields...)

	case models.OpenArchiveRequest:
		return v.validateStruct(value, fields...)
	case *models.OpenArchiveRequest:
		return v.validateStruct(*value, fields...)

	case models.RestoreArchiveRequest:
		return v.validateStruct(value, fields...)
	case *models.RestoreArchiveRequest:
		return v.validateStruct(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateEncryptRequest(req models.EncryptRequest, fields ...string) error {
	structFields := make([]string, 0, len(fields))
	checkRows := len(fields) == 0
	for _, f := range fields {
		if f == FieldRows {
			checkRows = true
			continue
		}
		structFields = append(structFields, f)
	}

	if len(fields) == 0 || len(structFields) > 0 {
		if err := v.validateStruct(req, structFields...); err != nil {
			return err
		}
	}

	if checkRows {
		return validateWireRows(req.Rows)
	}
	return nil
}

// validateStruct runs the `validate` tag rules of s, all of them or only
// those of fields.
func (v *RequestValidator) validateStruct(s any, fields ...string) error {
	for _, f := range fields {
		if _, ok := fieldErrors[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(s)
	} else {
		err = v.validate.StructPartial(s, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequestData, err)
	}

	// report the first failing field, in declaration order
	fe := fieldErrs[0]
	if sentinel, ok := fieldErrors[fe.Field()]; ok {
		return sentinel
	}
	return fmt.Errorf("%w: %s failed %q", ErrInvalidRequestData, fe.Field(), fe.Tag())
}

// validateWireRows checks that every row carries the same named, typed
// columns as the first one.
func validateWireRows(rows []models.WireRow) error {
	if len(rows) == 0 {
		return nil
	}

	first := rows[0]
	seen := make(map[string]struct{}, len(first))
	for _, f := range first {
		if f.Name == "" {
			return ErrEmptyColumnName
		}
		if !f.Type.Valid() {
			return fmt.Errorf("%w: column %q", ErrInvalidColumnType, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	for i, row := range rows[1:] {
		if len(row) != len(first) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInconsistentRows, i+1, len(row), len(first))
		}
		for j, f := range row {
			if f.Name != first[j].Name || f.Type != first[j].Type {
				return fmt.Errorf("%w: row %d, column %d", ErrInconsistentRows, i+1, j)
			}
		}
	}

	return nil
}
