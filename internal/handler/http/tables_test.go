package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/models"
)

func strPtr(s string) *string { return &s }

func sampleWireRows() []models.WireRow {
	return []models.WireRow{
		{
			{Name: "id", Type: models.Integer, Value: strPtr("1")},
			{Name: "name", Type: models.String, Value: strPtr("Алиса")},
			{Name: "active", Type: models.Boolean, Value: strPtr("true")},
		},
		{
			{Name: "id", Type: models.Integer, Value: strPtr("2")},
			{Name: "name", Type: models.String, Value: nil},
			{Name: "active", Type: models.Boolean, Value: strPtr("false")},
		},
	}
}

func sampleTypedRows() []models.TypedRow {
	return []models.TypedRow{
		{
			{Name: "id", Tag: models.Integer, Value: int64(1)},
			{Name: "name", Tag: models.String, Value: "Алиса"},
			{Name: "active", Tag: models.Boolean, Value: true},
		},
		{
			{Name: "id", Tag: models.Integer, Value: int64(2)},
			{Name: "name", Tag: models.String, Value: nil},
			{Name: "active", Tag: models.Boolean, Value: false},
		},
	}
}

// ─────────────────────────────────────────────
// POST /api/tables/encrypt
// ─────────────────────────────────────────────

func TestEncryptTable_Success(t *testing.T) {
	router, m := newTestRouter(t, "")
	m.cipher.EXPECT().
		EncryptRows(gomock.Any(), sampleTypedRows(), "secret", 5000).
		Return("ZW52ZWxvcGU=", nil)

	rec := doJSON(t, router, http.MethodPost, "/api/tables/encrypt", models.EncryptRequest{
		Rows:       sampleWireRows(),
		Password:   "secret",
		Iterations: 5000,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EncryptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ZW52ZWxvcGU=", resp.Envelope)
}

func TestEncryptTable_EmptyRowsAllowed(t *testing.T) {
	router, m := newTestRouter(t, "")
	m.cipher.EXPECT().
		EncryptRows(gomock.Any(), gomock.Len(0), "secret", 0).
		Return("ZW1wdHk=", nil)

	rec := doJSON(t, router, http.MethodPost, "/api/tables/encrypt", models.EncryptRequest{
		Rows:     []models.WireRow{},
		Password: "secret",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEncryptTable_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		expectedCode int
		expectedBody string
	}{
		{
			name:         "invalid JSON",
			body:         "{not json",
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgInvalidJSON,
		},
		{
			name:         "missing password",
			body:         models.EncryptRequest{Rows: sampleWireRows()},
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgInvalidDataProvided,
		},
		{
			name:         "iterations out of range",
			body:         models.EncryptRequest{Rows: sampleWireRows(), Password: "p", Iterations: 10},
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgInvalidDataProvided,
		},
		{
			name: "inconsistent rows",
			body: models.EncryptRequest{
				Rows: []models.WireRow{
					{{Name: "a", Type: models.Integer, Value: strPtr("1")}},
					{{Name: "b", Type: models.Integer, Value: strPtr("1")}},
				},
				Password: "p",
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgInvalidDataProvided,
		},
		{
			name: "value does not match its type",
			body: models.EncryptRequest{
				Rows:     []models.WireRow{{{Name: "a", Type: models.Integer, Value: strPtr("abc")}}},
				Password: "p",
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: app.MsgTypeCoercion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, "")

			rec := doJSON(t, router, http.MethodPost, "/api/tables/encrypt", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestEncryptTable_ServiceErrorIsHidden(t *testing.T) {
	router, m := newTestRouter(t, "")
	m.cipher.EXPECT().
		EncryptRows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: %w", service.ErrEncryptingRows, errors.New("entropy source exhausted")))

	rec := doJSON(t, router, http.MethodPost, "/api/tables/encrypt", models.EncryptRequest{
		Rows:     sampleWireRows(),
		Password: "secret",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInternalServerError)
	assert.NotContains(t, rec.Body.String(), "entropy")
}

// ─────────────────────────────────────────────
// POST /api/tables/decrypt
// ─────────────────────────────────────────────

func TestDecryptTable_Success(t *testing.T) {
	router, m := newTestRouter(t, "")
	m.cipher.EXPECT().
		DecryptRows(gomock.Any(), "ZW52ZWxvcGU=", "secret", 0).
		Return(sampleTypedRows(), nil)

	rec := doJSON(t, router, http.MethodPost, "/api/tables/decrypt", models.DecryptRequest{
		Envelope: "ZW52ZWxvcGU=",
		Password: "secret",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DecryptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Columns, 3)
	assert.Equal(t, models.ColumnMetadata{Name: "name", Ordinal: 1, Tag: models.String}, resp.Columns[1])
	assert.Equal(t, sampleWireRows(), resp.Rows)
}

func TestDecryptTable_EmptyTable(t *testing.T) {
	router, m := newTestRouter(t, "")
	m.cipher.EXPECT().
		DecryptRows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.TypedRow{}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/tables/decrypt", models.DecryptRequest{
		Envelope: "ZW52ZWxvcGU=",
		Password: "secret",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"columns":[],"rows":[]}`, rec.Body.String())
}

func TestDecryptTable_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "wrong password",
			err:          fmt.Errorf("%w: %w", service.ErrDecryptingRows, crypto.ErrAuthentication),
			expectedCode: http.StatusUnauthorized,
			expectedBody: app.MsgWrongPassword,
		},
		{
			name:         "malformed envelope",
			err:          fmt.Errorf("%w: %w", crypto.ErrValidation, crypto.ErrMalformedEnvelope),
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgInvalidEnvelope,
		},
		{
			name:         "malformed document",
			err:          fmt.Errorf("%w: %w", service.ErrDecryptingRows, codec.ErrMalformedDocument),
			expectedCode: http.StatusBadRequest,
			expectedBody: app.MsgMalformedDocument,
		},
		{
			name:         "schema mismatch",
			err:          codec.ErrSchemaMismatch,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: app.MsgSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, "")
			m.cipher.EXPECT().
				DecryptRows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			rec := doJSON(t, router, http.MethodPost, "/api/tables/decrypt", models.DecryptRequest{
				Envelope: "ZW52ZWxvcGU=",
				Password: "secret",
			})

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestDecryptTable_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodPost, "/api/tables/decrypt", models.DecryptRequest{Password: "secret"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}
