package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid archive id", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrInvalidArchiveID), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"authentication", fmt.Errorf("%w: %w", service.ErrDecryptingRows, crypto.ErrAuthentication), http.StatusUnauthorized},
		{"crypto validation", crypto.ErrValidation, http.StatusBadRequest},
		{"schema mismatch", &codec.SchemaMismatchError{Row: 1, Column: "a", Reason: "extra column"}, http.StatusUnprocessableEntity},
		{"type coercion", codec.ErrTypeCoercion, http.StatusUnprocessableEntity},
		{"malformed document", codec.ErrMalformedDocument, http.StatusBadRequest},
		{"not found", store.ErrSealedTableNotFound, http.StatusNotFound},
		{"already exists", store.ErrSealedTableAlreadyExists, http.StatusConflict},
		{"user query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, app.MsgWrongPassword, messageFromError(crypto.ErrAuthentication))
	assert.Equal(t, app.MsgArchiveNotFound, messageFromError(fmt.Errorf("open: %w", store.ErrSealedTableNotFound)))
	assert.Equal(t, app.MsgInternalServerError, messageFromError(errors.New("db password=hunter2")))
}

func TestWriteError_DoesNotLeakErrorText(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, errors.New("dial tcp 10.0.0.5:5432: connection refused"), "test")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInternalServerError)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
