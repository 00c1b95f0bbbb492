package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/crypto"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/internal/store"
)

// errorStatusMap must not hold two entries that can match the same error
// with different statuses: map iteration order is random.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidArchiveID:    http.StatusBadRequest,
	service.ErrEmptyTargetTable:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	crypto.ErrValidation:     http.StatusBadRequest,
	crypto.ErrAuthentication: http.StatusUnauthorized,

	codec.ErrMalformedDocument:    http.StatusBadRequest,
	codec.ErrUnsupportedStructure: http.StatusBadRequest,
	codec.ErrSchemaMismatch:       http.StatusUnprocessableEntity,
	codec.ErrTypeCoercion:         http.StatusUnprocessableEntity,

	store.ErrSealedTableNotFound:      http.StatusNotFound,
	store.ErrSealedTableAlreadyExists: http.StatusConflict,
	store.ErrInvalidTableName:         http.StatusBadRequest,
	store.ErrInconsistentRows:         http.StatusUnprocessableEntity,
	store.ErrConvertingValue:          http.StatusUnprocessableEntity,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrInvalidArchiveID:    app.MsgInvalidDataProvided,
	service.ErrEmptyTargetTable:    app.MsgInvalidDataProvided,
	service.ErrWrongPassword:       app.MsgWrongPassword,

	crypto.ErrValidation:     app.MsgInvalidEnvelope,
	crypto.ErrAuthentication: app.MsgWrongPassword,

	codec.ErrMalformedDocument:    app.MsgMalformedDocument,
	codec.ErrUnsupportedStructure: app.MsgMalformedDocument,
	codec.ErrSchemaMismatch:       app.MsgSchemaMismatch,
	codec.ErrTypeCoercion:         app.MsgTypeCoercion,

	store.ErrSealedTableNotFound:      app.MsgArchiveNotFound,
	store.ErrSealedTableAlreadyExists: app.MsgArchiveAlreadyExists,
	store.ErrInvalidTableName:         app.MsgInvalidTargetTable,
	store.ErrInconsistentRows:         app.MsgSchemaMismatch,
	store.ErrConvertingValue:          app.MsgTypeCoercion,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message. The
// error text itself never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err), status)
}
