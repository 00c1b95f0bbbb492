package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/codec"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/service"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/models"
)

func (h *Handler) encryptTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EncryptRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptTable").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "*Handler.encryptTable")
		return
	}

	rows, err := codec.FromWire(req.Rows)
	if err != nil {
		writeError(w, r, err, "*Handler.encryptTable")
		return
	}

	envelope, err := h.services.TableCipherService.EncryptRows(ctx, rows, req.Password, req.Iterations)
	if err != nil {
		writeError(w, r, err, "*Handler.encryptTable")
		return
	}

	log.Debug().Str("func", "*Handler.encryptTable").Int("rows", len(rows)).Msg("table encrypted")

	utils.WriteJSON(w, models.EncryptResponse{Envelope: envelope}, http.StatusOK)
}

func (h *Handler) decryptTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DecryptRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptTable").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "*Handler.decryptTable")
		return
	}

	rows, err := h.services.TableCipherService.DecryptRows(ctx, req.Envelope, req.Password, req.Iterations)
	if err != nil {
		writeError(w, r, err, "*Handler.decryptTable")
		return
	}

	writeRows(w, r, rows, "*Handler.decryptTable")
}

// writeRows answers with the column metadata and the JSON form of rows.
func writeRows(w http.ResponseWriter, r *http.Request, rows []models.TypedRow, funcName string) {
	wire, err := codec.ToWire(rows)
	if err != nil {
		writeError(w, r, err, funcName)
		return
	}

	resp := models.DecryptResponse{
		Columns: []models.ColumnMetadata{},
		Rows:    wire,
	}
	if len(rows) > 0 {
		resp.Columns = rows[0].Columns()
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
