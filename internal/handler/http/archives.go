package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/logger"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/models"
)

func (h *Handler) sealQuery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SealQueryRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.sealQuery").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	info, err := h.services.ArchiveService.SealQuery(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.sealQuery")
		return
	}

	utils.WriteJSON(w, info, http.StatusCreated)
}

func (h *Handler) listArchives(w http.ResponseWriter, r *http.Request) {
	infos, err := h.services.ArchiveService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listArchives")
		return
	}

	if infos == nil {
		infos = []models.SealedTableInfo{}
	}

	utils.WriteJSON(w, infos, http.StatusOK)
}

func (h *Handler) openArchive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OpenArchiveRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.openArchive").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	rows, err := h.services.ArchiveService.Open(r.Context(), chi.URLParam(r, "id"), req.Password)
	if err != nil {
		writeError(w, r, err, "*Handler.openArchive")
		return
	}

	writeRows(w, r, rows, "*Handler.openArchive")
}

func (h *Handler) restoreArchive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RestoreArchiveRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.restoreArchive").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	restored, err := h.services.ArchiveService.Restore(r.Context(), chi.URLParam(r, "id"), req.Password, req.TargetTable)
	if err != nil {
		writeError(w, r, err, "*Handler.restoreArchive")
		return
	}

	utils.WriteJSON(w, models.RestoreArchiveResponse{Restored: restored}, http.StatusOK)
}

func (h *Handler) deleteArchive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OpenArchiveRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteArchive").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.ArchiveService.Delete(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		writeError(w, r, err, "*Handler.deleteArchive")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
