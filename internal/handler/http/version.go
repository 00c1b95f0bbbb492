package http

import (
	"net/http"

	"github.com/MKhiriev/go-sealed-table/internal/utils"
	"github.com/MKhiriev/go-sealed-table/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK)
}
