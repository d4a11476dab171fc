package http

import (
	"net/http"

	"github.com/MKhiriev/pinvent/internal/app"
	"github.com/MKhiriev/pinvent/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}

// health reports liveness only; it does not touch the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgHealthy, http.StatusOK)
}
