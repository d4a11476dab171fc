package http

import (
	"net/http"

	"github.com/MKhiriev/pinvent/internal/app"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
)

func (h *Handler) contactUs(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ContactService.SendContactMessage(r.Context(), *user, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: app.MsgContactEmailSent}, http.StatusOK)
}
