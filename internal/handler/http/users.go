package http

import (
	"net/http"

	"github.com/MKhiriev/pinvent/internal/app"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
	"github.com/go-chi/chi/v5"
)

const resetTokenURLParam = "resetToken"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Profile: user.Profile(), Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Profile: user.Profile(), Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserLoggedOut}, http.StatusOK)
}

// loggedIn reports whether the cookie carries a valid session. It checks the
// token only and never fails.
func (h *Handler) loggedIn(w http.ResponseWriter, r *http.Request) {
	tokenString := sessionToken(r)
	if tokenString == "" {
		utils.WriteJSON(w, false, http.StatusOK)
		return
	}

	_, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	utils.WriteJSON(w, err == nil, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	req, err := h.updateUserFromRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), userID, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordUpdated}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true, Message: app.MsgResetEmailSent}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resetToken := chi.URLParam(r, resetTokenURLParam)
	if err := h.services.AuthService.ResetPassword(r.Context(), resetToken, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordReset}, http.StatusOK)
}
