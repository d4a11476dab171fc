package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/pinvent/internal/app"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidForm:      http.StatusBadRequest,
	ErrNoSessionCookie:  http.StatusUnauthorized,
	ErrNoUserInContext:  http.StatusUnauthorized,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrConflict:              http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusBadRequest,
	service.ErrSamePassword:          http.StatusBadRequest,
	service.ErrInvalidOrExpiredToken: http.StatusBadRequest,
	service.ErrUnauthenticated:       http.StatusUnauthorized,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrProductNotFound:       http.StatusNotFound,
	service.ErrRateLimited:           http.StatusTooManyRequests,
	service.ErrEmailNotSent:          http.StatusInternalServerError,
	service.ErrImageUploadFailed:     http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

// errorMessages is ordered: specific errors come before the kinds they wrap.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrInvalidForm, app.MsgInvalidForm},
	{ErrNoSessionCookie, app.MsgNotAuthorized},
	{ErrNoUserInContext, app.MsgNotAuthorized},
	{ErrRouteNotFound, app.MsgRouteNotFound},
	{ErrMethodNotAllowed, app.MsgMethodNotAllowed},

	{service.ErrEmailAlreadyRegistered, app.MsgEmailAlreadyRegistered},
	{service.ErrProductAlreadyExists, app.MsgProductAlreadyExists},
	{service.ErrWrongOldPassword, app.MsgOldPasswordIncorrect},
	{service.ErrResetEmailNotSent, app.MsgResetEmailNotSent},
	{service.ErrContactEmailNotSent, app.MsgContactEmailNotSent},

	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrSamePassword, app.MsgSamePassword},
	{service.ErrInvalidOrExpiredToken, app.MsgInvalidOrExpiredToken},
	{service.ErrUnauthenticated, app.MsgNotAuthorized},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrProductNotFound, app.MsgProductNotFound},
	{service.ErrRateLimited, app.MsgTooManyRequests},
	{service.ErrEmailNotSent, app.MsgResetEmailNotSent},
	{service.ErrImageUploadFailed, app.MsgImageUploadFailed},
	{context.DeadlineExceeded, app.MsgRequestTimeoutElapsed},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError prefers the validation message carried by err, then the
// first matching entry of errorMessages.
func messageFromError(err error) string {
	if msg, ok := validators.Message(err); ok {
		return msg
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError renders err as {"message", "stack"}. The stack carries the
// wrapped error chain and is only exposed in development.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Info()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	resp := models.ErrorResponse{Message: messageFromError(err)}
	if h.settings.Development {
		resp.Stack = err.Error()
	}

	utils.WriteJSON(w, resp, status)
}
