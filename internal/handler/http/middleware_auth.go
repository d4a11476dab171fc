package http

import (
	"net/http"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/utils"
)

// auth is the access guard of protected routes.
//
// It reads the "token" cookie, verifies it via
// [service.AuthService.AuthenticateUser] and, on success, stores the loaded
// user (without its password hash) in the request context under
// [utils.UserCtxKey] and its id under [utils.UserIDCtxKey]. Nothing is cached
// between requests, so a deleted user is rejected on the next call.
//
// The middleware rejects requests with 401 when the cookie is absent, the
// token does not verify, or its subject no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := sessionToken(r)
		if tokenString == "" {
			h.writeError(w, r, ErrNoSessionCookie)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.AuthenticateUser(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, &user)
		ctx = logger.FromContext(ctx).WithUser(user.ID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
