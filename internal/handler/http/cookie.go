package http

import (
	"net/http"
	"time"
)

const sessionCookieName = "token"

// setSessionCookie stores the signed session token in an HTTP-only cookie
// readable by the SPA origins over CORS.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.settings.SessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   !h.settings.Development,
	})
}

// clearSessionCookie overwrites the session cookie with an empty value that
// expired at the epoch.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   !h.settings.Development,
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
