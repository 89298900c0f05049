package middleware

import (
	"context"
	"net/http"

	"capitaluy-backend/internal/auth"
	"capitaluy-backend/pkg/utils"
)

type contextKey string

const AdminUsernameKey contextKey = "admin_username"

// AdminSession gates mutations on a valid admin_session cookie.
type AdminSession struct {
	sessions   *auth.SessionManager
	cookieName string
}

func NewAdminSession(sessions *auth.SessionManager, cookieName string) *AdminSession {
	if cookieName == "" {
		cookieName = "admin_session"
	}
	return &AdminSession{sessions: sessions, cookieName: cookieName}
}

// CookieName is the cookie the session token travels in.
func (m *AdminSession) CookieName() string {
	return m.cookieName
}

// Claims returns the verified session of the request, if any.
func (m *AdminSession) Claims(r *http.Request) (*auth.SessionClaims, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := m.sessions.Validate(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// IsAuthenticated reports whether the request carries a valid session.
func (m *AdminSession) IsAuthenticated(r *http.Request) bool {
	_, ok := m.Claims(r)
	return ok
}

// RequireAdmin rejects the request with 401 unless a valid session is present.
func (m *AdminSession) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.Claims(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "No autorizado")
			return
		}

		ctx := context.WithValue(r.Context(), AdminUsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminFunc is RequireAdmin for a HandlerFunc.
func (m *AdminSession) RequireAdminFunc(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAdmin(next).ServeHTTP
}
