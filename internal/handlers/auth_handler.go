package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"capitaluy-backend/internal/middleware"
	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/services"
	"capitaluy-backend/pkg/utils"
)

type AuthHandler struct {
	Service      *services.AuthService
	Gate         *middleware.AdminSession
	CookieSecure bool
}

func NewAuthHandler(service *services.AuthService, gate *middleware.AdminSession, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Service: service, Gate: gate, CookieSecure: cookieSecure}
}

// Status answers GET /api/auth.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]bool{"authenticated": h.Gate.IsAuthenticated(r)})
}

// Action handles {action: login|logout|check|create}.
func (h *AuthHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	switch req.Action {
	case "login":
		h.login(w, r, req)
	case "logout":
		h.setSessionCookie(w, "", time.Unix(0, 0), -1)
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Sesion cerrada",
		})
	case "check":
		h.Status(w, r)
	case "create":
		h.create(w, r, req)
	default:
		utils.Error(w, http.StatusBadRequest, "Accion no valida")
	}
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, req models.AuthRequest) {
	token, expiresAt, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		zap.S().Infow("[Auth] failed login", "username", req.Username)
		utils.JSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"error":   "Credenciales incorrectas",
		})
		return
	}
	if err != nil {
		zap.S().Errorw("[Auth] login failed", "error", err)
		utils.Error(w, http.StatusInternalServerError, "Error en el servidor")
		return
	}

	h.setSessionCookie(w, token, expiresAt, int(time.Until(expiresAt).Seconds()))
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login exitoso",
	})
}

func (h *AuthHandler) create(w http.ResponseWriter, r *http.Request, req models.AuthRequest) {
	err := h.Service.CreateAccount(r.Context(), req.Username, req.Password, h.Gate.IsAuthenticated(r))
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingCredentials):
		utils.Error(w, http.StatusBadRequest, "Usuario y contrasena requeridos")
		return
	case errors.Is(err, services.ErrAccountExists):
		utils.Error(w, http.StatusForbidden, "Ya existe un administrador")
		return
	default:
		saveFailed(w, "[Auth]", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Administrador guardado",
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, expires time.Time, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Gate.CookieName(),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
