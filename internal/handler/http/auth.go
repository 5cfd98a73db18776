package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/elly-bignell/sales-dashboard/internal/domain/auth"
	"github.com/elly-bignell/sales-dashboard/internal/handler/http/response"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	session, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login rejected", "remote_addr", r.RemoteAddr, "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(session.Token, session.ExpiresAt))
	slog.Info("Dashboard login successful")
	response.SuccessWithMessage(w, "Login successful", session)
}

// Logout implements AuthHandler. The cookie is cleared even without a session.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if token := a.jwtService.TokenFromCookie(r); token != "" {
		if err := a.authService.Logout(r.Context(), token); err != nil {
			slog.Error("Logout service error", "error", err)
		}
	}

	http.SetCookie(w, a.jwtService.ClearedSessionCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}
