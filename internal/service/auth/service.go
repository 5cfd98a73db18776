package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/auth"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwt.Service
	sharedSecret string
	passwordHash []byte
}

// NewAuthService accepts either a bcrypt hash of the dashboard password or,
// when passwordHash is empty, the plain shared secret.
func NewAuthService(jwtService jwt.Service, sharedSecret string, passwordHash string) auth.AuthService {
	return &AuthServiceImpl{
		Service:      jwtService,
		sharedSecret: sharedSecret,
		passwordHash: []byte(passwordHash),
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, error) {
	if err := a.checkPassword(req.Password); err != nil {
		return auth.SessionResponse{}, err
	}

	token, jti, expiresAt, err := a.GenerateSessionToken()
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}
	return auth.SessionResponse{Token: token, TokenID: jti, ExpiresAt: expiresAt}, nil
}

func (a *AuthServiceImpl) checkPassword(password string) error {
	if len(a.passwordHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			return auth.ErrInvalidCredentials
		}
		return nil
	}
	if a.sharedSecret == "" {
		return auth.ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(a.sharedSecret), []byte(password)) != 1 {
		return auth.ErrInvalidCredentials
	}
	return nil
}

// Logout implements auth.AuthService. An already invalid token is not an error.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrSessionNotFound
	}
	parsed, err := a.JWTAuth().Decode(token)
	if err != nil {
		slog.Debug("Logout with invalid session token", "error", err)
		return nil
	}
	expiresAt := parsed.Expiration()
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(jwt.DefaultSessionTTL)
	}
	a.RevokeToken(parsed.JwtID(), expiresAt.Unix())
	return nil
}
