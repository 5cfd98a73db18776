package auth

import (
	"context"
	"testing"
	"time"

	"github.com/elly-bignell/sales-dashboard/internal/domain/auth"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-dashboard-secret"
	testPassword = "let-me-in"
)

func newTestJWT() jwt.Service {
	return jwt.NewJWTService(testSecret, time.Hour, false)
}

// ===== LOGIN TESTS =====

func TestAuthService_Login_SharedSecret(t *testing.T) {
	jwtService := newTestJWT()
	svc := NewAuthService(jwtService, testSecret, "")

	session, err := svc.Login(context.Background(), auth.LoginRequest{Password: testSecret})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.TokenID)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())

	token, err := jwtService.JWTAuth().Decode(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.TokenID, token.JwtID())
	tokenType, ok := token.Get("type")
	require.True(t, ok)
	assert.Equal(t, jwt.TokenTypeSession, tokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newTestJWT(), testSecret, "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Password: "nope"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_PasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(newTestJWT(), testSecret, string(hash))

	_, err = svc.Login(context.Background(), auth.LoginRequest{Password: testPassword})
	require.NoError(t, err)

	// With a hash configured the shared secret is no longer a password.
	_, err = svc.Login(context.Background(), auth.LoginRequest{Password: testSecret})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_NotConfigured(t *testing.T) {
	svc := NewAuthService(newTestJWT(), "", "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Password: "anything"})

	assert.ErrorIs(t, err, auth.ErrAuthNotConfigured)
}

// ===== LOGOUT TESTS =====

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	jwtService := newTestJWT()
	svc := NewAuthService(jwtService, testSecret, "")
	session, err := svc.Login(context.Background(), auth.LoginRequest{Password: testSecret})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))

	assert.True(t, jwtService.IsTokenRevoked(session.TokenID))
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc := NewAuthService(newTestJWT(), testSecret, "")

	assert.NoError(t, svc.Logout(context.Background(), "not-a-jwt"))
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), auth.ErrSessionNotFound)
}
