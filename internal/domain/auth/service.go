package auth

import (
	"context"
)

type AuthService interface {
	// Login checks the shared dashboard password and issues a session.
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	// Logout revokes the session token, if it is still valid.
	Logout(ctx context.Context, token string) error
}
