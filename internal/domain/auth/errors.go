package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or expired session")
	ErrSessionNotFound    = errors.New("session cookie not found")
	ErrAuthNotConfigured  = errors.New("dashboard password is not configured")
)
