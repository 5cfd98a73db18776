package oauth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// SheetsReadOnlyScope grants read access to spreadsheets.
const SheetsReadOnlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

var ErrMissingCredentials = errors.New("google service account credentials are required")

type GoogleService interface {
	// HTTPClient returns a client that signs requests with the service account token.
	HTTPClient(ctx context.Context) *http.Client
}

type GoogleServiceImpl struct {
	config *jwt.Config
}

// NewGoogleService builds a service-account (two-legged JWT) configuration.
// privateKey may contain literal "\n" sequences as stored in env files.
func NewGoogleService(email string, privateKey string, scopes []string) (GoogleService, error) {
	if email == "" || privateKey == "" {
		return nil, ErrMissingCredentials
	}
	config := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(NormalizePrivateKey(privateKey)),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	return &GoogleServiceImpl{config: config}, nil
}

// NormalizePrivateKey turns escaped newlines back into real ones.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func (g *GoogleServiceImpl) HTTPClient(ctx context.Context) *http.Client {
	return g.config.Client(ctx)
}
