package middleware

import (
	"errors"
	"net/http"

	"github.com/elly-bignell/sales-dashboard/internal/domain/auth"
	"github.com/elly-bignell/sales-dashboard/internal/handler/http/response"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// SessionVerifier decodes the session cookie into the request context.
func SessionVerifier(jwtService jwt.Service) func(http.Handler) http.Handler {
	return jwtauth.Verify(jwtService.JWTAuth(), jwtService.TokenFromCookie)
}

// AuthRequired rejects requests without a live session token. It must run
// after SessionVerifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.HandleError(w, auth.ErrSessionNotFound)
					return
				}
				http.SetCookie(w, jwtService.ClearedSessionCookie())
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeSession || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(token.JwtID()) {
				http.SetCookie(w, jwtService.ClearedSessionCookie())
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
