package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "auth-token"
	// DefaultSessionTTL keeps a login valid for a week.
	DefaultSessionTTL = 7 * 24 * time.Hour

	TokenTypeSession = "session"
)

type Service interface {
	GenerateSessionToken() (token string, jti string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearedSessionCookie() *http.Cookie
	TokenFromCookie(r *http.Request) string
	RevokeToken(jti string, expiresAt int64)
	IsTokenRevoked(jti string) bool
	PurgeExpired() int
}

type JWTService struct {
	tokenAuth     *jwtauth.JWTAuth
	sessionTTL    time.Duration
	secureCookie  bool
	revokedTokens map[string]int64
	mu            sync.RWMutex
	now           func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService signs session tokens with HS256. secureCookie should be set
// whenever the dashboard is served over HTTPS.
func NewJWTService(secretKey string, sessionTTL time.Duration, secureCookie bool) Service {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &JWTService{
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		sessionTTL:    sessionTTL,
		secureCookie:  secureCookie,
		revokedTokens: make(map[string]int64),
		now:           time.Now,
	}
}

func (j *JWTService) GenerateSessionToken() (token string, jti string, expiresAt int64, err error) {
	now := j.now()
	expiresAt = now.Add(j.sessionTTL).Unix()
	jti = uuid.NewString()

	_, token, err = j.tokenAuth.Encode(map[string]interface{}{
		"jti":  jti,
		"type": TokenTypeSession,
		"iat":  now.Unix(),
		"exp":  expiresAt,
	})
	return token, jti, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		MaxAge:   int(time.Until(time.Unix(expiresAt, 0)).Seconds()),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromCookie is a jwtauth token finder for the session cookie.
func (j *JWTService) TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RevokeToken remembers jti until its expiry.
func (j *JWTService) RevokeToken(jti string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.purgeLocked()
	j.revokedTokens[jti] = expiresAt
}

// PurgeExpired drops revocations whose token has expired anyway.
func (j *JWTService) PurgeExpired() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.purgeLocked()
}

func (j *JWTService) purgeLocked() int {
	now := j.now().Unix()
	purged := 0
	for id, exp := range j.revokedTokens {
		if exp <= now {
			delete(j.revokedTokens, id)
			purged++
		}
	}
	return purged
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}
