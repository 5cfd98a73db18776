package auth

import (
	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
)

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if len(r.Password) > 256 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 256 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SessionResponse describes an issued session. The token itself only
// travels in the HttpOnly cookie.
type SessionResponse struct {
	Token     string `json:"-"`
	TokenID   string `json:"-"`
	ExpiresAt int64  `json:"expires_at"`
}
