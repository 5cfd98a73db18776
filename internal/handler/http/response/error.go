package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/elly-bignell/sales-dashboard/internal/domain/auth"
	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
)

type errorMapping struct {
	targets []error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	// Auth domain errors
	{[]error{auth.ErrInvalidCredentials}, http.StatusUnauthorized, CodeUnauthorized, "Invalid password"},
	{[]error{auth.ErrSessionNotFound}, http.StatusUnauthorized, CodeUnauthorized, "Login required"},
	{[]error{auth.ErrInvalidToken}, http.StatusUnauthorized, CodeUnauthorized, "Session expired, please log in again"},
	{[]error{auth.ErrAuthNotConfigured}, http.StatusServiceUnavailable, CodeServiceUnavailable, "Dashboard login is not configured"},

	// Dashboard domain errors
	{[]error{dashboard.ErrMemberNotFound}, http.StatusNotFound, CodeNotFound, "Team member not found"},
	{[]error{dashboard.ErrInvalidDateRange}, http.StatusBadRequest, CodeBadRequest, "Invalid date range"},
	{[]error{dashboard.ErrSheetNotFound, dashboard.ErrUpstreamFetch}, http.StatusBadGateway, CodeBadGateway, "Spreadsheet data is unavailable"},
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Fail(w, http.StatusUnprocessableEntity, CodeValidation, "Validation failed", validationErrs.ToMap())
		return
	}

	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errors.Is(err, target) {
				Fail(w, m.status, m.code, m.message, nil)
				return
			}
		}
	}

	slog.Error("Unhandled error", "error", err)
	Fail(w, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred", nil)
}
