package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/handler/http/response"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	// GetDashboard returns the team snapshot, or the zero-valued fallback
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetPeople returns the people directory
	GetPeople(w http.ResponseWriter, r *http.Request)
	// GetPerson returns one member's detail and personal bests
	GetPerson(w http.ResponseWriter, r *http.Request)
	// GetHolidays returns holidays for a month
	GetHolidays(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard failed, serving fallback", "error", err)
		if result == nil {
			result = h.dashboardService.FallbackDashboard(r.Context())
		}
	}

	response.Success(w, result)
}

// GetPeople handles GET /people
func (h *dashboardHandlerImpl) GetPeople(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ListMembers(r.Context())
	if err != nil {
		slog.Error("ListMembers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPerson handles GET /people/{personKey}
func (h *dashboardHandlerImpl) GetPerson(w http.ResponseWriter, r *http.Request) {
	key, err := personKey(r)
	if err != nil || validator.IsEmpty(key) {
		response.BadRequest(w, "Invalid person key", nil)
		return
	}

	result, err := h.dashboardService.GetMemberDetail(r.Context(), key)
	if err != nil {
		slog.Error("GetMemberDetail service error", "person", key, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHolidays handles GET /holidays?year=2026&month=1, defaulting to the current month
func (h *dashboardHandlerImpl) GetHolidays(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	year := queryInt(r, "year", &errs)
	month := queryInt(r, "month", &errs)
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.dashboardService.GetHolidays(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// queryInt returns 0 when the parameter is absent.
func queryInt(r *http.Request, name string, errs *validator.ValidationErrors) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		*errs = append(*errs, validator.ValidationError{Field: name, Message: name + " must be a positive integer"})
		return 0
	}
	return v
}

// personKey reads the {personKey} segment. chi matches against RawPath when
// the request carries one, leaving the segment escaped.
func personKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, "personKey")
	if r.URL.RawPath == "" {
		return key, nil
	}
	return url.PathUnescape(key)
}
