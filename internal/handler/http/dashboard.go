package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/andalanhr/hrops-backend-go/internal/domain/dashboard"
	"github.com/andalanhr/hrops-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the combined operations dashboard payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
	exposeErrors     bool
}

// NewDashboardHandler builds the dashboard handler. exposeErrors controls
// whether aggregation failures surface their detail in the 500 body; it must
// be false in production.
func NewDashboardHandler(dashboardService dashboard.Service, exposeErrors bool) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		exposeErrors:     exposeErrors,
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query, err := parseDashboardQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), query)
	if err != nil {
		slog.ErrorContext(r.Context(), "dashboard aggregation failed", slog.String("error", err.Error()))
		if h.exposeErrors {
			response.InternalServerError(w, err.Error())
		} else {
			response.InternalServerError(w, "An unexpected error occurred")
		}
		return
	}

	response.Success(w, result)
}

// parseDashboardQuery reads divisionId, calendarYear and calendarMonth.
// calendarMonth is 0-based on the wire; both calendar parameters default to
// the current UTC month.
func parseDashboardQuery(r *http.Request) (dashboard.Query, error) {
	now := time.Now().UTC()
	query := dashboard.Query{Year: now.Year(), Month: now.Month()}

	if v := r.URL.Query().Get("divisionId"); v != "" {
		query.DepartmentID = &v
	}
	if v := r.URL.Query().Get("calendarYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return query, dashboard.ErrInvalidCalendarYear
		}
		query.Year = year
	}
	if v := r.URL.Query().Get("calendarMonth"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 0 || month > 11 {
			return query, dashboard.ErrInvalidCalendarMonth
		}
		query.Month = time.Month(month + 1)
	}

	return query, nil
}
