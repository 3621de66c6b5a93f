package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the current snapshot and derived metrics
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetFilters returns the current filter state and catalogs
	GetFilters(w http.ResponseWriter, r *http.Request)
	// UpdateFilters commits a filter edit
	UpdateFilters(w http.ResponseWriter, r *http.Request)
	// Refresh re-resolves the scope and runs a fresh fetch cycle
	Refresh(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// partialNotice is sent alongside a snapshot with failed constituents so the
// caller can render a non-blocking notice
const partialNotice = "Some data sources were unavailable; missing sections are empty"

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil && result == nil {
		response.HandleError(w, err)
		return
	}

	if result.Partial {
		response.SuccessWithMessage(w, partialNotice, result)
		return
	}
	response.Success(w, result)
}

// GetFilters handles GET /dashboard/filters
func (h *dashboardHandlerImpl) GetFilters(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetFilters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateFilters handles PUT /dashboard/filters
func (h *dashboardHandlerImpl) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req dashboard.UpdateFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.UpdateFilters(r.Context(), req)
	if err != nil && !errors.Is(err, dashboard.ErrPartialResults) {
		response.HandleError(w, err)
		return
	}

	if result.Dashboard != nil && result.Dashboard.Partial {
		response.SuccessWithMessage(w, partialNotice, result)
		return
	}
	response.Success(w, result)
}

// Refresh handles POST /dashboard/refresh
func (h *dashboardHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Refresh(r.Context())
	if err != nil && !errors.Is(err, dashboard.ErrPartialResults) {
		response.HandleError(w, err)
		return
	}

	if result.Partial {
		response.SuccessWithMessage(w, partialNotice, result)
		return
	}
	response.Success(w, result)
}
