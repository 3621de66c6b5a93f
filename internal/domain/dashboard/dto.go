package dashboard

import (
	"github.com/sriram315/project-dashboard-go/internal/domain/catalog"
	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
	"github.com/sriram315/project-dashboard-go/internal/domain/metrics"
	"github.com/sriram315/project-dashboard-go/internal/pkg/validator"
)

// ========== DASHBOARD SNAPSHOT ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Scope      ScopeResponse          `json:"scope"`
	Weekly     []metrics.WeeklySample `json:"weekly"`
	TaskStats  TaskStatsResponse      `json:"task_stats"`
	Timeline   metrics.TaskTimeline   `json:"timeline"`
	Metrics    metrics.Derived        `json:"metrics"`
	Generation uint64                 `json:"generation"`
	Partial    bool                   `json:"partial"` // some sources failed; missing parts are empty
}

// ScopeResponse echoes the resolved scope the snapshot was fetched under
type ScopeResponse struct {
	ProjectIDs  []string `json:"project_ids"`  // null = unrestricted
	EmployeeIDs []string `json:"employee_ids"` // null = unrestricted
	StartDate   string   `json:"start_date"`   // YYYY-MM-DD
	EndDate     string   `json:"end_date"`     // YYYY-MM-DD
	ZeroResult  bool     `json:"zero_result,omitempty"`
}

// TaskStatsResponse is the status distribution with its total
type TaskStatsResponse struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Blocked    int64 `json:"blocked"`
	Total      int64 `json:"total"`
}

// ========== FILTERS ==========

// FiltersResponse is the current filter state plus the catalogs it is valid
// against
type FiltersResponse struct {
	Projects  []catalog.Project  `json:"projects"`
	Employees []catalog.Employee `json:"employees"`
	State     FilterStateBody    `json:"state"`
}

// FilterStateBody is the wire form of a filter state; selections use the
// array-or-scalar shape, dates are raw YYYY-MM-DD strings
type FilterStateBody struct {
	Projects  filter.Selection `json:"projects"`
	Employees filter.Selection `json:"employees"`
	StartDate string           `json:"start_date,omitempty"`
	EndDate   string           `json:"end_date,omitempty"`
}

// UpdateFiltersRequest carries a partial filter edit; absent fields leave
// that dimension untouched. Malformed dates are accepted and fall back to
// the current-week defaults at resolution time.
type UpdateFiltersRequest struct {
	Projects  *filter.Selection `json:"projects,omitempty"`
	Employees *filter.Selection `json:"employees,omitempty"`
	StartDate *string           `json:"start_date,omitempty"`
	EndDate   *string           `json:"end_date,omitempty"`
}

func (r *UpdateFiltersRequest) Validate() error {
	var errs validator.ValidationErrors

	validateIDs := func(field string, sel *filter.Selection) {
		if sel == nil {
			return
		}
		for _, id := range sel.IDs() {
			if !validator.IsValidID(id) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "contains a malformed id",
				})
				return
			}
		}
	}

	validateIDs("projects", r.Projects)
	validateIDs("employees", r.Employees)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateFiltersResponse returns the committed state and, when the edit
// triggered a fetch, the fresh dashboard snapshot
type UpdateFiltersResponse struct {
	Filters   FiltersResponse    `json:"filters"`
	Dashboard *DashboardResponse `json:"dashboard,omitempty"`
}
