package dashboard

import "context"

// DashboardService defines the operations the rendering layer calls. The
// viewer identity is carried in the request context claims.
type DashboardService interface {
	// GetDashboard returns the current snapshot and derived metrics,
	// initializing the viewer's session on first call
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetFilters returns the current filter state and reference catalogs
	GetFilters(ctx context.Context) (*FiltersResponse, error)

	// UpdateFilters commits a filter edit. Project changes refresh the
	// employee catalog and re-scrub; non-date-only edits trigger a fetch;
	// selections are persisted per identity.
	UpdateFilters(ctx context.Context, req UpdateFiltersRequest) (*UpdateFiltersResponse, error)

	// Refresh re-resolves the scope from current state and runs a fetch
	Refresh(ctx context.Context) (*DashboardResponse, error)
}
