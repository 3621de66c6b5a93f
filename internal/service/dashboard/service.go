package dashboard

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sriram315/project-dashboard-go/internal/domain/catalog"
	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
	"github.com/sriram315/project-dashboard-go/internal/domain/metrics"
	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
)

type DashboardServiceImpl struct {
	sessions *registry
}

func NewDashboardService(catalogs catalog.Source, source metrics.Source, store filter.Persistence, resolver *scope.Resolver) dashboard.DashboardService {
	return &DashboardServiceImpl{
		sessions: newRegistry(func(identity user.Identity) *Session {
			return newSession(identity, catalogs, source, store, resolver)
		}),
	}
}

// getIdentity extracts the viewer identity from JWT claims
func getIdentity(ctx context.Context) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return user.Identity{}, user.ErrIdentityNotFound
	}
	role, ok := claims["role"].(string)
	if !ok || !user.ValidRole(role) {
		return user.Identity{}, user.ErrUnknownRole
	}
	return user.Identity{ID: id, Role: user.Role(role)}, nil
}

func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	identity, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.session(identity).Dashboard(ctx)
}

func (s *DashboardServiceImpl) GetFilters(ctx context.Context) (*dashboard.FiltersResponse, error) {
	identity, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.session(identity).Filters(ctx)
}

func (s *DashboardServiceImpl) UpdateFilters(ctx context.Context, req dashboard.UpdateFiltersRequest) (*dashboard.UpdateFiltersResponse, error) {
	identity, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.session(identity).UpdateFilters(ctx, req)
}

func (s *DashboardServiceImpl) Refresh(ctx context.Context) (*dashboard.DashboardResponse, error) {
	identity, err := getIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessions.session(identity).Refresh(ctx)
}
