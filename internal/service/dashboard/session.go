package dashboard

import (
	"context"
	"sync"

	"github.com/sriram315/project-dashboard-go/internal/domain/catalog"
	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
	"github.com/sriram315/project-dashboard-go/internal/domain/metrics"
	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
)

// Session holds one viewer's filter state, reference catalog and last
// accepted snapshot. State is only mutated under the session mutex in
// response to completed fetches or committed filter edits; snapshot merges
// are fenced by generation so a slow stale fetch can never overwrite a
// fresher one.
type Session struct {
	identity user.Identity
	catalogs catalog.Source
	source   metrics.Source
	store    filter.Persistence
	resolver *scope.Resolver

	mu          sync.Mutex
	initialized bool
	state       filter.State
	cat         *catalog.Catalog
	snapshot    *metrics.Snapshot
	lastScope   scope.Resolved
	partial     bool
	generation  uint64 // last issued fetch cycle
	applied     uint64 // generation of the accepted snapshot
}

func newSession(identity user.Identity, catalogs catalog.Source, source metrics.Source, store filter.Persistence, resolver *scope.Resolver) *Session {
	return &Session{
		identity: identity,
		catalogs: catalogs,
		source:   source,
		store:    store,
		resolver: resolver,
	}
}

// ensure initializes the session on first use: restore persisted selections,
// load catalogs, scrub, then run the initial fetch.
func (s *Session) ensure(ctx context.Context) error {
	s.mu.Lock()
	ready := s.initialized
	s.mu.Unlock()
	if ready {
		return nil
	}
	return s.initialize(ctx)
}

func (s *Session) initialize(ctx context.Context) error {
	var st filter.State
	if persisted, err := s.store.Load(ctx, s.identity.ID); err == nil && persisted != nil {
		st.Projects = persisted.Projects
		st.Employees = persisted.Employees
	}

	st, cat, err := s.loadCatalog(ctx, st)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = st
	s.cat = cat
	s.initialized = true
	s.mu.Unlock()

	_, err = s.run(ctx)
	return err
}

// loadCatalog loads the project list, scrubs the project selection against
// it, loads the employee list for the surviving project scope, and scrubs
// the full state against the combined catalog.
func (s *Session) loadCatalog(ctx context.Context, st filter.State) (filter.State, *catalog.Catalog, error) {
	projects, err := s.catalogs.ListProjects(ctx, s.identity)
	if err != nil {
		return st, nil, err
	}

	projectsOnly := catalog.New(projects, nil)
	st.Projects = st.Projects.Scrub(projectsOnly.HasProject)

	employees, err := s.catalogs.ListEmployees(ctx, s.identity, st.Projects.IDs())
	if err != nil {
		return st, nil, err
	}

	cat := catalog.New(projects, employees)
	st, _ = filter.Scrub(st, cat)
	return st, cat, nil
}

// UpdateFilters commits a filter edit. A change to the project dimension
// refreshes the project-dependent employee catalog and re-scrubs. Selection
// changes are persisted and trigger a fetch; date-only edits update state
// without fetching.
func (s *Session) UpdateFilters(ctx context.Context, req dashboard.UpdateFiltersRequest) (*dashboard.UpdateFiltersResponse, error) {
	if err := s.ensure(ctx); err != nil && s.Snapshot() == nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.state
	next := prev
	if req.Projects != nil {
		next.Projects = *req.Projects
	}
	if req.Employees != nil {
		next.Employees = *req.Employees
	}
	if req.StartDate != nil {
		next.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		next.EndDate = *req.EndDate
	}
	cat := s.cat
	s.mu.Unlock()

	projectsChanged := !next.Projects.Equal(prev.Projects)
	if projectsChanged {
		var err error
		next, cat, err = s.loadCatalog(ctx, next)
		if err != nil {
			return nil, err
		}
	} else {
		next, _ = filter.Scrub(next, cat)
	}

	s.mu.Lock()
	changed := !next.Equal(s.state)
	selectionsChanged := !next.Projects.Equal(s.state.Projects) || !next.Employees.Equal(s.state.Employees)
	s.state = next
	s.cat = cat
	s.mu.Unlock()

	if selectionsChanged {
		// Best effort: a failed save leaves this session fully usable and is
		// recovered as "no persisted state" next session.
		_ = s.store.Save(ctx, s.identity.ID, next)
	}

	resp := &dashboard.UpdateFiltersResponse{Filters: s.filtersView()}
	if !changed || !selectionsChanged {
		// Date-only and no-op commits never trigger a fetch on their own.
		return resp, nil
	}

	view, err := s.run(ctx)
	if err != nil && view == nil {
		return nil, err
	}
	resp.Dashboard = view
	return resp, err
}

// Refresh re-resolves the scope from current state and runs a fetch cycle
func (s *Session) Refresh(ctx context.Context) (*dashboard.DashboardResponse, error) {
	if err := s.ensure(ctx); err != nil && s.Snapshot() == nil {
		return nil, err
	}
	return s.run(ctx)
}

// Dashboard returns the view over the last accepted snapshot
func (s *Session) Dashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	err := s.ensure(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		if err != nil {
			return nil, err
		}
		return nil, dashboard.ErrNoSnapshot
	}
	return buildDashboardResponse(s.snapshot, s.lastScope, s.partial), nil
}

// Filters returns the current filter state and catalogs
func (s *Session) Filters(ctx context.Context) (*dashboard.FiltersResponse, error) {
	if err := s.ensure(ctx); err != nil && s.Snapshot() == nil {
		return nil, err
	}
	view := s.filtersView()
	return &view, nil
}

// Snapshot returns the last accepted snapshot, nil if none
func (s *Session) Snapshot() *metrics.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *Session) filtersView() dashboard.FiltersResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dashboard.FiltersResponse{
		Projects:  s.cat.ProjectList(),
		Employees: s.cat.EmployeeList(),
		State: dashboard.FilterStateBody{
			Projects:  s.state.Projects,
			Employees: s.state.Employees,
			StartDate: s.state.StartDate,
			EndDate:   s.state.EndDate,
		},
	}
}
