package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sriram315/project-dashboard-go/internal/domain/dashboard"
	"github.com/sriram315/project-dashboard-go/internal/domain/metrics"
	"github.com/sriram315/project-dashboard-go/internal/domain/scope"
	"golang.org/x/sync/errgroup"
)

// run executes one fetch cycle: take a generation number, resolve the scope
// from current state, fan out the constituent fetches, and merge the result
// if no newer cycle has been accepted in the meantime. A superseded result
// is dropped on arrival regardless of completion order; in-flight transport
// calls are not aborted, only their effect is cancelled.
func (s *Session) run(ctx context.Context) (*dashboard.DashboardResponse, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	st := s.state
	cat := s.cat
	s.mu.Unlock()

	sc := s.resolver.Resolve(st, s.identity, cat)

	snap, fetchErr := s.fetch(ctx, sc, gen)
	if snap == nil {
		// Total failure: the previously accepted snapshot stays in place.
		return nil, fetchErr
	}

	partial := errors.Is(fetchErr, dashboard.ErrPartialResults)

	s.mu.Lock()
	accepted := gen > s.applied
	if accepted {
		s.applied = gen
		s.snapshot = snap
		s.lastScope = sc
		s.partial = partial
	}
	// Either way the caller sees the freshest accepted state.
	view := buildDashboardResponse(s.snapshot, s.lastScope, s.partial)
	s.mu.Unlock()

	if accepted && partial {
		return view, fetchErr
	}
	return view, nil
}

// fetch issues the independent queries for one scope concurrently and merges
// them. Failed constituents are substituted with empty collections; fetch
// returns nil only when every constituent failed.
func (s *Session) fetch(ctx context.Context, sc scope.Resolved, gen uint64) (*metrics.Snapshot, error) {
	if sc.ZeroResult {
		// The backend would read an unscoped query here; short-circuit.
		return metrics.EmptySnapshot(gen), nil
	}

	var (
		weekly    metrics.WeeklySeries
		weeklyErr error
		dist      metrics.StatusDistribution
		distErr   error
		timeline  metrics.TaskTimeline
		tlErr     error
	)

	// Each goroutine records its own error and returns nil so that one
	// failing source never cancels its siblings.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weekly, weeklyErr = s.source.GetWeeklySeries(gCtx, sc)
		return nil
	})
	g.Go(func() error {
		dist, distErr = s.source.GetStatusDistribution(gCtx, sc)
		return nil
	})
	g.Go(func() error {
		timeline, tlErr = s.source.GetTaskTimeline(gCtx, sc)
		return nil
	})
	_ = g.Wait()

	failed := 0
	for _, err := range []error{weeklyErr, distErr, tlErr} {
		if err != nil {
			failed++
		}
	}
	if failed == 3 {
		return nil, fmt.Errorf("%w: %v", dashboard.ErrAllSourcesFailed, errors.Join(weeklyErr, distErr, tlErr))
	}

	if weeklyErr != nil {
		weekly = metrics.WeeklySeries{}
	}
	if weekly.Samples == nil {
		weekly.Samples = []metrics.WeeklySample{}
	}
	if distErr != nil {
		dist = metrics.StatusDistribution{}
	}
	if tlErr != nil {
		timeline = metrics.TaskTimeline{}
	}
	if timeline.ThisWeek == nil {
		timeline.ThisWeek = []metrics.Task{}
	}
	if timeline.NextWeek == nil {
		timeline.NextWeek = []metrics.Task{}
	}

	snap := &metrics.Snapshot{
		Weekly:     weekly,
		Statuses:   dist,
		Timeline:   timeline,
		Generation: gen,
	}
	if failed > 0 {
		return snap, fmt.Errorf("%w: %v", dashboard.ErrPartialResults, errors.Join(weeklyErr, distErr, tlErr))
	}
	return snap, nil
}

func buildDashboardResponse(snap *metrics.Snapshot, sc scope.Resolved, partial bool) *dashboard.DashboardResponse {
	return &dashboard.DashboardResponse{
		Scope: dashboard.ScopeResponse{
			ProjectIDs:  sc.ProjectIDs,
			EmployeeIDs: sc.EmployeeIDs,
			StartDate:   sc.StartDateString(),
			EndDate:     sc.EndDateString(),
			ZeroResult:  sc.ZeroResult,
		},
		Weekly: snap.Weekly.Samples,
		TaskStats: dashboard.TaskStatsResponse{
			Todo:       snap.Statuses.Todo,
			InProgress: snap.Statuses.InProgress,
			Completed:  snap.Statuses.Completed,
			Blocked:    snap.Statuses.Blocked,
			Total:      snap.Statuses.Total(),
		},
		Timeline:   snap.Timeline,
		Metrics:    metrics.Derive(snap.Weekly),
		Generation: snap.Generation,
		Partial:    partial,
	}
}
