package scope

import (
	"time"

	"github.com/sriram315/project-dashboard-go/internal/domain/catalog"
	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
	"github.com/sriram315/project-dashboard-go/internal/pkg/validator"
)

// Resolver converts a possibly-partial filter state plus viewer identity into
// a Resolved scope, applying the current-work-week date fallback and the
// role-driven project/employee defaults.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver builds a resolver using loc as the viewer's reference timezone
// for "current work week" computation. A nil loc means UTC.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc, now: time.Now}
}

// NewResolverAt is NewResolver with an injectable clock, for tests
func NewResolverAt(loc *time.Location, now func() time.Time) *Resolver {
	r := NewResolver(loc)
	if now != nil {
		r.now = now
	}
	return r
}

// parseStrictDate accepts only what validator.IsValidDate accepts, anchored
// to midnight in the resolver's location
func parseStrictDate(s string, loc *time.Location) (time.Time, bool) {
	d, ok := validator.IsValidDate(s)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
}

// workWeek returns Monday and Friday of the week containing now
func (r *Resolver) workWeek() (time.Time, time.Time) {
	now := r.now().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	sinceMonday := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -sinceMonday)
	friday := monday.AddDate(0, 0, 4)
	return monday, friday
}

// Resolve produces a fresh Resolved scope from the given state. The state is
// expected to be already scrubbed against the catalog.
//
// Dates: a missing or malformed start falls back to this week's Monday, a
// missing or malformed end to this week's Friday. An inverted pair, whether
// committed that way or produced by the default substitution, is discarded in
// favor of the current week. The range is never silently swapped, and the
// result always satisfies start <= end.
func (r *Resolver) Resolve(state filter.State, identity user.Identity, cat *catalog.Catalog) Resolved {
	monday, friday := r.workWeek()

	start, startOK := parseStrictDate(state.StartDate, r.loc)
	end, endOK := parseStrictDate(state.EndDate, r.loc)
	if !startOK {
		start = monday
	}
	if !endOK {
		end = friday
	}
	if start.After(end) {
		start, end = monday, friday
	}

	res := Resolved{StartDate: start, EndDate: end}

	// An explicitly selected project with nobody in it must read as "matches
	// nothing", not as "no filter".
	if !state.Projects.IsNone() && len(cat.Employees) == 0 {
		res.ProjectIDs = state.Projects.SortedIDs()
		res.EmployeeIDs = []string{}
		res.ZeroResult = true
		return res
	}

	switch {
	case !state.Employees.IsNone():
		res.EmployeeIDs = state.Employees.SortedIDs()
	case identity.IsSupervisor():
		// "No explicit filter" for a supervisor means everyone they can see,
		// not everyone unfiltered server-side.
		res.EmployeeIDs = cat.EmployeeIDs()
	default:
		res.EmployeeIDs = []string{identity.ID}
	}

	switch {
	case !state.Projects.IsNone():
		res.ProjectIDs = state.Projects.SortedIDs()
	case identity.IsSuperAdmin():
		res.ProjectIDs = nil
	default:
		res.ProjectIDs = cat.ProjectIDs()
	}

	return res
}
