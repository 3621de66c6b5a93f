package scope

import (
	"time"
)

// Resolved is a fully-resolved, API-ready query scope. Dates are always
// present and ordered. A nil id slice means "unrestricted" for that
// dimension.
type Resolved struct {
	ProjectIDs  []string
	EmployeeIDs []string
	StartDate   time.Time
	EndDate     time.Time

	// ZeroResult marks a scope that is known to match nothing (an explicit
	// project selection whose employee catalog is empty). Consumers must
	// short-circuit to zeroed results instead of issuing a query the backend
	// would read as unscoped.
	ZeroResult bool
}

const dateLayout = "2006-01-02"

// StartDateString returns the start date in YYYY-MM-DD form
func (r Resolved) StartDateString() string { return r.StartDate.Format(dateLayout) }

// EndDateString returns the end date in YYYY-MM-DD form
func (r Resolved) EndDateString() string { return r.EndDate.Format(dateLayout) }
