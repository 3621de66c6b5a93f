package filter

import "github.com/sriram315/project-dashboard-go/internal/domain/catalog"

// State is the canonical filter selection for one session. Dates are kept as
// the raw YYYY-MM-DD strings the user committed; malformed or missing values
// are resolved to defaults at scope-resolution time, never stored corrected.
type State struct {
	Projects  Selection
	Employees Selection
	StartDate string
	EndDate   string
}

// Equal compares by value, including the date strings
func (s State) Equal(other State) bool {
	return s.Projects.Equal(other.Projects) &&
		s.Employees.Equal(other.Employees) &&
		s.StartDate == other.StartDate &&
		s.EndDate == other.EndDate
}

// Scrub removes every selected id that is absent from the catalog, keeping
// the engine free of dangling references. Returns the scrubbed state and
// whether anything conceptually changed (value equality, not identity), so
// callers can skip spurious change notifications.
func Scrub(s State, c *catalog.Catalog) (State, bool) {
	out := s
	out.Projects = s.Projects.Scrub(c.HasProject)
	out.Employees = s.Employees.Scrub(c.HasEmployee)
	return out, !out.Equal(s)
}
