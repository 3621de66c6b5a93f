package catalog

import (
	"context"

	"github.com/sriram315/project-dashboard-go/internal/domain/user"
)

// Source defines the interface for reference list access. Implementations
// must scope both lists server-side to the given identity before returning.
type Source interface {
	// ListProjects returns the projects the identity may select from
	ListProjects(ctx context.Context, identity user.Identity) ([]Project, error)

	// ListEmployees returns the employees visible to the identity within the
	// given project scope; nil projectIDs means the identity's full scope
	ListEmployees(ctx context.Context, identity user.Identity, projectIDs []string) ([]Employee, error)
}
