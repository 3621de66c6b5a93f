package postgresql

import (
	"context"
	"fmt"

	"github.com/sriram315/project-dashboard-go/internal/domain/catalog"
	"github.com/sriram315/project-dashboard-go/internal/domain/user"
	"github.com/sriram315/project-dashboard-go/internal/pkg/database"
)

type catalogRepositoryImpl struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.Source {
	return &catalogRepositoryImpl{db: db}
}

// ListProjects returns the projects visible to the identity: every project
// for a super admin, the membership-assigned set for everyone else.
func (r *catalogRepositoryImpl) ListProjects(ctx context.Context, identity user.Identity) ([]catalog.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.status
		FROM projects p
		WHERE p.deleted_at IS NULL
		AND ($1 OR EXISTS (
			SELECT 1 FROM project_members pm
			WHERE pm.project_id = p.id AND pm.employee_id = $2
		))
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query, identity.IsSuperAdmin(), identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []catalog.Project
	for rows.Next() {
		var p catalog.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListEmployees returns the employees visible to the identity within the
// given project scope. A nil projectIDs means the identity's full project
// scope; the result is always restricted server-side to projects the
// identity can see.
func (r *catalogRepositoryImpl) ListEmployees(ctx context.Context, identity user.Identity, projectIDs []string) ([]catalog.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT e.id, e.username, e.role
		FROM employees e
		JOIN project_members pm ON pm.employee_id = e.id
		JOIN projects p ON p.id = pm.project_id AND p.deleted_at IS NULL
		WHERE e.deleted_at IS NULL
		AND (cardinality($1::text[]) = 0 OR pm.project_id = ANY($1))
		AND ($2 OR pm.project_id IN (
			SELECT project_id FROM project_members WHERE employee_id = $3
		))
		ORDER BY e.username
	`

	if projectIDs == nil {
		projectIDs = []string{}
	}
	rows, err := q.Query(ctx, query, projectIDs, identity.IsSuperAdmin(), identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []catalog.Employee
	for rows.Next() {
		var e catalog.Employee
		var role string
		if err := rows.Scan(&e.ID, &e.Username, &role); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.Role = user.Role(role)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
