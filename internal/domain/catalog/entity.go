package catalog

import (
	"sort"

	"github.com/sriram315/project-dashboard-go/internal/domain/user"
)

type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Employee struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

// Catalog is a read-only snapshot of what the viewer may select from.
// Both mappings arrive pre-scoped to the viewer's identity; the engine
// never widens them. The employee mapping is project-dependent and is
// rebuilt whenever the project dimension of the filter changes.
type Catalog struct {
	Projects  map[string]Project
	Employees map[string]Employee
}

func New(projects []Project, employees []Employee) *Catalog {
	c := &Catalog{
		Projects:  make(map[string]Project, len(projects)),
		Employees: make(map[string]Employee, len(employees)),
	}
	for _, p := range projects {
		c.Projects[p.ID] = p
	}
	for _, e := range employees {
		c.Employees[e.ID] = e
	}
	return c
}

func (c *Catalog) HasProject(id string) bool {
	_, ok := c.Projects[id]
	return ok
}

func (c *Catalog) HasEmployee(id string) bool {
	_, ok := c.Employees[id]
	return ok
}

// ProjectIDs returns all project ids in sorted order
func (c *Catalog) ProjectIDs() []string {
	ids := make([]string, 0, len(c.Projects))
	for id := range c.Projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EmployeeIDs returns all employee ids in sorted order
func (c *Catalog) EmployeeIDs() []string {
	ids := make([]string, 0, len(c.Employees))
	for id := range c.Employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProjectList returns projects sorted by name for stable presentation
func (c *Catalog) ProjectList() []Project {
	list := make([]Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// EmployeeList returns employees sorted by username for stable presentation
func (c *Catalog) EmployeeList() []Employee {
	list := make([]Employee, 0, len(c.Employees))
	for _, e := range c.Employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list
}
