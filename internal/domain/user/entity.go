package user

type Role string

const (
	RoleEmployee   Role = "employee"    // Sees own work by default
	RoleManager    Role = "manager"     // Sees assigned projects
	RoleTeamLead   Role = "team_lead"   // Sees assigned projects
	RoleSuperAdmin Role = "super_admin" // Unrestricted project scope
)

// Identity is the viewer the engine acts for. Immutable for the life of a session.
type Identity struct {
	ID   string
	Role Role
}

// IsSupervisor checks if the identity defaults to team-wide employee scoping
func (i Identity) IsSupervisor() bool {
	return i.Role == RoleManager || i.Role == RoleTeamLead || i.Role == RoleSuperAdmin
}

// IsSuperAdmin checks if the identity carries no server-side project restriction
func (i Identity) IsSuperAdmin() bool {
	return i.Role == RoleSuperAdmin
}

// ValidRole checks a role string against the known role set
func ValidRole(role string) bool {
	switch Role(role) {
	case RoleEmployee, RoleManager, RoleTeamLead, RoleSuperAdmin:
		return true
	}
	return false
}
