package domain

import "strings"

// Role is the closed set of portal roles. The invitee never picks a role;
// it always comes from the invite that provisioned the account.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleClient     Role = "client"
)

// IsValid reports whether r is one of the three portal roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleClient:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used in email subjects and UI copy,
// e.g. "Super Admin" for super_admin.
func (r Role) Label() string {
	parts := strings.Split(string(r), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// DashboardPath is the per-role landing route the front end navigates to
// after sign-in.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSuperAdmin:
		return "/super-admin/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleClient:
		return "/client/dashboard"
	default:
		return "/"
	}
}

func (r Role) String() string { return string(r) }
