package domain

import "time"

// Profile carries a provisioned account's portal-facing attributes. It is
// created 1:1 with an Identity and keyed by the identity's ID. IsActive
// gates portal access independent of role.
type Profile struct {
	ID        string // identity ID
	Email     string
	FullName  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRole reports whether the profile holds the given role and is active.
// Inactive accounts never pass role checks.
func (p Profile) HasRole(r Role) bool {
	return p.Role == r && p.IsActive
}

// IsSuperAdmin reports whether the profile is an active super admin, the
// only role permitted to issue invites or trigger invite emails.
func (p Profile) IsSuperAdmin() bool { return p.HasRole(RoleSuperAdmin) }
