package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoleIsValid(t *testing.T) {
	require.True(t, RoleSuperAdmin.IsValid())
	require.True(t, RoleAdmin.IsValid())
	require.True(t, RoleClient.IsValid())

	require.False(t, Role("owner").IsValid())
	require.False(t, Role("").IsValid())
	require.False(t, Role("SUPER_ADMIN").IsValid())
}

func TestRoleLabel(t *testing.T) {
	require.Equal(t, "Super Admin", RoleSuperAdmin.Label())
	require.Equal(t, "Admin", RoleAdmin.Label())
	require.Equal(t, "Client", RoleClient.Label())
}

func TestRoleDashboardPath(t *testing.T) {
	require.Equal(t, "/super-admin/dashboard", RoleSuperAdmin.DashboardPath())
	require.Equal(t, "/admin/dashboard", RoleAdmin.DashboardPath())
	require.Equal(t, "/client/dashboard", RoleClient.DashboardPath())
	require.Equal(t, "/", Role("nope").DashboardPath())
}

func TestProfileHasRole(t *testing.T) {
	p := Profile{Role: RoleSuperAdmin, IsActive: true}
	require.True(t, p.HasRole(RoleSuperAdmin))
	require.True(t, p.IsSuperAdmin())
	require.False(t, p.HasRole(RoleAdmin))

	p.IsActive = false
	require.False(t, p.HasRole(RoleSuperAdmin), "inactive profiles hold no role")
	require.False(t, p.IsSuperAdmin())
}

func TestInviteExpiry(t *testing.T) {
	now := time.Now()
	inv := Invite{ExpiresAt: now.Add(time.Minute)}

	require.False(t, inv.Expired(now))
	require.True(t, inv.Expired(now.Add(2*time.Minute)))
	require.False(t, inv.Expired(inv.ExpiresAt), "boundary instant is still valid")
}

func TestInviteLink(t *testing.T) {
	inv := Invite{Token: "abc123"}
	require.Equal(t, "https://portal.example.com/create-account?token=abc123",
		inv.Link("https://portal.example.com"))
}
