package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without a configured token", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t)}

		_, err := svc.Bootstrap(ctx, "anything", "root@example.com", "Root", "long-enough-pw")
		require.ErrorIs(t, err, ErrBootstrapDisabled)
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "secret"}

		_, err := svc.Bootstrap(ctx, "not-secret", "root@example.com", "Root", "long-enough-pw")
		require.ErrorIs(t, err, ErrBootstrapForbidden)
	})

	t.Run("creates the first super admin", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}

		profile, err := svc.Bootstrap(ctx, "secret", "Root@Example.com", "Root", "long-enough-pw")
		require.NoError(t, err)
		require.Equal(t, "root@example.com", profile.Email)
		require.Equal(t, domain.RoleSuperAdmin, profile.Role)
		require.True(t, profile.IsActive)

		// The new account can log in.
		sessions := newTestSessions(t, st)
		_, err = sessions.Login(ctx, "root@example.com", "long-enough-pw")
		require.NoError(t, err)
	})

	t.Run("refuses once any identity exists", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Token: "secret"}

		seedProfile(t, st, "existing@example.com", domain.RoleClient, true)

		_, err := svc.Bootstrap(ctx, "secret", "root@example.com", "Root", "long-enough-pw")
		require.ErrorIs(t, err, ErrBootstrapDone)
	})

	t.Run("validates email and password", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "secret"}

		_, err := svc.Bootstrap(ctx, "secret", "bad-email", "Root", "long-enough-pw")
		require.ErrorIs(t, err, ErrInvalidEmail)

		_, err = svc.Bootstrap(ctx, "secret", "root@example.com", "Root", "short")
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}
