package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a session", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestSessions(t, st)

		profile := seedProfile(t, st, "alice@example.com", domain.RoleSuperAdmin, true)

		session, err := svc.Login(ctx, "alice@example.com", "sw0rdfish-51")
		require.NoError(t, err)
		require.Equal(t, profile.ID, session.Profile.ID)
		require.Equal(t, "Bearer", session.TokenType)
		require.WithinDuration(t, time.Now().Add(svc.ttl()), session.ExpiresAt, 5*time.Second)

		// The token carries the profile's identity and role.
		claims, err := svc.Signer.Verifier("portal-test").Verify(session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, profile.ID, claims.Subject)
		require.Equal(t, domain.RoleSuperAdmin.String(), claims.Role)
	})

	t.Run("email lookup is case insensitive", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestSessions(t, st)

		seedProfile(t, st, "bob@example.com", domain.RoleClient, true)

		_, err := svc.Login(ctx, "BOB@Example.com", "sw0rdfish-51")
		require.NoError(t, err)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestSessions(t, st)

		seedProfile(t, st, "carol@example.com", domain.RoleClient, true)

		_, err := svc.Login(ctx, "carol@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, "nobody@example.com", "whatever-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled accounts cannot log in", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestSessions(t, st)

		seedProfile(t, st, "off@example.com", domain.RoleAdmin, false)

		_, err := svc.Login(ctx, "off@example.com", "sw0rdfish-51")
		require.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestUserinfo(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestSessions(t, st)

	profile := seedProfile(t, st, "dora@example.com", domain.RoleAdmin, true)

	got, err := svc.Userinfo(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, profile.Email, got.Email)
	require.Equal(t, domain.RoleAdmin, got.Role)

	_, err = svc.Userinfo(ctx, "no-such-id")
	require.ErrorIs(t, err, ErrProfileNotFound)
}
