package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newInvite(email string, expiresAt time.Time) domain.Invite {
	return domain.Invite{
		ID:        idx.New().String(),
		Email:     email,
		Role:      domain.RoleClient,
		Token:     cryptox.MustGenerateToken(cryptox.TokenSize128),
		InvitedBy: idx.New().String(),
		ExpiresAt: expiresAt,
	}
}

func TestInvitesUniqueActiveEmail(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	first := newInvite("a@example.com", time.Now().Add(time.Hour))
	require.NoError(t, st.Invites().CreateInvite(ctx, first))

	// Second unused invite for the same email violates the partial index.
	err := st.Invites().CreateInvite(ctx, newInvite("a@example.com", time.Now().Add(time.Hour)))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Once the first is consumed, the email is free again.
	require.NoError(t, st.Invites().ConsumeInvite(ctx, first.Token, idx.New().String()))
	require.NoError(t, st.Invites().CreateInvite(ctx, newInvite("a@example.com", time.Now().Add(time.Hour))))
}

func TestConsumeInviteIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	inv := newInvite("b@example.com", time.Now().Add(time.Hour))
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	require.NoError(t, st.Invites().ConsumeInvite(ctx, inv.Token, "winner"))

	// The compare-and-set transitions no row the second time.
	err := st.Invites().ConsumeInvite(ctx, inv.Token, "loser")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Consumed invites fall out of the unused lookups.
	_, err = st.Invites().GetUnusedInviteByToken(ctx, inv.Token)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Invites().GetUnusedInviteByEmail(ctx, "b@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConsumeInviteUnknownToken(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	err := st.Invites().ConsumeInvite(ctx, "no-such-token", "anyone")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConsumeInviteRefusesExpired(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	// Even a consumer that already validated the token cannot burn it once
	// the expiry passes; the predicate checks validity at write time.
	inv := newInvite("late@example.com", time.Now().Add(-time.Second))
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	err := st.Invites().ConsumeInvite(ctx, inv.Token, "latecomer")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The row is untouched, not half-consumed.
	got, err := st.Invites().GetUnusedInviteByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.False(t, got.Used)
	require.Empty(t, got.UsedBy)
}

func TestDeleteExpiredInvites(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	expired := newInvite("old@example.com", time.Now().Add(-time.Hour))
	live := newInvite("new@example.com", time.Now().Add(time.Hour))
	require.NoError(t, st.Invites().CreateInvite(ctx, expired))
	require.NoError(t, st.Invites().CreateInvite(ctx, live))

	// Consumed invites stay regardless of expiry. Backdate the expiry after
	// consumption; the consume path refuses rows that are already expired.
	used := newInvite("used@example.com", time.Now().Add(time.Hour))
	require.NoError(t, st.Invites().CreateInvite(ctx, used))
	require.NoError(t, st.Invites().ConsumeInvite(ctx, used.Token, "someone"))
	_, err := st.db.ExecContext(ctx,
		`UPDATE invites SET expires_at = ? WHERE token = ?`,
		time.Now().UTC().Add(-time.Hour), used.Token)
	require.NoError(t, err)

	require.NoError(t, st.Invites().DeleteExpiredInvites(ctx, ""))

	_, err = st.Invites().GetUnusedInviteByToken(ctx, expired.Token)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Invites().GetUnusedInviteByToken(ctx, live.Token)
	require.NoError(t, err)

	// The consumed-and-expired row survived as the audit trail.
	var count int
	require.NoError(t, st.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invites WHERE token = ?`, used.Token).Scan(&count))
	require.Equal(t, 1, count)
}

func TestIdentitiesUniqueEmail(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	ident := domain.Identity{
		ID:           idx.New().String(),
		Email:        "dup@example.com",
		PasswordHash: "hash",
		FullName:     "First",
	}
	require.NoError(t, st.Identities().CreateIdentity(ctx, ident))

	ident2 := ident
	ident2.ID = idx.New().String()
	err := st.Identities().CreateIdentity(ctx, ident2)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestIsEmpty(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	empty, err := st.Identities().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, st.Identities().CreateIdentity(ctx, domain.Identity{
		ID:           idx.New().String(),
		Email:        "a@example.com",
		PasswordHash: "hash",
	}))

	empty, err = st.Identities().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	sentinel := store.ErrNotFound
	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Identities().CreateIdentity(ctx, domain.Identity{
			ID:           idx.New().String(),
			Email:        "rollback@example.com",
			PasswordHash: "hash",
		}))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = st.Identities().GetIdentityByEmail(ctx, "rollback@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfileRequiresIdentity(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	// Foreign key enforcement: a profile cannot exist without its identity.
	err := st.Profiles().CreateProfile(ctx, domain.Profile{
		ID:       idx.New().String(),
		Email:    "ghost@example.com",
		Role:     domain.RoleClient,
		IsActive: true,
	})
	require.Error(t, err)
}
