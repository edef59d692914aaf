package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
)

func newAccountService(t *testing.T, st store.Store) *AccountService {
	t.Helper()
	return &AccountService{
		Store:    st,
		Invites:  &InviteService{Store: st},
		Sessions: newTestSessions(t, st),
	}
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions an account and signs it in", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		inv := seedInvite(t, st, "new@example.com", domain.RoleAdmin, time.Now().UTC().Add(time.Hour))

		session, err := svc.CreateAccount(ctx, inv.Token, "New Admin", "long-enough-pw")
		require.NoError(t, err)

		require.NotEmpty(t, session.AccessToken)
		require.Equal(t, "Bearer", session.TokenType)
		require.Equal(t, "new@example.com", session.Profile.Email)
		require.Equal(t, domain.RoleAdmin, session.Profile.Role)
		require.True(t, session.Profile.IsActive)

		// Exactly one profile exists afterwards.
		profiles, err := st.Profiles().ListProfiles(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 1)

		// The account can log in with the chosen password.
		_, err = svc.Sessions.Login(ctx, "new@example.com", "long-enough-pw")
		require.NoError(t, err)
	})

	t.Run("consumes the token exactly once", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		inv := seedInvite(t, st, "once@example.com", domain.RoleClient, time.Now().UTC().Add(time.Hour))

		_, err := svc.CreateAccount(ctx, inv.Token, "First", "long-enough-pw")
		require.NoError(t, err)

		// A consumed token is indistinguishable from an unknown one.
		_, err = svc.Invites.ValidateInvite(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteNotFound)

		_, err = svc.CreateAccount(ctx, inv.Token, "Second", "long-enough-pw")
		require.ErrorIs(t, err, ErrInviteNotFound)

		profiles, err := st.Profiles().ListProfiles(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
	})

	t.Run("rejects short passwords before touching the invite", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		inv := seedInvite(t, st, "pw@example.com", domain.RoleClient, time.Now().UTC().Add(time.Hour))

		_, err := svc.CreateAccount(ctx, inv.Token, "Short", "seven77")
		require.ErrorIs(t, err, ErrWeakPassword)

		// Invite still redeemable.
		_, err = svc.Invites.ValidateInvite(ctx, inv.Token)
		require.NoError(t, err)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		inv := seedInvite(t, st, "late@example.com", domain.RoleClient, time.Now().UTC().Add(-time.Minute))

		_, err := svc.CreateAccount(ctx, inv.Token, "Late", "long-enough-pw")
		require.ErrorIs(t, err, ErrInviteExpired)
	})

	t.Run("rejects already registered emails without burning the token", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		seedProfile(t, st, "taken@example.com", domain.RoleClient, true)
		inv := seedInvite(t, st, "taken@example.com", domain.RoleClient, time.Now().UTC().Add(time.Hour))

		_, err := svc.CreateAccount(ctx, inv.Token, "Dupe", "long-enough-pw")
		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)

		// The transaction rolled back; the invite survived.
		_, err = svc.Invites.ValidateInvite(ctx, inv.Token)
		require.NoError(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAccountService(t, st)

		_, err := svc.CreateAccount(ctx, "", "Nobody", "long-enough-pw")
		require.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("profile creation failure rolls everything back", func(t *testing.T) {
		st := newTestStore(t)
		failing := &profileFailStore{Store: st}
		svc := &AccountService{
			Store:    failing,
			Invites:  &InviteService{Store: st},
			Sessions: newTestSessions(t, st),
		}

		inv := seedInvite(t, st, "half@example.com", domain.RoleClient, time.Now().UTC().Add(time.Hour))

		_, err := svc.CreateAccount(ctx, inv.Token, "Half Done", "long-enough-pw")
		require.ErrorIs(t, err, ErrProvisioningFailed)

		// Nothing committed: no identity, and the invite is still open.
		_, err = st.Identities().GetIdentityByEmail(ctx, "half@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = svc.Invites.ValidateInvite(ctx, inv.Token)
		require.NoError(t, err)
	})
}

// profileFailStore wraps a real store but makes every in-transaction
// profile insert fail, simulating a provisioning fault mid-transaction.
type profileFailStore struct {
	store.Store
}

func (s *profileFailStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&profileFailTx{storeTx: tx})
	})
}

// storeTx aliases store.Tx so it can be embedded without the field name
// colliding with the interface's Tx method.
type storeTx = store.Tx

type profileFailTx struct {
	storeTx
}

func (t *profileFailTx) Profiles() store.Profiles {
	return &profileFailRepo{Profiles: t.storeTx.Profiles()}
}

type profileFailRepo struct {
	store.Profiles
}

func (r *profileFailRepo) CreateProfile(context.Context, domain.Profile) error {
	return errors.New("profiles table unavailable")
}
