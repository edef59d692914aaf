package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/internal/portal/store/drivers/sqlite"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
	"github.com/agencyhq/portal/pkg/jwtx"
	"github.com/agencyhq/portal/pkg/portalsdk"
)

// brokenProfilesStore makes every in-transaction profile insert fail so the
// handler's fatal provisioning path can be driven end to end.
type brokenProfilesStore struct {
	store.Store
}

func (s *brokenProfilesStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&brokenProfilesTx{storeTx: tx})
	})
}

// storeTx aliases store.Tx so it can be embedded without the field name
// colliding with the interface's Tx method.
type storeTx = store.Tx

type brokenProfilesTx struct {
	storeTx
}

func (t *brokenProfilesTx) Profiles() store.Profiles {
	return &brokenProfilesRepo{Profiles: t.storeTx.Profiles()}
}

type brokenProfilesRepo struct {
	store.Profiles
}

func (r *brokenProfilesRepo) CreateProfile(context.Context, domain.Profile) error {
	return errors.New("profiles table unavailable")
}

func TestAccountCreateProvisioningFailure(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	key, err := jwtx.LoadOrGenerateKey("")
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(jwtx.KeyID(key), key)
	require.NoError(t, err)

	invites := &service.InviteService{Store: st}
	handler := &AccountCreateHandler{
		AccountService: &service.AccountService{
			Store:    &brokenProfilesStore{Store: st},
			Invites:  invites,
			Sessions: &service.SessionService{Store: st, Signer: signer, Issuer: "portal-test"},
		},
	}

	inv := domain.Invite{
		ID:        idx.New().String(),
		Email:     "doomed@example.com",
		Role:      domain.RoleClient,
		Token:     cryptox.MustGenerateToken(cryptox.TokenSize128),
		InvitedBy: idx.New().String(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, st.Invites().CreateInvite(context.Background(), inv))

	body, err := json.Marshal(portalsdk.AccountCreateRequest{
		Token:           inv.Token,
		FullName:        "Doomed",
		Password:        "long-enough-pw",
		ConfirmPassword: "long-enough-pw",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/v1/accounts", bytes.NewReader(body))
	handler.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusInternalServerError, rec.Code)

	var got portalsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, portalsdk.ErrorCodeProvisioningError, got.Error)
	require.Contains(t, got.ErrorDescription, "contact support")

	// The transaction rolled back, so the invite stays redeemable.
	_, err = invites.ValidateInvite(context.Background(), inv.Token)
	require.NoError(t, err)
}
