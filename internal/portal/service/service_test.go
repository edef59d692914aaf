package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/internal/portal/store/drivers/sqlite"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
	"github.com/agencyhq/portal/pkg/jwtx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "portal-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSessions(t *testing.T, st store.Store) *SessionService {
	t.Helper()

	key, err := jwtx.LoadOrGenerateKey("")
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(jwtx.KeyID(key), key)
	require.NoError(t, err)

	return &SessionService{
		Store:  st,
		Signer: signer,
		Issuer: "portal-test",
	}
}

// seedProfile inserts an identity plus profile directly and returns the
// profile. The password for every seeded account is "sw0rdfish-51".
func seedProfile(t *testing.T, st store.Store, email string, role domain.Role, active bool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	hash, err := cryptox.HashPassword("sw0rdfish-51")
	require.NoError(t, err)

	id := idx.New().String()
	require.NoError(t, st.Identities().CreateIdentity(ctx, domain.Identity{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		FullName:     "Seeded User",
	}))
	require.NoError(t, st.Profiles().CreateProfile(ctx, domain.Profile{
		ID:       id,
		Email:    email,
		FullName: "Seeded User",
		Role:     role,
		IsActive: active,
	}))

	profile, err := st.Profiles().GetProfileByID(ctx, id)
	require.NoError(t, err)
	return profile
}

// seedInvite inserts an invite row directly, bypassing the issuance path, so
// tests can control expiry.
func seedInvite(t *testing.T, st store.Store, email string, role domain.Role, expiresAt time.Time) domain.Invite {
	t.Helper()
	ctx := context.Background()

	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	require.NoError(t, err)

	inv := domain.Invite{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: idx.New().String(),
		ExpiresAt: expiresAt,
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))
	return inv
}
