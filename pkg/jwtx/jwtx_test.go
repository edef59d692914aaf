package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := NewSigner(KeyID(key), key)
	require.NoError(t, err)
	return signer
}

func TestSignAndVerify(t *testing.T) {
	signer := newTestSigner(t)
	verifier := signer.Verifier("portal-test")

	claims := NewSessionClaims(
		"user-1", "alice@example.com", "super_admin", "Alice",
		"portal-test", time.Hour, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "super_admin", got.Role)
	require.Equal(t, "Alice", got.FullName)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := newTestSigner(t)

	claims := NewSessionClaims("u", "a@b.com", "client", "", "other-issuer", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier("portal-test").Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := newTestSigner(t)

	claims := NewSessionClaims("u", "a@b.com", "client", "", "portal-test", time.Minute, time.Now().UTC().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier("portal-test").Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	signer := newTestSigner(t)
	other := newTestSigner(t)

	claims := NewSessionClaims("u", "a@b.com", "client", "", "portal-test", time.Hour, time.Now().UTC())
	token, err := other.Sign(claims)
	require.NoError(t, err)

	// Different kid, different key: both checks fail.
	_, err = signer.Verifier("portal-test").Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := newTestSigner(t).Verifier("portal-test")

	for _, bad := range []string{"", "not.a.jwt", "a.b"} {
		_, err := verifier.Verify(bad)
		require.Error(t, err)
	}
}

func TestLoadOrGenerateKey(t *testing.T) {
	t.Run("empty path yields ephemeral key", func(t *testing.T) {
		k1, err := LoadOrGenerateKey("")
		require.NoError(t, err)
		k2, err := LoadOrGenerateKey("")
		require.NoError(t, err)
		require.NotEqual(t, k1, k2)
	})

	t.Run("persists and reloads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keys", "session.pem")

		k1, err := LoadOrGenerateKey(path)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())

		k2, err := LoadOrGenerateKey(path)
		require.NoError(t, err)
		require.Equal(t, k1, k2, "same file, same key")
		require.Equal(t, KeyID(k1), KeyID(k2))
	})
}
