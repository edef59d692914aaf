package store

import (
	"context"
	"errors"

	"github.com/agencyhq/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the surface per-table and let the
// same code run inside and outside transactions.
type Store interface {
	Identities() Identities
	Profiles() Profiles
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	// GetIdentityByID returns an identity by id.
	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)

	// GetIdentityByEmail is used during login.
	GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)

	// CreateIdentity inserts a new identity (id is a ULID provided by the
	// app). A unique violation on email maps to ErrAlreadyExists.
	CreateIdentity(ctx context.Context, ident domain.Identity) error

	// IsEmpty reports whether no identities exist (bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

type Profiles interface {
	// GetProfileByID returns the profile keyed by its identity id.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// CreateProfile inserts a profile row 1:1 with an identity.
	CreateProfile(ctx context.Context, p domain.Profile) error

	// ListProfiles returns all profiles, newest first.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// SetProfileActive flips is_active and bumps updated_at.
	SetProfileActive(ctx context.Context, id string, active bool) error
}

type Invites interface {
	// CreateInvite writes a new invite. The schema enforces token
	// uniqueness and a partial unique index on email over unused rows; a
	// violation of either maps to ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetUnusedInviteByToken returns the invite matching token AND
	// used = false, regardless of expiry. Expiry is the caller's time
	// comparison, so "expired" stays distinguishable from "not found".
	GetUnusedInviteByToken(ctx context.Context, token string) (domain.Invite, error)

	// GetUnusedInviteByEmail returns the unused invite for an email, if any.
	GetUnusedInviteByEmail(ctx context.Context, email string) (domain.Invite, error)

	// ConsumeInvite atomically sets used = true for an invite that is still
	// unused and unexpired (compare-and-set on the token). Returns
	// ErrNotFound when no row transitioned, i.e. the token is unknown,
	// already consumed or past its expiry.
	ConsumeInvite(ctx context.Context, token string, usedBy string) error

	// DeleteExpiredInvites removes unused invites past their expiry for one
	// email, or for all emails when email is empty. Issuance-path and
	// housekeeping use only; the validation path never deletes.
	DeleteExpiredInvites(ctx context.Context, email string) error
}
