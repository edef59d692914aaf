package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
	"github.com/agencyhq/portal/pkg/slogx"
)

// MinPasswordLength is the shortest password accepted at account creation.
const MinPasswordLength = 8

var (
	ErrWeakPassword           = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyRegistered = errors.New("an account already exists for this email")
	ErrProvisioningFailed     = errors.New("account created but profile provisioning failed")
)

type AccountService struct {
	Store    store.Store
	Invites  *InviteService
	Sessions *SessionService
}

// CreateAccount redeems an invite token into a working account. Identity,
// profile and invite consumption commit in one transaction: a token is never
// burned for an account that did not fully materialize, and an account never
// exists with its invite still open.
func (s *AccountService) CreateAccount(
	ctx context.Context,
	token string,
	fullName string,
	password string,
) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Password policy first: no point touching the invite for a request
	// that can never succeed.
	if len(password) < MinPasswordLength {
		return domain.Session{}, ErrWeakPassword
	}

	// 2. Resolve the invite. Same ordered checks as the public validation
	// endpoint, so both paths report identically for the same token.
	invite, err := s.Invites.ValidateInvite(ctx, token)
	if err != nil {
		return domain.Session{}, err
	}

	// 3. Hash outside the transaction; argon2 is deliberately slow.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Session{}, err
	}

	identity := domain.Identity{
		ID:           idx.New().String(),
		Email:        invite.Email,
		PasswordHash: hash,
		FullName:     fullName,
	}

	var profile domain.Profile
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 4. Identity row. The unique email constraint catches an account
		// that already exists for this address.
		if err := tx.Identities().CreateIdentity(ctx, identity); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailAlreadyRegistered
			}
			return err
		}

		// 5. Profile row, 1:1 with the identity, active from the start with
		// the role the invite granted.
		if err := tx.Profiles().CreateProfile(ctx, domain.Profile{
			ID:       identity.ID,
			Email:    identity.Email,
			FullName: identity.FullName,
			Role:     invite.Role,
			IsActive: true,
		}); err != nil {
			return fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}

		// 6. Read the profile back so the session reflects what was stored,
		// not what we intended to store.
		var err error
		profile, err = tx.Profiles().GetProfileByID(ctx, identity.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrProvisioningFailed, err)
		}

		// 7. Burn the token last. The compare-and-set loses to a concurrent
		// redeemer, or to the invite expiring since validation; either way
		// the whole transaction unwinds.
		if err := tx.Invites().ConsumeInvite(ctx, invite.Token, identity.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) || errors.Is(err, ErrInviteNotFound) {
			log.Warn("account creation rejected",
				slog.String("email", invite.Email),
				slog.Any("reason", err),
			)
		} else {
			log.Error("account creation failed",
				slog.String("email", invite.Email),
				slog.Any("error", err),
			)
		}
		return domain.Session{}, err
	}

	log.Info("account provisioned",
		slog.String("profile_id", profile.ID),
		slog.String("email", profile.Email),
		slog.String("role", profile.Role.String()),
	)

	// 8. Sign the user straight in.
	return s.Sessions.IssueSession(ctx, profile)
}
