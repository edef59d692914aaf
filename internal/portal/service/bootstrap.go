package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
	"github.com/agencyhq/portal/pkg/slogx"
)

var (
	ErrBootstrapDisabled  = errors.New("bootstrap is not configured")
	ErrBootstrapForbidden = errors.New("invalid bootstrap token")
	ErrBootstrapDone      = errors.New("bootstrap already completed")
)

// BootstrapService provisions the very first super admin. Every later
// account enters through the invite flow; this exists only because that
// flow needs a super admin to start from.
type BootstrapService struct {
	Store store.Store
	// Token comes from BOOTSTRAP_TOKEN. Empty disables the endpoint.
	Token string
}

func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	fullName string,
	password string,
) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	// 1. Gate on configuration and the shared secret.
	if s.Token == "" {
		return domain.Profile{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("bootstrap attempt with invalid token")
		return domain.Profile{}, ErrBootstrapForbidden
	}

	// 2. Validate inputs.
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Profile{}, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return domain.Profile{}, ErrWeakPassword
	}

	// 3. Refuse once any identity exists.
	empty, err := s.Store.Identities().IsEmpty(ctx)
	if err != nil {
		log.Error("failed to check for existing identities", slog.Any("error", err))
		return domain.Profile{}, err
	}
	if !empty {
		return domain.Profile{}, ErrBootstrapDone
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Profile{}, err
	}

	identity := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}

	var profile domain.Profile
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The emptiness check re-runs inside the transaction so two racing
		// bootstrap calls cannot both succeed.
		empty, err := tx.Identities().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapDone
		}

		if err := tx.Identities().CreateIdentity(ctx, identity); err != nil {
			return err
		}
		if err := tx.Profiles().CreateProfile(ctx, domain.Profile{
			ID:       identity.ID,
			Email:    identity.Email,
			FullName: identity.FullName,
			Role:     domain.RoleSuperAdmin,
			IsActive: true,
		}); err != nil {
			return err
		}

		profile, err = tx.Profiles().GetProfileByID(ctx, identity.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapDone) {
			return domain.Profile{}, err
		}
		log.Error("bootstrap failed", slog.Any("error", err))
		return domain.Profile{}, err
	}

	log.Info("bootstrap super admin created",
		slog.String("profile_id", profile.ID),
		slog.String("email", profile.Email),
	)

	return profile, nil
}
