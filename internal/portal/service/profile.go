package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/slogx"
)

var ErrSelfDeactivation = errors.New("cannot deactivate your own account")

// ProfileService covers the admin-facing profile operations.
type ProfileService struct {
	Store store.Store
}

// ListProfiles returns every profile, newest first.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfiles(ctx)
}

// SetProfileActive enables or disables an account. Disabling takes effect on
// the next authenticated request; already-issued tokens are not revoked.
// Operators cannot disable themselves, which keeps at least the acting super
// admin alive.
func (s *ProfileService) SetProfileActive(
	ctx context.Context,
	callerID string,
	profileID string,
	active bool,
) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if !active && callerID == profileID {
		return domain.Profile{}, ErrSelfDeactivation
	}

	if err := s.Store.Profiles().SetProfileActive(ctx, profileID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		log.Error("failed to update profile active state", slog.Any("error", err))
		return domain.Profile{}, err
	}

	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		return domain.Profile{}, err
	}

	log.Info("profile active state changed",
		slog.String("profile_id", profileID),
		slog.Bool("active", active),
		slog.String("changed_by", callerID),
	)

	return profile, nil
}
