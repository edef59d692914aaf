package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/idx"
	"github.com/agencyhq/portal/pkg/slogx"
)

var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrDuplicateActiveInvite = errors.New("an active invite already exists for this email")
	ErrMissingToken          = errors.New("missing invite token")
	ErrInviteNotFound        = errors.New("invalid or already used invite token")
	ErrInviteExpired         = errors.New("invite token has expired")
)

type InviteService struct {
	Store store.Store
}

// CreateInvite mints a single-use invite token for the given email and role.
// Only one unused invite may exist per email at a time; an unused invite that
// has already expired does not count and is swept before retrying.
func (s *InviteService) CreateInvite(
	ctx context.Context,
	email string,
	role domain.Role,
	invitedBy string,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. The operator identity must be known. Handlers resolve it from the
	// session token; a blank value means the call skipped authentication.
	if invitedBy == "" {
		return domain.Invite{}, ErrUnauthenticated
	}

	// 2. Normalize and validate inputs.
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invite{}, ErrInvalidEmail
	}
	if !role.IsValid() {
		log.Warn("attempted to create invite with invalid role",
			slog.String("role", role.String()),
		)
		return domain.Invite{}, ErrInvalidRole
	}

	// 3. Reject while an unexpired unused invite exists for this email.
	now := time.Now().UTC()
	if existing, err := s.Store.Invites().GetUnusedInviteByEmail(ctx, email); err == nil {
		if !existing.Expired(now) {
			log.Warn("duplicate invite attempt for email with active invite",
				slog.String("email", email),
			)
			return domain.Invite{}, ErrDuplicateActiveInvite
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	// 4. Generate the random token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	invite := domain.Invite{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: invitedBy,
		ExpiresAt: now.Add(domain.InviteTTL),
		Used:      false,
	}

	// 5. Insert. The unique index on unused emails closes the race with a
	// concurrent issuer; if we collide with an expired leftover row, sweep
	// it and retry once.
	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to create invite", slog.Any("error", err))
			return domain.Invite{}, err
		}

		existing, lookupErr := s.Store.Invites().GetUnusedInviteByEmail(ctx, email)
		if lookupErr == nil && !existing.Expired(now) {
			return domain.Invite{}, ErrDuplicateActiveInvite
		}

		if err := s.Store.Invites().DeleteExpiredInvites(ctx, email); err != nil {
			log.Error("failed to sweep expired invites", slog.Any("error", err))
			return domain.Invite{}, err
		}
		if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.Invite{}, ErrDuplicateActiveInvite
			}
			log.Error("failed to create invite", slog.Any("error", err))
			return domain.Invite{}, err
		}
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("email", email),
		slog.String("role", role.String()),
		slog.String("invited_by", invitedBy),
	)

	return invite, nil
}

// ValidateInvite resolves a token to its invite without consuming it. Checks
// run in a fixed order so callers can distinguish a missing token from an
// unknown one and an unknown one from an expired one.
func (s *InviteService) ValidateInvite(ctx context.Context, token string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. A blank token is a request shape problem, not a lookup miss.
	if strings.TrimSpace(token) == "" {
		return domain.Invite{}, ErrMissingToken
	}

	// 2. Look it up among unused invites. Consumed tokens fall out here and
	// are indistinguishable from tokens that never existed.
	invite, err := s.Store.Invites().GetUnusedInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	// 3. Expiry last, so a stale token reports expired rather than unknown.
	if invite.Expired(time.Now().UTC()) {
		return domain.Invite{}, ErrInviteExpired
	}

	return invite, nil
}

// SweepExpiredInvites removes unused invites past their expiry. Run
// periodically; consumed invites are kept for audit.
func (s *InviteService) SweepExpiredInvites(ctx context.Context) error {
	return s.Store.Invites().DeleteExpiredInvites(ctx, "")
}

// NormalizeEmail lowercases and trims an address so lookups and uniqueness
// checks agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
