package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/cryptox"
	"github.com/agencyhq/portal/pkg/jwtx"
	"github.com/agencyhq/portal/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrProfileNotFound    = errors.New("profile not found")
)

type SessionService struct {
	Store  store.Store
	Signer *jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// Login verifies credentials and issues a session for an active profile.
// Unknown emails and wrong passwords report the same error.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	email = NormalizeEmail(email)

	// 1. Resolve the identity. A miss still burns a hash verification so
	// timing does not reveal whether the email exists.
	identity, err := s.Store.Identities().GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash())
			return domain.Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch identity", slog.Any("error", err))
		return domain.Session{}, err
	}

	// 2. Check the password.
	if err := cryptox.VerifyPassword(password, identity.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt", slog.String("email", email))
			return domain.Session{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.Session{}, err
	}

	// 3. The profile carries role and active state.
	profile, err := s.Store.Profiles().GetProfileByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("identity has no profile", slog.String("identity_id", identity.ID))
			return domain.Session{}, ErrProfileNotFound
		}
		log.Error("failed to fetch profile", slog.Any("error", err))
		return domain.Session{}, err
	}
	if !profile.IsActive {
		log.Warn("login attempt for disabled account", slog.String("email", email))
		return domain.Session{}, ErrAccountDisabled
	}

	return s.IssueSession(ctx, profile)
}

// IssueSession signs a session token for an already verified profile.
func (s *SessionService) IssueSession(ctx context.Context, profile domain.Profile) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(
		profile.ID,
		profile.Email,
		profile.Role.String(),
		profile.FullName,
		s.Issuer,
		s.ttl(),
		now,
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Session{}, err
	}

	log.Info("session issued",
		slog.String("profile_id", profile.ID),
		slog.String("role", profile.Role.String()),
	)

	return domain.Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   now.Add(s.ttl()),
		Profile:     profile,
	}, nil
}

// Userinfo returns the current profile for an authenticated subject.
func (s *SessionService) Userinfo(ctx context.Context, profileID string) (domain.Profile, error) {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}
