package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/mail"
	"github.com/agencyhq/portal/internal/portal/store"
	"github.com/agencyhq/portal/pkg/slogx"
)

var (
	// ErrNotifyUnauthorized covers every authorization failure on the email
	// path: missing caller, unknown caller, wrong role, disabled account.
	// Callers cannot tell these apart.
	ErrNotifyUnauthorized = errors.New("unauthorized")

	ErrNotifyInvalid = errors.New("invalid notification request")
)

// InviteNotification is a request to email an invite link to its recipient.
type InviteNotification struct {
	Email         string
	Role          domain.Role
	InviteLink    string
	InvitedByName string
}

type NotifyService struct {
	Store  store.Store
	Sender mail.Sender
}

// SendInviteEmail delivers an invite link to the recipient. The caller's
// profile is re-resolved from storage on every call; the session token alone
// is not trusted for this decision.
func (s *NotifyService) SendInviteEmail(
	ctx context.Context,
	callerID string,
	req InviteNotification,
) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize before touching the provider. No provider call may happen
	// for a rejected caller.
	if callerID == "" {
		return "", ErrNotifyUnauthorized
	}
	caller, err := s.Store.Profiles().GetProfileByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotifyUnauthorized
		}
		log.Error("failed to resolve caller profile", slog.Any("error", err))
		return "", err
	}
	if !caller.HasRole(domain.RoleSuperAdmin) {
		log.Warn("invite email rejected for non-super-admin caller",
			slog.String("caller_id", callerID),
		)
		return "", ErrNotifyUnauthorized
	}

	// 2. Validate the payload.
	req.Email = NormalizeEmail(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return "", ErrNotifyInvalid
	}
	if !req.Role.IsValid() {
		return "", ErrNotifyInvalid
	}
	if strings.TrimSpace(req.InviteLink) == "" {
		return "", ErrNotifyInvalid
	}

	// 3. Render and send.
	subject, html, err := mail.RenderInvite(mail.InviteEmail{
		InviteLink:    req.InviteLink,
		RoleLabel:     req.Role.Label(),
		InvitedByName: req.InvitedByName,
	})
	if err != nil {
		log.Error("failed to render invite email", slog.Any("error", err))
		return "", err
	}

	emailID, err := s.Sender.Send(ctx, mail.Message{
		To:      req.Email,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.Error("invite email delivery failed",
			slog.String("email", req.Email),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("invite email sent",
		slog.String("email", req.Email),
		slog.String("email_id", emailID),
		slog.String("sent_by", callerID),
	)

	return emailID, nil
}
