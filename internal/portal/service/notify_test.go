package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/mail"
)

// fakeSender records sends instead of talking to a provider.
type fakeSender struct {
	calls []mail.Message
	err   error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) (string, error) {
	f.calls = append(f.calls, msg)
	if f.err != nil {
		return "", f.err
	}
	return "em_test_123", nil
}

func TestSendInviteEmail(t *testing.T) {
	ctx := context.Background()

	validReq := InviteNotification{
		Email:      "invitee@example.com",
		Role:       domain.RoleClient,
		InviteLink: "https://portal.example.com/create-account?token=abc",
	}

	t.Run("super admin can send", func(t *testing.T) {
		st := newTestStore(t)
		sender := &fakeSender{}
		svc := &NotifyService{Store: st, Sender: sender}

		caller := seedProfile(t, st, "root@example.com", domain.RoleSuperAdmin, true)

		req := validReq
		req.InvitedByName = "Root Admin"
		emailID, err := svc.SendInviteEmail(ctx, caller.ID, req)
		require.NoError(t, err)
		require.Equal(t, "em_test_123", emailID)

		require.Len(t, sender.calls, 1)
		sent := sender.calls[0]
		require.Equal(t, "invitee@example.com", sent.To)
		require.Contains(t, sent.Subject, "Client")
		require.Contains(t, sent.HTML, validReq.InviteLink)
		require.Contains(t, sent.HTML, "Root Admin")
	})

	t.Run("no provider call for rejected callers", func(t *testing.T) {
		st := newTestStore(t)
		sender := &fakeSender{}
		svc := &NotifyService{Store: st, Sender: sender}

		admin := seedProfile(t, st, "admin@example.com", domain.RoleAdmin, true)
		disabled := seedProfile(t, st, "ex-root@example.com", domain.RoleSuperAdmin, false)

		for _, callerID := range []string{"", "unknown-id", admin.ID, disabled.ID} {
			_, err := svc.SendInviteEmail(ctx, callerID, validReq)
			require.ErrorIs(t, err, ErrNotifyUnauthorized)
		}

		require.Empty(t, sender.calls)
	})

	t.Run("rejects incomplete requests", func(t *testing.T) {
		st := newTestStore(t)
		sender := &fakeSender{}
		svc := &NotifyService{Store: st, Sender: sender}

		caller := seedProfile(t, st, "root@example.com", domain.RoleSuperAdmin, true)

		bad := []InviteNotification{
			{Role: domain.RoleClient, InviteLink: "https://x"},
			{Email: "a@b.com", Role: domain.Role("owner"), InviteLink: "https://x"},
			{Email: "a@b.com", Role: domain.RoleClient},
		}
		for _, req := range bad {
			_, err := svc.SendInviteEmail(ctx, caller.ID, req)
			require.ErrorIs(t, err, ErrNotifyInvalid)
		}
		require.Empty(t, sender.calls)
	})

	t.Run("provider failures pass through", func(t *testing.T) {
		st := newTestStore(t)
		sender := &fakeSender{err: mail.ErrDeliveryFailed}
		svc := &NotifyService{Store: st, Sender: sender}

		caller := seedProfile(t, st, "root@example.com", domain.RoleSuperAdmin, true)

		_, err := svc.SendInviteEmail(ctx, caller.ID, validReq)
		require.ErrorIs(t, err, mail.ErrDeliveryFailed)
	})
}
