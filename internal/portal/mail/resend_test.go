package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResendClientSend(t *testing.T) {
	msg := Message{
		To:      "invitee@example.com",
		Subject: "You're invited to join as Client",
		HTML:    "<p>hello</p>",
	}

	t.Run("delivers and returns the email id", func(t *testing.T) {
		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/emails", r.URL.Path)
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "em_abc123"})
		}))
		defer srv.Close()

		client := NewResendClient(srv.URL, "test-key", "Portal <no-reply@example.com>", 5*time.Second)

		id, err := client.Send(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, "em_abc123", id)

		require.Equal(t, "Portal <no-reply@example.com>", got.From)
		require.Equal(t, []string{"invitee@example.com"}, got.To)
		require.Equal(t, msg.Subject, got.Subject)
		require.Equal(t, msg.HTML, got.HTML)
	})

	t.Run("non-2xx maps to ErrDeliveryFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid to address"})
		}))
		defer srv.Close()

		client := NewResendClient(srv.URL, "test-key", "no-reply@example.com", 5*time.Second)

		_, err := client.Send(context.Background(), msg)
		require.ErrorIs(t, err, ErrDeliveryFailed)
		require.ErrorContains(t, err, "invalid to address")
	})

	t.Run("slow provider maps to ErrTimeout", func(t *testing.T) {
		block := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-block
		}))
		defer srv.Close()
		defer close(block)

		client := NewResendClient(srv.URL, "test-key", "no-reply@example.com", 50*time.Millisecond)

		_, err := client.Send(context.Background(), msg)
		require.ErrorIs(t, err, ErrTimeout)
	})
}

func TestRenderInvite(t *testing.T) {
	t.Run("includes link, role and inviter", func(t *testing.T) {
		subject, html, err := RenderInvite(InviteEmail{
			InviteLink:    "https://portal.example.com/create-account?token=abc",
			RoleLabel:     "Super Admin",
			InvitedByName: "Root",
		})
		require.NoError(t, err)
		require.Equal(t, "You're invited to join as Super Admin", subject)
		require.Contains(t, html, "https://portal.example.com/create-account?token=abc")
		require.Contains(t, html, "Super Admin")
		require.Contains(t, html, "Root has invited you")
	})

	t.Run("anonymous inviter", func(t *testing.T) {
		_, html, err := RenderInvite(InviteEmail{
			InviteLink: "https://x/create-account?token=t",
			RoleLabel:  "Client",
		})
		require.NoError(t, err)
		require.Contains(t, html, "You have been invited")
	})

	t.Run("escapes markup in names", func(t *testing.T) {
		_, html, err := RenderInvite(InviteEmail{
			InviteLink:    "https://x/create-account?token=t",
			RoleLabel:     "Client",
			InvitedByName: "<script>alert(1)</script>",
		})
		require.NoError(t, err)
		require.NotContains(t, html, "<script>")
	})
}
