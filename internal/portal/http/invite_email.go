package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/mail"
	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/jwtx"
	"github.com/agencyhq/portal/pkg/portalsdk"
	"github.com/agencyhq/portal/pkg/slogx"
)

type InviteEmailHandler struct {
	NotifyService *service.NotifyService

	// Verifier is used directly instead of the authn middleware: this
	// endpoint answers every gate failure, bearer problems included, with
	// the same 400 {success:false, error:"Unauthorized"} body.
	Verifier *jwtx.Verifier
}

// ServeHTTP godoc
//
//	@Summary		Send Invite Email
//	@Description	Deliver an invite link to its recipient by email. Super admin only; the
//	@Description	caller's role is re-checked against storage on every call. Answers 200 or
//	@Description	400 with the outcome in the body, never other statuses.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InviteEmailRequest	true	"Invite email request"
//	@Success		200		{object}	portalsdk.InviteEmailResponse	"success, message, emailId"
//	@Failure		400		{object}	portalsdk.InviteEmailResponse	"success, error"
//	@Security		BearerAuth
//	@Router			/v1/invites/email [post].
func (h *InviteEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// The gate runs before the body is even read. A missing bearer, a
	// garbage bearer and a wrong-role caller all produce the same response.
	userID := h.callerID(r)
	if userID == "" {
		writeInviteEmailError(w, "Unauthorized")
		return
	}

	var req portalsdk.InviteEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInviteEmailError(w, "Invalid request body")
		return
	}

	emailID, err := h.NotifyService.SendInviteEmail(ctx, userID, service.InviteNotification{
		Email:         req.Email,
		Role:          domain.Role(req.Role),
		InviteLink:    req.InviteLink,
		InvitedByName: req.InvitedByName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotifyUnauthorized):
			writeInviteEmailError(w, "Unauthorized")
		case errors.Is(err, service.ErrNotifyInvalid):
			writeInviteEmailError(w, "Missing or invalid fields")
		case errors.Is(err, mail.ErrTimeout):
			writeInviteEmailError(w, "Email provider timed out")
		case errors.Is(err, mail.ErrDeliveryFailed):
			writeInviteEmailError(w, "Failed to send invite email")
		default:
			log.Error("invite email failed", "err", err)
			writeInviteEmailError(w, "Failed to send invite email")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.InviteEmailResponse{
		Success: true,
		Message: "Invite email sent",
		EmailID: emailID,
	})
}

// callerID resolves the bearer token to a subject, or "" when the header is
// absent or the token does not verify.
func (h *InviteEmailHandler) callerID(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	claims, err := h.Verifier.Verify(strings.TrimSpace(strings.TrimPrefix(authz, "Bearer")))
	if err != nil {
		return ""
	}
	return claims.Subject
}

func writeInviteEmailError(w http.ResponseWriter, msg string) {
	httpx.WriteJSON(w, http.StatusBadRequest, portalsdk.InviteEmailResponse{
		Success: false,
		Error:   msg,
	})
}
