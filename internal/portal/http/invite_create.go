package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/jwtx"
	"github.com/agencyhq/portal/pkg/portalsdk"
	"github.com/agencyhq/portal/pkg/slogx"
)

type InviteCreateHandler struct {
	InviteService *service.InviteService
	NotifyService *service.NotifyService

	// Origin is the frontend base URL invite links point at.
	Origin string
}

// ServeHTTP godoc
//
//	@Summary		Create Invite
//	@Description	Mint a single-use invite token for a new user. Super admin only. The invite
//	@Description	email is dispatched as part of the request; a delivery failure does not void
//	@Description	the invite and is reported through the email_sent flag.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InviteCreateRequest	true	"Invite request"
//	@Success		201		{object}	portalsdk.InviteCreateResponse	"token, invite_link, expires_at, email_sent"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.InviteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		portalsdk.ErrUnauthorized.WriteError(w)
		return
	}

	invite, err := h.InviteService.CreateInvite(ctx, req.Email, domain.Role(req.Role), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			portalsdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrInvalidRole):
			portalsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrDuplicateActiveInvite):
			portalsdk.ErrDuplicateInvite.WriteError(w)
		default:
			log.Error("failed to create invite", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := portalsdk.InviteCreateResponse{
		ID:         invite.ID,
		Email:      invite.Email,
		Role:       invite.Role.String(),
		Token:      invite.Token,
		InviteLink: invite.Link(h.Origin),
		ExpiresAt:  invite.ExpiresAt,
	}

	// Dispatch the invite email. The invite already exists at this point;
	// delivery problems only flip the email_sent flag.
	invitedByName := ""
	if claims, ok := ctx.Value(httpx.CtxKeyClaims).(jwtx.Claims); ok {
		invitedByName = claims.FullName
	}
	emailID, err := h.NotifyService.SendInviteEmail(ctx, userID, service.InviteNotification{
		Email:         invite.Email,
		Role:          invite.Role,
		InviteLink:    response.InviteLink,
		InvitedByName: invitedByName,
	})
	if err != nil {
		log.Warn("invite created but email dispatch failed",
			"invite_id", invite.ID,
			"err", err,
		)
	} else {
		response.EmailSent = true
		response.EmailID = emailID
	}

	httpx.WriteJSON(w, http.StatusCreated, response)
}
