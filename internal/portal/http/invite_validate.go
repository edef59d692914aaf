package http

import (
	"errors"
	"net/http"

	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/portalsdk"
	"github.com/agencyhq/portal/pkg/slogx"
)

type InviteValidateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invite Token
//	@Description	Check an invite token without consuming it. Backs the account creation page:
//	@Description	a valid token reveals the email and role the account will be created with.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	query		string							true	"Invite token"
//	@Success		200		{object}	portalsdk.InviteValidateResponse	"valid, email, role"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invites/validate [get].
func (h *InviteValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invite, err := h.InviteService.ValidateInvite(ctx, r.URL.Query().Get("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			portalsdk.ErrMissingToken.WriteError(w)
		case errors.Is(err, service.ErrInviteNotFound):
			portalsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInviteExpired):
			portalsdk.ErrExpiredToken.WriteError(w)
		default:
			log.Error("failed to validate invite", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalsdk.InviteValidateResponse{
		Valid: true,
		Email: invite.Email,
		Role:  invite.Role.String(),
	})
}
