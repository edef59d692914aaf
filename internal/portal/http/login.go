package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/portalsdk"
	"github.com/agencyhq/portal/pkg/slogx"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Authenticate with email and password. Disabled accounts are rejected even
//	@Description	with correct credentials.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	portalsdk.SessionResponse	"access_token, token_type, expires_in, profile"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	session, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			portalsdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrAccountDisabled):
			portalsdk.ErrAccountDisabled.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(session))
}
