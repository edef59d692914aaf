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

type AccountCreateHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Create Account
//	@Description	Redeem an invite token into a new account. The email and role come from the
//	@Description	invite, never from the request. On success the token is consumed and the new
//	@Description	account is signed in.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.AccountCreateRequest	true	"Account creation request"
//	@Success		201		{object}	portalsdk.SessionResponse		"access_token, token_type, expires_in, profile"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/accounts [post].
func (h *AccountCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.AccountCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// Request-shape checks live at the boundary; the service only ever
	// sees a single password that already met the policy.
	if req.Password != req.ConfirmPassword {
		(&portalsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        portalsdk.ErrorCodeInvalidRequest,
			Description: "passwords do not match",
		}).WriteError(w)
		return
	}
	if len(req.Password) < service.MinPasswordLength {
		(&portalsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        portalsdk.ErrorCodeInvalidRequest,
			Description: service.ErrWeakPassword.Error(),
		}).WriteError(w)
		return
	}

	session, err := h.AccountService.CreateAccount(ctx, req.Token, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			(&portalsdk.APIError{
				StatusCode:  http.StatusBadRequest,
				Code:        portalsdk.ErrorCodeInvalidRequest,
				Description: service.ErrWeakPassword.Error(),
			}).WriteError(w)
		case errors.Is(err, service.ErrMissingToken):
			portalsdk.ErrMissingToken.WriteError(w)
		case errors.Is(err, service.ErrInviteNotFound):
			portalsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInviteExpired):
			portalsdk.ErrExpiredToken.WriteError(w)
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			portalsdk.ErrEmailRegistered.WriteError(w)
		case errors.Is(err, service.ErrProvisioningFailed):
			log.Error("profile provisioning failed", "err", err)
			portalsdk.ErrProvisioningFailed.WriteError(w)
		default:
			log.Error("failed to create account", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, sessionResponse(session))
}
