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

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap First Super Admin
//	@Description	Create the first super admin on an empty deployment. Requires the configured
//	@Description	bootstrap token; refused once any account exists. When no token is configured
//	@Description	the endpoint reports not found.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	portalsdk.ProfileResponse	"created super admin profile"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	profile, err := h.BootstrapService.Bootstrap(ctx, req.Token, req.Email, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			portalsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrBootstrapForbidden):
			portalsdk.ErrForbidden.WriteError(w)
		case errors.Is(err, service.ErrBootstrapDone):
			(&portalsdk.APIError{
				StatusCode:  http.StatusConflict,
				Code:        portalsdk.ErrorCodeInvalidRequest,
				Description: "bootstrap already completed",
			}).WriteError(w)
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrWeakPassword):
			(&portalsdk.APIError{
				StatusCode:  http.StatusBadRequest,
				Code:        portalsdk.ErrorCodeInvalidRequest,
				Description: err.Error(),
			}).WriteError(w)
		default:
			log.Error("bootstrap failed", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, profileResponse(profile))
}
