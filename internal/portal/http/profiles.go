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

type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

// HandleList godoc
//
//	@Summary		List Profiles
//	@Description	List every profile, newest first. Super admin and admin only.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.ProfilesListResponse	"profiles"
//	@Failure		401	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profiles, err := h.ProfileService.ListProfiles(ctx)
	if err != nil {
		log.Error("failed to list profiles", "err", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	response := portalsdk.ProfilesListResponse{
		Profiles: make([]portalsdk.ProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		response.Profiles = append(response.Profiles, profileResponse(p))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleSetActive godoc
//
//	@Summary		Enable or Disable Profile
//	@Description	Flip a profile's active flag. Super admin only. Disabling takes effect on the
//	@Description	target's next authenticated request; operators cannot disable themselves.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Profile ID"
//	@Param			request	body		portalsdk.ProfileActiveRequest	true	"Active flag"
//	@Success		200		{object}	portalsdk.ProfileResponse		"updated profile"
//	@Failure		400		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/profiles/{id}/active [put].
func (h *ProfilesHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.ProfileActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		portalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID, _ := ctx.Value(httpx.CtxKeyUserID).(string)

	profile, err := h.ProfileService.SetProfileActive(ctx, userID, r.PathValue("id"), req.Active)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDeactivation):
			(&portalsdk.APIError{
				StatusCode:  http.StatusBadRequest,
				Code:        portalsdk.ErrorCodeInvalidRequest,
				Description: service.ErrSelfDeactivation.Error(),
			}).WriteError(w)
		case errors.Is(err, service.ErrProfileNotFound):
			portalsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to update profile", "err", err)
			portalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse(profile))
}
