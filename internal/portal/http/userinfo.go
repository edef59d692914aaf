package http

import (
	"errors"
	"net/http"

	"github.com/agencyhq/portal/internal/portal/service"
	"github.com/agencyhq/portal/pkg/httpx"
	"github.com/agencyhq/portal/pkg/portalsdk"
	"github.com/agencyhq/portal/pkg/slogx"
)

type UserinfoHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Get Current Profile
//	@Description	Returns the authenticated user's profile, including the dashboard path for
//	@Description	their role.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.ProfileResponse	"id, email, full_name, role, is_active, dashboard_path"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/userinfo [get].
func (h *UserinfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		portalsdk.ErrUnauthorized.WriteError(w)
		return
	}

	profile, err := h.SessionService.Userinfo(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			portalsdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("failed to load profile", "user_id", userID, "err", err)
		portalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, profileResponse(profile))
}
