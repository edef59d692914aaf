package http

import (
	"time"

	"github.com/agencyhq/portal/internal/portal/domain"
	"github.com/agencyhq/portal/pkg/portalsdk"
)

func profileResponse(p domain.Profile) portalsdk.ProfileResponse {
	return portalsdk.ProfileResponse{
		ID:            p.ID,
		Email:         p.Email,
		FullName:      p.FullName,
		Role:          p.Role.String(),
		IsActive:      p.IsActive,
		DashboardPath: p.Role.DashboardPath(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func sessionResponse(s domain.Session) portalsdk.SessionResponse {
	return portalsdk.SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresIn:   int(time.Until(s.ExpiresAt).Seconds()),
		Profile:     profileResponse(s.Profile),
	}
}
