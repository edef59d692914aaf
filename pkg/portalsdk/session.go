package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated view of the API, bound to one access token.
// Tokens are not refreshed; when one expires the caller logs in again.
type Session struct {
	client      *Client
	accessToken string
	profile     ProfileResponse
}

func newSession(c *Client, resp SessionResponse) *Session {
	return &Session{
		client:      c,
		accessToken: resp.AccessToken,
		profile:     resp.Profile,
	}
}

// AccessToken returns the raw bearer token, e.g. for storage.
func (s *Session) AccessToken() string { return s.accessToken }

// Profile returns the profile captured at login. It may be stale; Userinfo
// re-reads it from the service.
func (s *Session) Profile() ProfileResponse { return s.profile }

// Userinfo fetches the current profile for this session.
func (s *Session) Userinfo(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/userinfo", s.accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvite mints an invite. Requires the super_admin role.
func (s *Session) CreateInvite(ctx context.Context, email, role string) (*InviteCreateResponse, error) {
	var out InviteCreateResponse
	req := InviteCreateRequest{Email: email, Role: role}
	if err := s.client.do(ctx, http.MethodPost, "/v1/invites", s.accessToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendInviteEmail delivers an invite link by email. Requires the super_admin
// role. This endpoint answers 200 or 400 and reports the outcome in the body
// shape {success, message, emailId, error}, so both statuses decode into the
// response; only transport failures error here.
func (s *Session) SendInviteEmail(ctx context.Context, req InviteEmailRequest) (*InviteEmailResponse, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.client.BaseURL+"/v1/invites/email", bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var out InviteEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// ListProfiles lists every profile. Requires super_admin or admin.
func (s *Session) ListProfiles(ctx context.Context) ([]ProfileResponse, error) {
	var out ProfilesListResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/profiles", s.accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out.Profiles, nil
}

// SetProfileActive enables or disables an account. Requires super_admin.
func (s *Session) SetProfileActive(ctx context.Context, profileID string, active bool) (*ProfileResponse, error) {
	var out ProfileResponse
	path := "/v1/profiles/" + profileID + "/active"
	if err := s.client.do(ctx, http.MethodPut, path, s.accessToken, ProfileActiveRequest{Active: active}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
