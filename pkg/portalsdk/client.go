package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the portal service. Unauthenticated operations hang off
// Client directly; Login and NewSessionFromToken return a Session for the
// authenticated surface.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a portal client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ValidateInvite checks a token without consuming it.
func (c *Client) ValidateInvite(ctx context.Context, token string) (*InviteValidateResponse, error) {
	path := "/v1/invites/validate?token=" + url.QueryEscape(token)

	var out InviteValidateResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount redeems an invite token. On success the new account is
// signed in and the session is returned.
func (c *Client) CreateAccount(ctx context.Context, req AccountCreateRequest) (*Session, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/accounts", "", req, &out); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Bootstrap creates the first super admin on an empty deployment.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodPost, "/v1/bootstrap", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSessionFromToken wraps an existing access token in a Session.
func (c *Client) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// do performs one request. A non-nil body is sent as JSON; a non-nil out has
// the 2xx response decoded into it. token, when set, goes into the
// Authorization header.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
