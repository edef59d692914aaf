package portalsdk

import "time"

// ErrorResponse is the standard error payload for every endpoint except the
// invite email boundary, which has its own shape (see InviteEmailResponse).
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_token")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Invites
// ============================================================================

// InviteCreateRequest asks for a new invite to be minted.
type InviteCreateRequest struct {
	// Email is the invitee's address. One active invite per email.
	Email string `json:"email"`

	// Role is the role the account will hold: super_admin, admin or client.
	Role string `json:"role"`
}

// InviteCreateResponse is the minted invite. The raw token appears here and
// in the invite email, nowhere else.
type InviteCreateResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Token      string    `json:"token"`
	InviteLink string    `json:"invite_link"`
	ExpiresAt  time.Time `json:"expires_at"`

	// EmailSent reports whether the invite email went out. Issuance succeeds
	// even when delivery fails; the operator can resend the link by hand.
	EmailSent bool   `json:"email_sent"`
	EmailID   string `json:"email_id,omitempty"`
}

// InviteValidateResponse answers a token check on the account creation page.
type InviteValidateResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ============================================================================
// Invite email boundary
// ============================================================================

// InviteEmailRequest asks the service to deliver an invite link. Field names
// are camelCase; this endpoint predates the rest of the API surface.
type InviteEmailRequest struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	InviteLink    string `json:"inviteLink"`
	InvitedByName string `json:"invitedByName,omitempty"`
}

// InviteEmailResponse reports the delivery outcome. Success responses carry
// message and emailId; failures carry error. HTTP status is 200 or 400.
type InviteEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ============================================================================
// Accounts and sessions
// ============================================================================

// AccountCreateRequest redeems an invite token into an account.
type AccountCreateRequest struct {
	Token           string `json:"token"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is a signed session token plus the profile it belongs to.
type SessionResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`

	// DashboardPath is where the frontend routes this role after login.
	DashboardPath string `json:"dashboard_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilesListResponse is the admin listing of all profiles.
type ProfilesListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ProfileActiveRequest enables or disables an account.
type ProfileActiveRequest struct {
	Active bool `json:"active"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// Bootstrap
// ============================================================================

// BootstrapRequest creates the first super admin on an empty deployment.
// Token must match the configured bootstrap secret.
type BootstrapRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}
