package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountDisabled    = "account_disabled"
	ErrorCodeDuplicateInvite    = "duplicate_invite"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeExpiredToken       = "expired_token"
	ErrorCodeEmailRegistered    = "email_registered"
	ErrorCodeProvisioningError  = "provisioning_failed"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx response from the portal service. It implements the
// error interface so SDK callers can inspect the code and status.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("portal: %s: %s (status %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("portal: %s (status %d)", e.Code, e.StatusCode)
}

// WriteError writes this APIError to an HTTP response writer. Handlers use
// this to emit the standard error payload.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined errors
// ============================================================================

var (
	// ErrInvalidRequest covers malformed bodies and missing or invalid
	// parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized is returned when authentication is missing or invalid.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "authentication required",
	}

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "insufficient permissions",
	}

	// ErrInvalidCredentials is returned for a failed login. Unknown email
	// and wrong password are indistinguishable.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrAccountDisabled is returned when the account exists but has been
	// deactivated.
	ErrAccountDisabled = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccountDisabled,
		Description: "account is disabled",
	}

	// ErrDuplicateInvite is returned when an unexpired unused invite already
	// exists for the email.
	ErrDuplicateInvite = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateInvite,
		Description: "an active invite already exists for this email",
	}

	// ErrMissingToken is returned when the token parameter is absent.
	ErrMissingToken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "token is required",
	}

	// ErrInvalidToken covers tokens that are unknown or already used; the
	// two cases are deliberately not distinguished.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or already used invite token",
	}

	// ErrExpiredToken is returned for a known unused invite past its expiry.
	ErrExpiredToken = &APIError{
		StatusCode:  http.StatusGone,
		Code:        ErrorCodeExpiredToken,
		Description: "invite token has expired",
	}

	// ErrEmailRegistered is returned when an account already exists for the
	// invite's email.
	ErrEmailRegistered = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailRegistered,
		Description: "an account already exists for this email",
	}

	// ErrNotFound is returned when the addressed resource does not exist.
	// ErrProvisioningFailed means the account did not fully materialize.
	// Fatal: resubmitting will not help, the operator has to look.
	ErrProvisioningFailed = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeProvisioningError,
		Description: "account could not be provisioned, contact support",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseAPIError decodes an error payload from a response body.
func parseAPIError(resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response (status %d)", resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
