package domain

import "time"

// Session is an issued sign-in: a signed bearer token plus the routing
// attributes the front end needs immediately after authentication.
type Session struct {
	AccessToken string
	TokenType   string // always "Bearer"
	ExpiresAt   time.Time
	Profile     Profile
}
