package domain

import "time"

// InviteTTL is the fixed invite lifetime. Not configurable per invite.
const InviteTTL = 7 * 24 * time.Hour

// Invite is a single-use offer to create an account, bound to an email and
// a role. The token is the sole public lookup key; expiry is enforced by
// time comparison, never by deleting the row in the validation path.
type Invite struct {
	ID        string
	Email     string // normalized: lowercased + trimmed
	Role      Role
	Token     string // opaque random token, unique
	InvitedBy string
	ExpiresAt time.Time
	Used      bool
	UsedBy    string // empty until consumed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invite's expiry has passed at the given time.
func (i Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Link builds the shareable account-creation URL for this invite. The
// `token` query parameter name is part of the external contract.
func (i Invite) Link(origin string) string {
	return origin + "/create-account?token=" + i.Token
}
