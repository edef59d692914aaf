package domain

import "time"

// Identity is the authentication record backing a portal account: the
// email/password credential pair. Portal-facing attributes live on the
// Profile keyed by the same ID.
type Identity struct {
	ID           string
	Email        string // normalized, unique
	PasswordHash string
	FullName     string // metadata attached at signup
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
