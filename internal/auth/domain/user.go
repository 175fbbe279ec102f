package domain

import "time"

type User struct {
	ID                  string
	Email               string
	FullName            string
	PasswordHash        string
	IsActive            bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RefreshToken is the persisted backing record for a signed refresh token.
// The record id is embedded in the signed payload; every refresh round-trips
// the store so revocation takes effect immediately.
type RefreshToken struct {
	ID         string
	UserID     string
	Token      string
	DeviceInfo string
	IPAddress  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	Revoked    bool
	LastUsedAt *time.Time
}

// Usable reports whether the record may mint new access tokens.
func (rt *RefreshToken) Usable(now time.Time) bool {
	return !rt.Revoked && now.Before(rt.ExpiresAt)
}
