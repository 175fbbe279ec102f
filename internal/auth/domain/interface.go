package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/DaveCybr/ar-backend/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

// UserRepository is the credential-store contract. Lookups return (nil, nil)
// when no row matches. All operations are single-row atomic; no cross-row
// transaction is assumed.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateLoginState(ctx context.Context, userID string, failedAttempts int, lockedUntil, lastLogin *time.Time) error
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshTokenByID(ctx context.Context, id string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
	TouchRefreshToken(ctx context.Context, id string) error
}
