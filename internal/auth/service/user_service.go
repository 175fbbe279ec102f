package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DaveCybr/ar-backend/internal/analytics"
	"github.com/DaveCybr/ar-backend/internal/auth/domain"
	"github.com/DaveCybr/ar-backend/internal/auth/dto"
	autherror "github.com/DaveCybr/ar-backend/internal/errors"
	"github.com/DaveCybr/ar-backend/internal/events"
	authconstant "github.com/DaveCybr/ar-backend/pkg/constant"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	hasher       PasswordHasher
	policy       *LoginPolicy
	publisher    events.Publisher
	metrics      analytics.Recorder
	log          *zap.Logger
}

func NewUserService(
	repo domain.UserRepository,
	tokenService TokenGenerator,
	hasher PasswordHasher,
	policy *LoginPolicy,
	publisher events.Publisher,
	metrics analytics.Recorder,
	log *zap.Logger,
) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		hasher:       hasher,
		policy:       policy,
		publisher:    publisher,
		metrics:      metrics,
		log:          log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenResponse, error) {
	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return nil, autherror.ErrInvalidEmail
	}
	if len(input.Password) < authconstant.MinPasswordLength {
		return nil, autherror.ErrWeakPassword
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hashed,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokenPair(ctx, user, "", "")
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(events.SubjectUserRegistered, events.UserRegistered{
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: now,
	}); err != nil {
		s.log.Warn("failed to publish registration event", zap.Error(err))
	}
	if err := s.metrics.IncrRegistration(ctx, now); err != nil {
		s.log.Warn("failed to bump registration counter", zap.Error(err))
	}

	return tokens, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	// A missing user and a wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	state := LoginState{FailedAttempts: user.FailedLoginAttempts, LockedUntil: user.LockedUntil}

	if s.policy.Locked(state, now) {
		return nil, autherror.ErrAccountLocked
	}
	if !user.IsActive {
		return nil, autherror.ErrAccountDisabled
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		next := s.policy.Fail(state, now)
		if err := s.repo.UpdateLoginState(ctx, user.ID, next.FailedAttempts, next.LockedUntil, nil); err != nil {
			return nil, fmt.Errorf("failed to update login state: %w", err)
		}
		if next.LockedUntil != nil {
			if err := s.publisher.Publish(events.SubjectUserLocked, events.UserLocked{
				UserID:      user.ID,
				Email:       user.Email,
				LockedUntil: *next.LockedUntil,
				OccurredAt:  now,
			}); err != nil {
				s.log.Warn("failed to publish lockout event", zap.Error(err))
			}
		}
		// The attempt that triggers a lock still reads as invalid credentials.
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLoginState(ctx, user.ID, 0, nil, &now); err != nil {
		return nil, fmt.Errorf("failed to update login state: %w", err)
	}

	tokens, err := s.issueTokenPair(ctx, user, input.DeviceInfo, input.IPAddress)
	if err != nil {
		return nil, err
	}

	if err := s.metrics.IncrLogin(ctx, now); err != nil {
		s.log.Warn("failed to bump login counter", zap.Error(err))
	}

	return tokens, nil
}

func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetRefreshTokenByID(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if record == nil || record.Revoked {
		return nil, autherror.ErrInvalidToken
	}
	if !time.Now().Before(record.ExpiresAt) {
		return nil, autherror.ErrTokenExpired
	}

	if err := s.repo.TouchRefreshToken(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to touch refresh token: %w", err)
	}

	// The superseded record is not revoked; concurrent refreshes from the
	// same token all succeed until it expires on its own.
	user := &domain.User{ID: record.UserID, Email: claims.Email}

	return s.issueTokenPair(ctx, user, input.DeviceInfo, input.IPAddress)
}

// Logout revokes the backing record of the given refresh token. It is
// idempotent and never surfaces an error: an invalid, unknown or already
// revoked token is treated the same as a successful revocation.
func (s *UserService) Logout(ctx context.Context, refreshToken string) {
	claims, err := s.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return
	}

	record, err := s.repo.GetRefreshTokenByID(ctx, claims.TokenID)
	if err != nil || record == nil || record.Revoked {
		return
	}

	if err := s.repo.RevokeRefreshToken(ctx, record.ID); err != nil {
		s.log.Warn("failed to revoke refresh token on logout", zap.Error(err))
	}
}

// ChangePassword stores a new password hash and then revokes every refresh
// token the user holds, forcing re-authentication on all other sessions. The
// two store calls are not transactional; a revoke failure is returned so the
// caller can retry it.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return autherror.ErrInvalidPassword
	}
	if len(newPassword) < authconstant.MinPasswordLength {
		return autherror.ErrWeakPassword
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if err := s.repo.RevokeAllRefreshTokens(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	if err := s.publisher.Publish(events.SubjectPasswordChanged, events.PasswordChanged{
		UserID:     user.ID,
		OccurredAt: time.Now(),
	}); err != nil {
		s.log.Warn("failed to publish password change event", zap.Error(err))
	}

	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}, nil
}

// issueTokenPair mints a fresh access/refresh pair under a new token id and
// persists the refresh record before returning.
func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User, deviceInfo, ipAddress string) (*dto.TokenResponse, error) {
	tokenID := uuid.NewString()

	accessToken, err := s.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenService.GenerateRefreshToken(user.ID, user.Email, tokenID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &domain.RefreshToken{
		ID:         tokenID,
		UserID:     user.ID,
		Token:      refreshToken,
		DeviceInfo: deviceInfo,
		IPAddress:  ipAddress,
		ExpiresAt:  now.Add(s.tokenService.GetRefreshTokenExpiry()),
		CreatedAt:  now,
	}
	if err := s.repo.StoreRefreshToken(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    authconstant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
	}, nil
}
