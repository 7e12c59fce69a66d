package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finmentor/internal/dto"
	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/google/uuid"
)

type authService struct {
	userRepo         repositories.UserRepositoryInterface
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface
	tokenService     TokenServiceInterface
	passwordService  PasswordServiceInterface
	accountService   AccountServiceInterface
	notifications    NotificationServiceInterface
	metrics          MetricsRecorderInterface
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	tokenService TokenServiceInterface,
	passwordService PasswordServiceInterface,
	accountService AccountServiceInterface,
	notifications NotificationServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		passwordService:  passwordService,
		accountService:   accountService,
		notifications:    notifications,
		metrics:          metrics,
	}
}

// Register creates a user with a starter account and the onboarding
// notification set. Failures after the user row exists are logged but do
// not roll back registration.
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	passwordHash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		slog.Error("failed to create user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.accountService.CreateDefaultAccount(user.ID); err != nil {
		slog.Error("failed to create starter account", "user_id", user.ID, "error", err)
	}

	if err := s.notifications.CreateWelcomeSet(user.ID); err != nil {
		slog.Error("failed to create welcome notifications", "user_id", user.ID, "error", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "register"})

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		slog.Warn("login failed", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		slog.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})

	slog.Info("user logged in", "user_id", user.ID)
	return tokens, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked
// and a fresh pair is issued.
func (s *authService) RefreshTokens(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(s.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if !stored.IsValid() {
		return nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.refreshTokenRepo.Revoke(stored.ID); err != nil {
		slog.Warn("failed to revoke rotated refresh token", "token_id", stored.ID, "error", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "token_refresh"})

	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	stored, err := s.refreshTokenRepo.GetByTokenHash(s.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Revoke(stored.ID); err != nil &&
		!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "logout"})
	return nil
}

func (s *authService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return &dto.UserProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *authService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		TokenHash: s.tokenService.HashToken(refreshToken),
		ExpiresAt: refreshExpiresAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}
