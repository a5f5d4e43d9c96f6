package service

import (
	"context"
	"time"

	"collabase/internal/cache"
	apperrors "collabase/internal/errors"
	"collabase/internal/models"
	"collabase/internal/repository"
	"collabase/pkg/auth"
)

// AuthService handles authentication business logic. Refresh tokens are
// family-scoped and rotated on every use, with a one-token lookback for
// reuse detection.
type AuthService struct {
	userRepo        repository.UserRepository
	tokenStore      cache.RefreshTokenStore
	jwtManager      auth.TokenManager
	tokenGenerator  auth.RefreshTokenGenerator
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo        repository.UserRepository
	TokenStore      cache.RefreshTokenStore
	JWTManager      auth.TokenManager
	TokenGenerator  auth.RefreshTokenGenerator
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:        cfg.UserRepo,
		tokenStore:      cfg.TokenStore,
		jwtManager:      cfg.JWTManager,
		tokenGenerator:  cfg.TokenGenerator,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// Register creates a new user account and returns auth tokens.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       req.Email,
		Password:    hashedPassword,
		DisplayName: req.DisplayName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user and returns auth tokens.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(ctx, user)
}

// Refresh exchanges a refresh token for a new access and refresh token pair.
func (s *AuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	familyID, err := s.tokenGenerator.ExtractFamilyID(req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	storedData, err := s.tokenStore.Get(ctx, familyID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if storedData == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(storedData.ExpiresAt) {
		_ = s.tokenStore.Delete(ctx, familyID)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	incomingHash := s.tokenGenerator.Hash(req.RefreshToken)

	if s.tokenGenerator.CompareHashes(incomingHash, storedData.CurrentTokenHash) {
		return s.performRotation(ctx, familyID, storedData)
	}

	// A previous-generation token coming back means it leaked. Kill the
	// whole family.
	if storedData.PreviousTokenHash != "" && s.tokenGenerator.CompareHashes(incomingHash, storedData.PreviousTokenHash) {
		_ = s.tokenStore.Delete(ctx, familyID)
		return nil, apperrors.ErrRefreshTokenReused
	}

	return nil, apperrors.ErrInvalidRefreshToken
}

// performRotation generates new tokens and rotates the stored token data.
func (s *AuthService) performRotation(ctx context.Context, familyID string, storedData *cache.RefreshTokenData) (*models.RefreshResponse, error) {
	newRefreshToken, err := s.tokenGenerator.GenerateWithFamily(familyID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateToken(storedData.UserID)
	if err != nil {
		return nil, err
	}

	newHash := s.tokenGenerator.Hash(newRefreshToken)

	if err := s.tokenStore.Rotate(ctx, familyID, newHash, s.refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
	}, nil
}

// Logout invalidates a refresh token family. Logout is idempotent: an
// unknown or malformed token is not an error.
func (s *AuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	familyID, err := s.tokenGenerator.ExtractFamilyID(req.RefreshToken)
	if err != nil {
		return nil
	}
	_ = s.tokenStore.Delete(ctx, familyID)
	return nil
}

// generateAuthResponse creates access and refresh tokens for a user.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	token, familyID, err := s.tokenGenerator.Generate()
	if err != nil {
		return nil, err
	}

	tokenData := &cache.RefreshTokenData{
		UserID:           user.ID.Hex(),
		CurrentTokenHash: s.tokenGenerator.Hash(token),
		ExpiresAt:        time.Now().Add(s.refreshTokenTTL),
		CreatedAt:        time.Now(),
	}

	if err := s.tokenStore.Create(ctx, familyID, tokenData, s.refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: token,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
		User:         *user,
	}, nil
}
