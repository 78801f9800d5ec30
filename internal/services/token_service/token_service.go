package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/jwt"
	"artiste_site/internal/repository"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotInStorage = errors.New("token not found in storage")
)

const RefreshTokenExpire = 7 * 24 * time.Hour

type TokenService struct {
	repo      repository.TokenRepository
	secret    string
	accessTTL time.Duration
}

func NewTokenService(repo repository.TokenRepository, secret string, accessTTL time.Duration) *TokenService {
	return &TokenService{
		repo:      repo,
		secret:    secret,
		accessTTL: accessTTL,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "services.TokenService.GenerateTokens"

	accessToken, err := jwt.NewToken(user, s.accessTTL, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := jwt.NewToken(user, RefreshTokenExpire, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, RefreshTokenExpire); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens меняет refresh токен на новую пару, старый токен удаляется
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.TokenService.RefreshTokens"

	claims, err := jwt.Parse(refreshToken, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID := claims.UserID.String()

	exists, err := s.repo.GetRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GenerateTokens(ctx, models.User{ID: claims.UserID, Email: claims.Email})
}

// Revoke удаляет все refresh токены пользователя
func (s *TokenService) Revoke(ctx context.Context, user models.User) error {
	const op = "services.TokenService.Revoke"

	if err := s.repo.DeleteAllUserTokens(ctx, user.ID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
