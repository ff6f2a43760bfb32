package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/medicamp/backend/internal/pkg/apperrors"
	"github.com/medicamp/backend/internal/pkg/auth"
)

// AuthService mints API tokens for users that were authenticated upstream by
// the external sign-in provider.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwt *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// IssueToken creates an access token carrying the user's email and role
func (s *AuthService) IssueToken(ctx context.Context, email string) (accessToken string, expiresIn int, err error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", 0, apperrors.ErrUserNotFound
		}
		return "", 0, fmt.Errorf("error retrieving user: %w", err)
	}

	accessToken, expiresIn, err = s.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return "", 0, fmt.Errorf("error generating token: %w", err)
	}

	return accessToken, expiresIn, nil
}
