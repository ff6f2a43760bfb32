package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

// UserService handles user account records. Accounts originate from an
// external sign-in provider; this service only stores profile and role data.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetByEmail returns a single user record
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetRole returns a user's role
func (s *UserService) GetRole(ctx context.Context, email string) (models.RoleType, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Create stores a new user. Creation is idempotent on email: when the email
// already exists no second record is written and created is false.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (user *models.User, created bool, err error) {
	role := models.RoleType(req.Role)
	if role == "" {
		role = models.RoleParticipant
	}

	user = &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return user, false, nil
		}
		return nil, false, fmt.Errorf("error creating user: %w", err)
	}

	return user, true, nil
}

// Upsert creates or updates a user's profile fields by email. The role of an
// existing user is left untouched.
func (s *UserService) Upsert(ctx context.Context, email string, req *dto.UpdateUserRequest) (*models.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	user := &models.User{
		Email:    email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleParticipant,
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return user, nil
}
