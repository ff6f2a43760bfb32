package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/pkg/apperrors"
	"github.com/medicamp/backend/internal/pkg/auth"
)

func TestIssueToken(t *testing.T) {
	users := newFakeUserStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "medicamp.app",
	})
	svc := NewAuthService(users, jwtService)
	ctx := context.Background()

	if err := users.Create(ctx, &models.User{
		Email: "organizer@medicamp.app",
		Name:  "Dr. Rahman",
		Role:  models.RoleOrganizer,
	}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	token, expiresIn, err := svc.IssueToken(ctx, "organizer@medicamp.app")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty access token")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "organizer@medicamp.app" {
		t.Errorf("claims email = %q", claims.Email)
	}
	if claims.Role != "organizer" {
		t.Errorf("claims role = %q, want organizer", claims.Role)
	}
}

func TestIssueTokenUnknownUser(t *testing.T) {
	users := newFakeUserStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "medicamp.app",
	})
	svc := NewAuthService(users, jwtService)

	_, _, err := svc.IssueToken(context.Background(), "missing@example.com")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("error = %v, want %v", err, apperrors.ErrUserNotFound)
	}
}
