package services

import (
	"context"
	"errors"
	"testing"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

func TestUserCreateIdempotent(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		Email: "ayesha@example.com",
		Name:  "Ayesha Khan",
	}

	user, created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created {
		t.Error("first create reported created=false")
	}
	if user.Role != models.RoleParticipant {
		t.Errorf("default role = %q, want %q", user.Role, models.RoleParticipant)
	}

	// Second submission with the same email is a no-op
	req.Name = "A. Khan"
	_, created, err = svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("duplicate Create: %v", err)
	}
	if created {
		t.Error("duplicate create reported created=true")
	}

	stored, err := svc.GetByEmail(ctx, "ayesha@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.Name != "Ayesha Khan" {
		t.Errorf("stored name = %q, duplicate create overwrote the record", stored.Name)
	}
}

func TestUserCreateWithRole(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	user, _, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Email: "organizer@medicamp.app",
		Name:  "Dr. Rahman",
		Role:  "organizer",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != models.RoleOrganizer {
		t.Errorf("role = %q, want %q", user.Role, models.RoleOrganizer)
	}
}

func TestUserGetRole(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	if _, _, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "admin@medicamp.app",
		Name:  "Admin",
		Role:  "admin",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	role, err := svc.GetRole(ctx, "admin@medicamp.app")
	if err != nil {
		t.Fatalf("GetRole: %v", err)
	}
	if role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", role, models.RoleAdmin)
	}

	if _, err := svc.GetRole(ctx, "missing@example.com"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want %v", err, apperrors.ErrUserNotFound)
	}
}

func TestUserUpsertKeepsRole(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	if _, _, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email: "organizer@medicamp.app",
		Name:  "Dr. Rahman",
		Role:  "organizer",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Upsert(ctx, "organizer@medicamp.app", &dto.UpdateUserRequest{
		Name:     "Dr. M. Rahman",
		PhotoURL: strPtr("https://cdn.medicamp.app/p/rahman.jpg"),
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	stored, err := svc.GetByEmail(ctx, "organizer@medicamp.app")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.Name != "Dr. M. Rahman" {
		t.Errorf("name = %q after upsert", stored.Name)
	}
	if stored.Role != models.RoleOrganizer {
		t.Errorf("role = %q after upsert, existing role must be kept", stored.Role)
	}
	if stored.PhotoURL == nil || *stored.PhotoURL != "https://cdn.medicamp.app/p/rahman.jpg" {
		t.Error("photo url not applied by upsert")
	}
}

func TestUserList(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, _, err := svc.Create(ctx, &dto.CreateUserRequest{Email: email, Name: "User"}); err != nil {
			t.Fatalf("Create(%s): %v", email, err)
		}
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("listed %d users, want 2", len(all))
	}
}
