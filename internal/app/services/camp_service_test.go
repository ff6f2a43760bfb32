package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func newCampRequest() *dto.CreateCampRequest {
	return &dto.CreateCampRequest{
		Name:                   "Dental Care Camp",
		Location:               "Chittagong",
		Fees:                   intPtr(25),
		HealthcareProfessional: "Dr. Sultana",
		Date:                   time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC),
		Description:            "Free dental screening and consultation",
		OrganizerEmail:         "organizer@medicamp.app",
	}
}

func TestCampCreateStartsEmpty(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)

	camp, err := svc.Create(context.Background(), newCampRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if camp.ID == "" {
		t.Error("expected camp to be assigned an id")
	}
	if camp.Participants != 0 {
		t.Errorf("participants = %d, want 0", camp.Participants)
	}
	if camp.Fees != 25 {
		t.Errorf("fees = %d, want 25", camp.Fees)
	}
}

func TestCampListSortWhitelist(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, newCampRequest()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	for _, sortField := range []string{"", "name", "fees", "date", "participants", "createdAt"} {
		if _, err := svc.List(ctx, sortField, 0); err != nil {
			t.Errorf("List(sort=%q): %v", sortField, err)
		}
	}

	_, err := svc.List(ctx, "organizerEmail", 0)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("unsortable field error = %v, want validation failure", err)
	}
	if got := apperrors.FieldOf(err); got != "sort" {
		t.Errorf("reported field = %q, want sort", got)
	}

	if _, err := svc.List(ctx, "", -1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("negative limit error = %v, want validation failure", err)
	}

	limited, err := svc.List(ctx, "", 2)
	if err != nil {
		t.Fatalf("List(limit=2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("listed %d camps, want 2", len(limited))
	}
}

func TestCampGetByID(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)
	ctx := context.Background()

	camp, err := svc.Create(ctx, newCampRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(ctx, camp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != camp.Name {
		t.Errorf("name = %q, want %q", got.Name, camp.Name)
	}

	if _, err := svc.GetByID(ctx, uuid.NewString()); !errors.Is(err, apperrors.ErrCampNotFound) {
		t.Errorf("unknown id error = %v, want %v", err, apperrors.ErrCampNotFound)
	}
	if _, err := svc.GetByID(ctx, "not-a-uuid"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("malformed id error = %v, want validation failure", err)
	}
}

func TestCampUpdatePatch(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)
	ctx := context.Background()

	camp, err := svc.Create(ctx, newCampRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(ctx, camp.ID, &dto.UpdateCampRequest{
		Name: strPtr("Dental Care Camp 2026"),
		Fees: intPtr(30),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.GetByID(ctx, camp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Dental Care Camp 2026" {
		t.Errorf("name = %q after patch", got.Name)
	}
	if got.Fees != 30 {
		t.Errorf("fees = %d after patch, want 30", got.Fees)
	}
	if got.Location != "Chittagong" {
		t.Errorf("unpatched location changed to %q", got.Location)
	}

	err = svc.Update(ctx, camp.ID, &dto.UpdateCampRequest{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("empty patch error = %v, want validation failure", err)
	}
	if got := apperrors.FieldOf(err); got != "body" {
		t.Errorf("reported field = %q, want body", got)
	}

	err = svc.Update(ctx, uuid.NewString(), &dto.UpdateCampRequest{Name: strPtr("x")})
	if !errors.Is(err, apperrors.ErrCampNotFound) {
		t.Errorf("unknown camp error = %v, want %v", err, apperrors.ErrCampNotFound)
	}
}

func TestCampDelete(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)
	ctx := context.Background()

	camp, err := svc.Create(ctx, newCampRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, camp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, camp.ID); !errors.Is(err, apperrors.ErrCampNotFound) {
		t.Errorf("camp still retrievable after delete: %v", err)
	}
	if err := svc.Delete(ctx, camp.ID); !errors.Is(err, apperrors.ErrCampNotFound) {
		t.Errorf("second delete error = %v, want %v", err, apperrors.ErrCampNotFound)
	}
}

func TestCampListByOrganizer(t *testing.T) {
	camps := newFakeCampStore()
	svc := NewCampService(camps)
	ctx := context.Background()

	if _, err := svc.Create(ctx, newCampRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := newCampRequest()
	other.OrganizerEmail = "someone-else@medicamp.app"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mine, err := svc.ListByOrganizer(ctx, "organizer@medicamp.app")
	if err != nil {
		t.Fatalf("ListByOrganizer: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("listed %d camps, want 1", len(mine))
	}

	if _, err := svc.ListByOrganizer(ctx, ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty email error = %v, want validation failure", err)
	}
}
