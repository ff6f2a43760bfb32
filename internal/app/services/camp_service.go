package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/app/repositories"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

// CampService handles the camp catalog: create, list, sort, filter, and
// organizer-scoped views. It never touches the participants counter; that
// belongs to the registration lifecycle.
type CampService struct {
	camps CampStore
}

// NewCampService creates a new camp service instance
func NewCampService(camps CampStore) *CampService {
	return &CampService{camps: camps}
}

// Create publishes a new camp. The participants counter always starts at 0.
// Organizer identity is not verified here; that is the caller's concern.
func (s *CampService) Create(ctx context.Context, req *dto.CreateCampRequest) (*models.Camp, error) {
	camp := &models.Camp{
		Name:                   req.Name,
		Location:               req.Location,
		Fees:                   *req.Fees,
		HealthcareProfessional: req.HealthcareProfessional,
		Date:                   req.Date,
		Description:            req.Description,
		ImageURL:               req.ImageURL,
		OrganizerEmail:         req.OrganizerEmail,
		Participants:           0,
	}

	if err := s.camps.Create(ctx, camp); err != nil {
		return nil, fmt.Errorf("error creating camp: %w", err)
	}

	return camp, nil
}

// List returns camps, optionally sorted descending by a named field and
// capped to limit entries (limit 0 means unlimited)
func (s *CampService) List(ctx context.Context, sortField string, limit int) ([]*models.Camp, error) {
	sortColumn := ""
	if sortField != "" {
		col, ok := repositories.SortableCampColumns[sortField]
		if !ok {
			return nil, apperrors.NewValidationError("sort", "sort field is not sortable: "+sortField)
		}
		sortColumn = col
	}
	if limit < 0 {
		return nil, apperrors.NewValidationError("limit", "limit cannot be negative")
	}

	camps, err := s.camps.GetAll(ctx, sortColumn, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving camps: %w", err)
	}

	return camps, nil
}

// GetByID retrieves a single camp
func (s *CampService) GetByID(ctx context.Context, id string) (*models.Camp, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewValidationError("id", "id is not a valid identifier")
	}

	camp, err := s.camps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampNotFound) {
			return nil, apperrors.ErrCampNotFound
		}
		return nil, fmt.Errorf("error retrieving camp: %w", err)
	}

	return camp, nil
}

// ListByOrganizer returns all camps published by an organizer email
func (s *CampService) ListByOrganizer(ctx context.Context, email string) ([]*models.Camp, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	camps, err := s.camps.GetByOrganizer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving camps: %w", err)
	}

	return camps, nil
}

// Update applies a partial patch to a camp. Ownership is not checked at this
// layer.
func (s *CampService) Update(ctx context.Context, id string, req *dto.UpdateCampRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("id", "id is not a valid identifier")
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Location != nil {
		patch["location"] = *req.Location
	}
	if req.Fees != nil {
		patch["fees"] = *req.Fees
	}
	if req.HealthcareProfessional != nil {
		patch["healthcare_professional"] = *req.HealthcareProfessional
	}
	if req.Date != nil {
		patch["date"] = *req.Date
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}

	if len(patch) == 0 {
		return apperrors.NewValidationError("body", "no updatable fields provided")
	}

	err := s.camps.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampNotFound) {
			return apperrors.ErrCampNotFound
		}
		return fmt.Errorf("error updating camp: %w", err)
	}

	return nil
}

// Delete removes a camp by identifier. Registrations are not cascaded: their
// camp snapshot keeps them meaningful, and cancellation tolerates the
// missing camp.
func (s *CampService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("id", "id is not a valid identifier")
	}

	err := s.camps.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampNotFound) {
			return apperrors.ErrCampNotFound
		}
		return fmt.Errorf("error deleting camp: %w", err)
	}

	return nil
}
