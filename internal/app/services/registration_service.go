package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
	"github.com/medicamp/backend/internal/pkg/metrics"
	"github.com/medicamp/backend/internal/pkg/validation"
)

// RegistrationService handles the registration lifecycle: create, cancel,
// and the participant/organizer projections. The camp's participants counter
// is kept consistent with the set of live registrations by pairing every
// registration write with a counter update in one store transaction.
type RegistrationService struct {
	txer   TxRunner
	regs   RegistrationStore
	camps  CampStore
	logger zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(txer TxRunner, regs RegistrationStore, camps CampStore, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		txer:   txer,
		regs:   regs,
		camps:  camps,
		logger: logger,
	}
}

// requiredField pairs a payload field name with its presence check
type requiredField struct {
	name    string
	present func(req *dto.RegisterRequest) bool
}

// requiredRegisterFields lists every required registration field in check
// order. Validation is fail-fast: the first missing field is reported.
var requiredRegisterFields = []requiredField{
	{"campId", func(r *dto.RegisterRequest) bool { return r.CampID != "" }},
	{"campName", func(r *dto.RegisterRequest) bool { return r.CampName != "" }},
	{"campFees", func(r *dto.RegisterRequest) bool { return r.CampFees != nil }},
	{"location", func(r *dto.RegisterRequest) bool { return r.Location != "" }},
	{"healthcareProfessional", func(r *dto.RegisterRequest) bool { return r.HealthcareProfessional != "" }},
	{"participantName", func(r *dto.RegisterRequest) bool { return r.ParticipantName != "" }},
	{"participantEmail", func(r *dto.RegisterRequest) bool { return r.ParticipantEmail != "" }},
	{"age", func(r *dto.RegisterRequest) bool { return r.Age != nil }},
	{"phone", func(r *dto.RegisterRequest) bool { return r.Phone != "" }},
	{"gender", func(r *dto.RegisterRequest) bool { return r.Gender != "" }},
	{"emergencyContact", func(r *dto.RegisterRequest) bool { return r.EmergencyContact != "" }},
}

// validateRegisterRequest checks the payload before any persistence side
// effect takes place
func validateRegisterRequest(req *dto.RegisterRequest) error {
	for _, f := range requiredRegisterFields {
		if !f.present(req) {
			return apperrors.NewValidationError(f.name, f.name+" is required")
		}
	}

	if _, err := uuid.Parse(req.CampID); err != nil {
		return apperrors.NewValidationError("campId", "campId is not a valid identifier")
	}
	if *req.CampFees < 0 {
		return apperrors.NewValidationError("campFees", "campFees cannot be negative")
	}
	if !validation.IsValidEmail(req.ParticipantEmail) {
		return apperrors.NewValidationError("participantEmail", "participantEmail is not a valid email address")
	}
	if *req.Age <= 0 {
		return apperrors.NewValidationError("age", "age must be a positive integer")
	}

	return nil
}

// Register validates the payload, stores the registration with the camp
// snapshot taken from the payload, and increments the target camp's
// participants counter. The row insert and the counter update share one
// transaction: a failed increment (e.g. unknown camp) rolls the registration
// back instead of leaving counter drift behind.
func (s *RegistrationService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Registration, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	reg := &models.Registration{
		CampID:                 req.CampID,
		CampName:               req.CampName,
		CampFees:               *req.CampFees,
		Location:               req.Location,
		HealthcareProfessional: req.HealthcareProfessional,
		OrganizerEmail:         req.OrganizerEmail,
		ParticipantName:        req.ParticipantName,
		ParticipantEmail:       req.ParticipantEmail,
		Age:                    *req.Age,
		Phone:                  req.Phone,
		Gender:                 req.Gender,
		EmergencyContact:       req.EmergencyContact,
		PaymentStatus:          models.PaymentUnpaid,
		ConfirmationStatus:     models.ConfirmationPending,
	}

	err := s.txer.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.regs.Create(ctx, tx, reg); err != nil {
			return err
		}
		return s.camps.IncrementParticipants(ctx, tx, reg.CampID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCampNotFound) {
			return nil, apperrors.ErrCampNotFound
		}
		return nil, fmt.Errorf("error creating registration: %w", err)
	}

	metrics.RegistrationsCreated.Inc()
	s.logger.Info().
		Str("registrationId", reg.ID).
		Str("campId", reg.CampID).
		Str("participantEmail", reg.ParticipantEmail).
		Msg("Registration created")

	return reg, nil
}

// Cancel deletes a registration and decrements its camp's participants
// counter in one transaction. A missing camp (deleted while registrations
// were live) does not block cancellation; the skipped decrement is logged.
func (s *RegistrationService) Cancel(ctx context.Context, registrationID string) error {
	if registrationID == "" {
		return apperrors.NewValidationError("registrationId", "registrationId is required")
	}
	if _, err := uuid.Parse(registrationID); err != nil {
		return apperrors.NewValidationError("registrationId", "registrationId is not a valid identifier")
	}

	reg, err := s.regs.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationNotFound) {
			return apperrors.ErrRegistrationNotFound
		}
		return fmt.Errorf("error retrieving registration: %w", err)
	}

	err = s.txer.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.regs.Delete(ctx, tx, registrationID); err != nil {
			return err
		}
		if err := s.camps.DecrementParticipants(ctx, tx, reg.CampID); err != nil {
			if errors.Is(err, apperrors.ErrCampNotFound) {
				s.logger.Warn().
					Str("registrationId", registrationID).
					Str("campId", reg.CampID).
					Msg("Camp missing during cancellation, counter decrement skipped")
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error cancelling registration: %w", err)
	}

	metrics.RegistrationsCancelled.Inc()
	s.logger.Info().
		Str("registrationId", registrationID).
		Str("campId", reg.CampID).
		Msg("Registration cancelled")

	return nil
}

// ListByParticipant returns all registrations made with a participant email.
// Status fields are defaulted when absent so older rows stay well formed.
func (s *RegistrationService) ListByParticipant(ctx context.Context, email string) ([]*models.Registration, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	regs, err := s.regs.GetByParticipant(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}

	for _, reg := range regs {
		if reg.PaymentStatus == "" {
			reg.PaymentStatus = models.PaymentUnpaid
		}
		if reg.ConfirmationStatus == "" {
			reg.ConfirmationStatus = models.ConfirmationPending
		}
	}

	return regs, nil
}

// ListByOrganizer returns all registrations for camps run by an organizer
func (s *RegistrationService) ListByOrganizer(ctx context.Context, email string) ([]*models.Registration, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	regs, err := s.regs.GetByOrganizer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}

	return regs, nil
}
