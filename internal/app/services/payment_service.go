package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medicamp/backend/internal/pkg/apperrors"
	"github.com/medicamp/backend/internal/pkg/metrics"
	"github.com/medicamp/backend/internal/pkg/payment"
	"github.com/medicamp/backend/internal/pkg/validation"
)

// IntentCreator creates payment intents with the external provider
type IntentCreator interface {
	CreateIntent(amountMinorUnits int64, participantEmail, campID string) (*payment.Intent, error)
}

// PaymentService bridges registrations to the payment provider. It only
// creates intents; it never reads or writes camp or registration state, and
// payment completion is reconciled outside this core.
type PaymentService struct {
	provider IntentCreator
	logger   zerolog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(provider IntentCreator, logger zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, logger: logger}
}

// CreateIntent converts the camp fee from major to minor currency units and
// requests a card payment intent tagged with the participant email and camp
// id. Single synchronous attempt; provider failures surface with the
// provider's message attached.
func (s *PaymentService) CreateIntent(ctx context.Context, amountMajorUnits int, participantEmail, campID string) (clientSecret string, err error) {
	if amountMajorUnits <= 0 {
		return "", apperrors.NewValidationError("campFees", "campFees must be a positive amount")
	}
	if !validation.IsValidEmail(participantEmail) {
		return "", apperrors.NewValidationError("participantEmail", "participantEmail is not a valid email address")
	}
	if _, err := uuid.Parse(campID); err != nil {
		return "", apperrors.NewValidationError("campId", "campId is not a valid identifier")
	}

	amountMinorUnits := int64(amountMajorUnits) * 100

	intent, err := s.provider.CreateIntent(amountMinorUnits, participantEmail, campID)
	if err != nil {
		return "", apperrors.NewPaymentProviderError(err.Error())
	}

	metrics.PaymentIntentsCreated.Inc()
	s.logger.Info().
		Str("intentId", intent.ID).
		Str("campId", campID).
		Int64("amountMinorUnits", amountMinorUnits).
		Msg("Payment intent created")

	return intent.ClientSecret, nil
}
