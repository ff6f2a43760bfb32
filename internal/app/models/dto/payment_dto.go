package dto

// CreatePaymentIntentRequest asks the payment provider for a new intent.
// CampFees is in major currency units; conversion to minor units happens in
// the payment service.
type CreatePaymentIntentRequest struct {
	CampFees         *int   `json:"campFees" binding:"required,min=1"`
	ParticipantEmail string `json:"participantEmail" binding:"required,email"`
	CampID           string `json:"campId" binding:"required"`
}

// PaymentIntentResponse carries the provider's client-usable secret
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
