// Package payment wraps the Stripe payment-intent API. It only creates
// intents; reconciling completed payments happens outside this service.
package payment

import (
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Intent is the subset of a provider payment intent the API exposes
type Intent struct {
	ID           string
	ClientSecret string
}

// StripeClient creates payment intents against the Stripe API
type StripeClient struct {
	api      *client.API
	currency string
}

// NewStripeClient creates a Stripe-backed payment client
func NewStripeClient(secretKey, currency string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)

	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	return &StripeClient{api: api, currency: currency}
}

// CreateIntent requests a card payment intent for amountMinorUnits, tagging
// it with the participant email and camp id for later reconciliation. Single
// attempt, no retries.
func (c *StripeClient) CreateIntent(amountMinorUnits int64, participantEmail, campID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		ReceiptEmail:       stripe.String(participantEmail),
	}
	params.AddMetadata("participantEmail", participantEmail)
	params.AddMetadata("campId", campID)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, providerError(err)
	}

	return &Intent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// providerError unwraps Stripe's structured error into a plain error carrying
// the provider's own message
func providerError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.New(stripeErr.Msg)
	}
	return err
}
