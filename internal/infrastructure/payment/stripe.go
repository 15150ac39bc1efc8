// Package payment implements the PaymentProvider port against Stripe.
// The rest of the system only ever sees amount+currency in and a client
// secret out; gateway specifics stay behind this boundary.
package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeProvider creates payment intents via the Stripe API.
type StripeProvider struct {
	api *client.API
	log zerolog.Logger
}

// NewStripeProvider builds a provider from the secret key. The key is
// validated for presence at startup, not per request.
func NewStripeProvider(secretKey string, log zerolog.Logger) (*StripeProvider, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe: secret key is required")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api, log: log}, nil
}

// CreateIntent creates a card payment intent and returns its client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.log.Error().Err(err).Int64("amount", amount).Str("currency", currency).Msg("payment intent creation failed")
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	p.log.Info().Str("intent_id", intent.ID).Msg("payment intent created")
	return intent.ClientSecret, nil
}
