package payments

import (
	"context"
	"errors"
	"fmt"

	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrStripeClientInitFailed = errors.New("failed to initialize Stripe client")

// StripeGateway is the Stripe-backed PaymentGateway.
type StripeGateway struct {
	client *client.API
	log    *logger.Logger
}

func NewStripeGateway(secretKey string, log *logger.Logger) (*StripeGateway, error) {
	if secretKey == "" {
		log.Error("STRIPE", "Stripe secret key is not configured")
		return nil, ErrStripeClientInitFailed
	}

	sc := client.New(secretKey, nil)
	if sc == nil {
		log.Error("STRIPE", "Failed to initialize Stripe client")
		return nil, ErrStripeClientInitFailed
	}

	log.Info("STRIPE", "Stripe client initialized successfully")
	return &StripeGateway{client: sc, log: log}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*models.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("STRIPE", fmt.Sprintf("Failed to create payment intent: %v", err))
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	g.log.LogPayment("INTENT", pi.ID, fmt.Sprintf("created for %d %s", amountMinorUnits, currency))
	return &models.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*models.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.Get(intentID, params)
	if err != nil {
		g.log.Error("STRIPE", fmt.Sprintf("Failed to retrieve payment intent %s: %v", intentID, err))
		return nil, fmt.Errorf("stripe payment intent retrieval failed: %w", err)
	}

	return &models.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

func (g *StripeGateway) CreateRefund(ctx context.Context, intentID string, amountMinorUnits *int64) (*models.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	}
	params.Context = ctx
	if amountMinorUnits != nil {
		params.Amount = stripe.Int64(*amountMinorUnits)
	}

	refund, err := g.client.Refunds.New(params)
	if err != nil {
		g.log.Error("STRIPE", fmt.Sprintf("Failed to create refund for intent %s: %v", intentID, err))
		return nil, fmt.Errorf("stripe refund creation failed: %w", err)
	}

	g.log.LogPayment("REFUND", refund.ID, fmt.Sprintf("issued against intent %s", intentID))
	return &models.Refund{
		ID:     refund.ID,
		Status: string(refund.Status),
		Amount: refund.Amount,
	}, nil
}
