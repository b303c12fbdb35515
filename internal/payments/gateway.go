package payments

import (
	"context"

	"tipton-reservations/internal/models"
)

// PaymentGateway abstracts the upstream payment provider so reconciliation
// stays provider-independent. Amounts cross this boundary in minor units.
type PaymentGateway interface {
	// CreateIntent authorizes a new charge and returns its id plus the
	// client secret the frontend completes the payment with.
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*models.Intent, error)

	// RetrieveIntent fetches the current gateway-side state of a charge.
	RetrieveIntent(ctx context.Context, intentID string) (*models.Intent, error)

	// CreateRefund refunds against an intent. A nil amount means a full
	// refund of whatever the intent captured.
	CreateRefund(ctx context.Context, intentID string, amountMinorUnits *int64) (*models.Refund, error)
}
