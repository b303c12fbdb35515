// Package payments reconciles booking money against the external gateway:
// verifying charges, recording Payment rows, and splitting refunds across
// however many rows a booking has accumulated.
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"
	"tipton-reservations/internal/payments/storage"

	"github.com/google/uuid"
)

const intentStatusSucceeded = "succeeded"

type Reconciler struct {
	Gateway  PaymentGateway
	Store    storage.Store
	Logger   *logger.Logger
	Currency string
}

func NewReconciler(gateway PaymentGateway, store storage.Store, log *logger.Logger, currency string) *Reconciler {
	return &Reconciler{Gateway: gateway, Store: store, Logger: log, Currency: currency}
}

// MinorUnits converts a price to the gateway's integer minor units by
// truncation. No rounding: verification demands exact equality.
func MinorUnits(amount float64) int64 {
	return int64(amount * 100)
}

// CreateBookingIntent opens a payment intent for a booking's full price,
// tagged with the booking id and confirmation number.
func (r *Reconciler) CreateBookingIntent(ctx context.Context, booking *models.Booking) (*models.Intent, error) {
	return r.Gateway.CreateIntent(ctx, MinorUnits(booking.TotalPrice), r.Currency, map[string]string{
		"bookingId":          booking.ID,
		"confirmationNumber": booking.ConfirmationNumber,
	})
}

// CreateSurchargeIntent opens an intent for a modification's price increase.
func (r *Reconciler) CreateSurchargeIntent(ctx context.Context, booking *models.Booking, amount float64) (*models.Intent, error) {
	return r.Gateway.CreateIntent(ctx, MinorUnits(amount), r.Currency, map[string]string{
		"bookingId":          booking.ID,
		"confirmationNumber": booking.ConfirmationNumber,
		"reason":             "MODIFY_BOOKING",
	})
}

// VerifyIntent retrieves an intent and requires it to have succeeded for
// exactly the expected amount in minor units.
func (r *Reconciler) VerifyIntent(ctx context.Context, intentID string, expectedAmount float64) (*models.Intent, error) {
	intent, err := r.Gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindPaymentVerification,
			"failed to verify payment with gateway: %v", err)
	}

	if intent.Status != intentStatusSucceeded {
		return nil, apperr.PaymentVerification(
			"payment not confirmed by gateway, payment status: %s", intent.Status)
	}

	expectedMinor := MinorUnits(expectedAmount)
	if intent.Amount != expectedMinor {
		return nil, apperr.PaymentVerification(
			"payment amount mismatch, expected: %d minor units, got: %d minor units",
			expectedMinor, intent.Amount)
	}

	return intent, nil
}

// RecordPayment persists a COMPLETED Payment row for an external reference,
// unless one already exists for it. Duplicate confirms land here twice; only
// the first insert wins.
func (r *Reconciler) RecordPayment(ctx context.Context, booking *models.Booking, intentID string, amount float64) error {
	existing, err := r.Store.GetPaymentByIntentID(intentID)
	if err != nil && !errors.Is(err, storage.ErrPaymentNotFound) {
		return fmt.Errorf("idempotency check failed for intent %s: %w", intentID, err)
	}
	if existing != nil {
		r.Logger.LogPayment("SKIP", intentID, "payment row already recorded for this reference")
		return nil
	}

	payment := &models.Payment{
		PaymentID:       uuid.NewString(),
		BookingID:       booking.ID,
		UserID:          booking.UserID,
		PaymentIntentID: intentID,
		Amount:          amount,
		Currency:        r.Currency,
		Status:          models.PaymentCompleted,
		CreatedAt:       time.Now().UTC(),
	}

	if err := r.Store.SavePayment(payment); err != nil {
		return apperr.FatalReconciliation(
			"payment captured but could not be recorded, please contact support with booking confirmation: %s",
			booking.ConfirmationNumber)
	}

	r.Logger.LogPayment("RECORD", intentID,
		fmt.Sprintf("recorded %.2f %s for booking %s", amount, r.Currency, booking.ID))
	return nil
}

// ApplyPriceDelta reconciles a modification's price change against the
// gateway. delta = newTotal - oldTotal.
func (r *Reconciler) ApplyPriceDelta(ctx context.Context, booking *models.Booking, delta float64, surchargeIntentID string) error {
	switch {
	case delta == 0:
		return nil

	case delta > 0:
		if surchargeIntentID == "" {
			return apperr.Validation("additional payment is required to extend this booking")
		}
		if _, err := r.VerifyIntent(ctx, surchargeIntentID, delta); err != nil {
			return err
		}
		return r.RecordPayment(ctx, booking, surchargeIntentID, delta)

	default:
		return r.Refund(ctx, booking, -delta)
	}
}

// Refund issues refundAmount against a booking's payments, walking the rows
// most-recent-first and drawing from each until the amount is covered. The
// bookkeeping runs in minor units so coverage checks are exact.
func (r *Reconciler) Refund(ctx context.Context, booking *models.Booking, refundAmount float64) error {
	if refundAmount <= 0 {
		return nil
	}

	payments, err := r.Store.ListPaymentsByBooking(booking.ID)
	if err != nil {
		return fmt.Errorf("failed to load payments for booking %s: %w", booking.ID, err)
	}

	remaining := MinorUnits(refundAmount)

	for _, payment := range payments {
		if remaining <= 0 {
			break
		}
		if payment.Status == models.PaymentRefunded || payment.Status == models.PaymentFailed {
			continue
		}

		rowRemaining := MinorUnits(payment.Amount) - MinorUnits(payment.RefundedAmount)
		if rowRemaining <= 0 {
			continue
		}

		refundForPayment := remaining
		if rowRemaining < refundForPayment {
			refundForPayment = rowRemaining
		}

		if _, err := r.Gateway.CreateRefund(ctx, payment.PaymentIntentID, &refundForPayment); err != nil {
			r.Logger.Error("PAYMENT", fmt.Sprintf("gateway refund failed for booking %s: %v", booking.ID, err))
			return apperr.FatalReconciliation(
				"failed to process refund, please contact support with booking confirmation: %s",
				booking.ConfirmationNumber)
		}

		payment.RefundedAmount += float64(refundForPayment) / 100
		payment.RefundedAt = time.Now().UTC()
		if MinorUnits(payment.RefundedAmount) >= MinorUnits(payment.Amount) {
			payment.Status = models.PaymentRefunded
		} else {
			payment.Status = models.PaymentPartiallyRefunded
		}

		if err := r.Store.UpdatePayment(payment); err != nil {
			r.Logger.Error("PAYMENT", fmt.Sprintf("refund issued but row update failed for %s: %v", payment.PaymentID, err))
			return apperr.FatalReconciliation(
				"refund issued but could not be recorded, please contact support with booking confirmation: %s",
				booking.ConfirmationNumber)
		}

		remaining -= refundForPayment
	}

	// Legacy bookings confirmed before per-charge rows existed carry only a
	// direct payment reference; try one catch-all refund there.
	if remaining > 0 && len(payments) == 0 && booking.PaymentID != "" {
		if _, err := r.Gateway.CreateRefund(ctx, booking.PaymentID, &remaining); err != nil {
			r.Logger.Error("PAYMENT", fmt.Sprintf("catch-all refund failed for booking %s: %v", booking.ID, err))
			return apperr.FatalReconciliation(
				"failed to process refund, please contact support with booking confirmation: %s",
				booking.ConfirmationNumber)
		}
		remaining = 0
	}

	if remaining > 0 {
		return apperr.FatalReconciliation(
			"unable to process full refund, please contact support with booking confirmation: %s",
			booking.ConfirmationNumber)
	}

	r.Logger.LogPayment("REFUND", booking.ID,
		fmt.Sprintf("refunded %.2f %s across %d payment rows", refundAmount, r.Currency, len(payments)))
	return nil
}
