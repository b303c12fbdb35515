// Package ledger owns Booking records: the payment-gated state machine,
// confirmation-number uniqueness and nightly pricing. It knows nothing about
// rooms or money movement; those belong to availability and payments.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"

	"github.com/google/uuid"
)

const (
	confirmationPrefix = "TIP-"
	saveAttempts       = 3
	cutoffHours        = 24
)

const cutoffTimeFormat = "Jan 2, 2006 at 3:04 PM MST"

type DBLayer interface {
	InsertBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	GetBookingByConfirmationNumber(ctx context.Context, confirmationNumber string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	ExistsByConfirmationNumber(ctx context.Context, confirmationNumber string) (bool, error)
}

type Service struct {
	DB     DBLayer
	Clock  *HotelClock
	Logger *logger.Logger
}

func NewService(db DBLayer, clock *HotelClock, log *logger.Logger) *Service {
	return &Service{DB: db, Clock: clock, Logger: log}
}

// ValidateDateRange rejects missing or inverted stay ranges.
func (s *Service) ValidateDateRange(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return apperr.Validation("check-in and check-out dates are required")
	}
	if !checkOut.After(checkIn) {
		return apperr.Validation("check-out date %s must be after check-in date %s",
			checkOut.Format("2006-01-02"), checkIn.Format("2006-01-02"))
	}
	return nil
}

// Nights is the integer day count between check-in and check-out. There is
// no partial-night billing.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// TotalPrice = basePrice × nights.
func TotalPrice(basePrice float64, checkIn, checkOut time.Time) float64 {
	return basePrice * float64(Nights(checkIn, checkOut))
}

// CreatePending validates the stay dates, stamps identity and confirmation
// number onto the booking and persists it as PENDING.
func (s *Service) CreatePending(ctx context.Context, booking *models.Booking) error {
	if err := s.ValidateDateRange(booking.CheckInDate, booking.CheckOutDate); err != nil {
		return err
	}
	if booking.CheckInDate.Before(s.Clock.Today()) {
		return apperr.Validation("check-in date %s must be today or in the future",
			booking.CheckInDate.Format("2006-01-02"))
	}

	confirmationNumber, err := s.NewConfirmationNumber(ctx)
	if err != nil {
		return err
	}

	booking.ID = uuid.NewString()
	booking.ConfirmationNumber = confirmationNumber
	booking.Status = models.BookingPending
	booking.CreatedAt = time.Now().UTC()

	if err := s.DB.InsertBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.LogBooking("CREATE", booking.ID,
		fmt.Sprintf("pending booking %s for user %s", booking.ConfirmationNumber, booking.UserID))
	return nil
}

// NewConfirmationNumber generates TIP- plus 6 uppercase alphanumerics from a
// random identifier, regenerating until the uniqueness probe passes.
func (s *Service) NewConfirmationNumber(ctx context.Context) (string, error) {
	for {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
		confirmationNumber := confirmationPrefix + code

		exists, err := s.DB.ExistsByConfirmationNumber(ctx, confirmationNumber)
		if err != nil {
			return "", fmt.Errorf("confirmation number uniqueness check failed: %w", err)
		}
		if !exists {
			return confirmationNumber, nil
		}
		s.Logger.Warn("LEDGER", fmt.Sprintf("confirmation number collision on %s, regenerating", confirmationNumber))
	}
}

func (s *Service) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking not found with ID: %s", id)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", id, err)
	}
	return booking, nil
}

func (s *Service) GetByConfirmationNumber(ctx context.Context, confirmationNumber string) (*models.Booking, error) {
	booking, err := s.DB.GetBookingByConfirmationNumber(ctx, confirmationNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("booking not found with confirmation number: %s", confirmationNumber)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", confirmationNumber, err)
	}
	return booking, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.DB.ListBookingsByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.DB.ListAllBookings(ctx)
}

// Confirm moves PENDING → CONFIRMED and links the verified payment
// reference. Any other source status is a conflict.
func (s *Service) Confirm(ctx context.Context, booking *models.Booking, paymentIntentID string) error {
	if booking.Status != models.BookingPending {
		return apperr.Conflict("can only confirm bookings with PENDING status, current status: %s", booking.Status)
	}

	booking.Status = models.BookingConfirmed
	booking.PaymentID = paymentIntentID
	booking.UpdatedAt = time.Now().UTC()

	if err := s.DB.UpdateBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to persist confirmation for booking %s: %w", booking.ID, err)
	}

	s.Logger.LogBooking("CONFIRM", booking.ID,
		fmt.Sprintf("booking %s confirmed", booking.ConfirmationNumber))
	return nil
}

// Void moves PENDING → VOIDED for abandoned checkouts.
func (s *Service) Void(ctx context.Context, booking *models.Booking) error {
	if booking.Status == models.BookingVoided {
		return apperr.Conflict("booking is already voided")
	}
	if booking.Status == models.BookingCancelled {
		return apperr.Conflict("cancelled bookings cannot be voided")
	}
	if booking.Status != models.BookingPending {
		return apperr.Conflict("only PENDING bookings can be voided, current status: %s", booking.Status)
	}

	booking.Status = models.BookingVoided
	booking.UpdatedAt = time.Now().UTC()

	if err := s.DB.UpdateBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to persist void for booking %s: %w", booking.ID, err)
	}

	s.Logger.LogBooking("VOID", booking.ID,
		fmt.Sprintf("booking %s voided", booking.ConfirmationNumber))
	return nil
}

// EnsureCancellable enforces the cancel edge: CONFIRMED only, and at least
// 24 hours before check-in in hotel-local time.
func (s *Service) EnsureCancellable(booking *models.Booking) error {
	if booking.Status != models.BookingConfirmed {
		return apperr.Conflict("only CONFIRMED bookings can be cancelled, current status: %s", booking.Status)
	}
	return s.ensureCutoff(booking, "cancellations")
}

// EnsureModifiable enforces the modify edge: CONFIRMED only, the 24-hour
// cutoff, and a stay that has not already started.
func (s *Service) EnsureModifiable(booking *models.Booking) error {
	if booking.Status != models.BookingConfirmed {
		return apperr.Conflict("can only modify confirmed bookings, current status: %s", booking.Status)
	}
	if err := s.ensureCutoff(booking, "modifications"); err != nil {
		return err
	}
	if !booking.CheckInDate.After(s.Clock.Today()) {
		return apperr.Validation("cannot modify a booking that has already started or is starting today")
	}
	return nil
}

func (s *Service) ensureCutoff(booking *models.Booking, operation string) error {
	if s.Clock.HoursUntilCheckIn(booking.CheckInDate) < cutoffHours {
		checkInAt := s.Clock.CheckInAt(booking.CheckInDate)
		return apperr.Validation(
			"%s must be made at least %d hours before check-in time (hotel local time), check-in is at %s",
			operation, cutoffHours, checkInAt.Format(cutoffTimeFormat))
	}
	return nil
}

// MarkCancelled flips a CONFIRMED booking to CANCELLED in memory. The caller
// persists it, usually via SaveWithRetry after the refund has gone out.
func (s *Service) MarkCancelled(booking *models.Booking) error {
	if booking.Status != models.BookingConfirmed {
		return apperr.Conflict("only CONFIRMED bookings can be cancelled, current status: %s", booking.Status)
	}
	booking.Status = models.BookingCancelled
	return nil
}

// SaveWithRetry persists a booking after money has already moved externally.
// The write is attempted up to three times; if all fail the error is fatal
// and instructs manual reconciliation using the confirmation number.
func (s *Service) SaveWithRetry(ctx context.Context, booking *models.Booking, failureContext string) error {
	booking.UpdatedAt = time.Now().UTC()

	var lastErr error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		lastErr = s.DB.UpdateBooking(ctx, booking)
		if lastErr == nil {
			return nil
		}
	}

	s.Logger.Error("LEDGER", fmt.Sprintf("booking save failed after %d attempts for %s: %v",
		saveAttempts, booking.ID, lastErr))
	return apperr.FatalReconciliation(
		"%s, please contact support with booking confirmation: %s",
		failureContext, booking.ConfirmationNumber)
}
