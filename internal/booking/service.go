// Package booking sequences the reservation engine: it drives the
// availability index, the booking ledger and the payment reconciler through
// create, confirm, modify, cancel and void, enforcing date, occupancy and
// timing policy along the way.
package booking

import (
	"context"
	"fmt"
	"time"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/auth"
	"tipton-reservations/internal/ledger"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"
)

type Ledger interface {
	ValidateDateRange(checkIn, checkOut time.Time) error
	CreatePending(ctx context.Context, booking *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	GetByConfirmationNumber(ctx context.Context, confirmationNumber string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	Confirm(ctx context.Context, booking *models.Booking, paymentIntentID string) error
	Void(ctx context.Context, booking *models.Booking) error
	EnsureCancellable(booking *models.Booking) error
	EnsureModifiable(booking *models.Booking) error
	MarkCancelled(booking *models.Booking) error
	SaveWithRetry(ctx context.Context, booking *models.Booking, failureContext string) error
}

type Availability interface {
	FindAvailableRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*models.Room, error)
	RoomFreeForBooking(ctx context.Context, roomID, bookingID string, checkIn, checkOut time.Time) (bool, error)
	FindAvailableRoomTypes(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]models.RoomTypeAvailability, error)
}

type Reconciler interface {
	CreateBookingIntent(ctx context.Context, booking *models.Booking) (*models.Intent, error)
	CreateSurchargeIntent(ctx context.Context, booking *models.Booking, amount float64) (*models.Intent, error)
	VerifyIntent(ctx context.Context, intentID string, expectedAmount float64) (*models.Intent, error)
	RecordPayment(ctx context.Context, booking *models.Booking, intentID string, amount float64) error
	ApplyPriceDelta(ctx context.Context, booking *models.Booking, delta float64, surchargeIntentID string) error
	Refund(ctx context.Context, booking *models.Booking, refundAmount float64) error
}

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
}

type RoomTypeCatalog interface {
	FindByID(ctx context.Context, id string) (*models.RoomType, error)
}

type EventPublisher interface {
	PublishBookingCreated(booking models.Booking) error
	PublishBookingConfirmed(booking models.Booking) error
	PublishBookingModified(booking models.Booking) error
	PublishBookingCancelled(booking models.Booking) error
	PublishBookingVoided(booking models.Booking) error
}

type Service struct {
	Ledger       Ledger
	Availability Availability
	Payments     Reconciler
	Users        UserDirectory
	RoomTypes    RoomTypeCatalog
	Events       EventPublisher
	Logger       *logger.Logger
}

func NewService(l Ledger, a Availability, p Reconciler, u UserDirectory, rt RoomTypeCatalog, e EventPublisher, log *logger.Logger) *Service {
	return &Service{
		Ledger:       l,
		Availability: a,
		Payments:     p,
		Users:        u,
		RoomTypes:    rt,
		Events:       e,
		Logger:       log,
	}
}

type CreateBookingParams struct {
	RoomTypeID     string
	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfGuests int
}

type ModifyBookingParams struct {
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	PaymentIntentID string
}

// authorize is the ownership predicate every state-changing call runs first:
// the caller must own the booking or be an admin.
func (s *Service) authorize(ac auth.Context, ownerID string) error {
	if ac.IsAdmin || ac.CallerID == ownerID {
		return nil
	}
	return apperr.Forbidden("caller %s is not allowed to access this booking", ac.CallerID)
}

// CreateBooking allocates a room, prices the stay and persists a PENDING
// booking awaiting payment.
func (s *Service) CreateBooking(ctx context.Context, ac auth.Context, params CreateBookingParams) (*models.Booking, error) {
	if err := s.Ledger.ValidateDateRange(params.CheckInDate, params.CheckOutDate); err != nil {
		return nil, err
	}

	user, err := s.Users.FindByID(ctx, ac.CallerID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("user account %s is not active", user.ID)
	}

	roomType, err := s.RoomTypes.FindByID(ctx, params.RoomTypeID)
	if err != nil {
		return nil, err
	}

	if params.NumberOfGuests < 1 {
		return nil, apperr.Validation("number of guests must be at least 1")
	}
	if params.NumberOfGuests > roomType.MaxOccupancy {
		return nil, apperr.Validation("number of guests (%d) exceeds maximum occupancy (%d) for this room type",
			params.NumberOfGuests, roomType.MaxOccupancy)
	}

	room, err := s.Availability.FindAvailableRoom(ctx, params.RoomTypeID, params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:         ac.CallerID,
		RoomTypeID:     params.RoomTypeID,
		RoomID:         room.ID,
		CheckInDate:    params.CheckInDate,
		CheckOutDate:   params.CheckOutDate,
		NumberOfGuests: params.NumberOfGuests,
		TotalPrice:     ledger.TotalPrice(roomType.BasePrice, params.CheckInDate, params.CheckOutDate),
	}

	if err := s.Ledger.CreatePending(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.Events.PublishBookingCreated(*booking); err != nil {
		s.Logger.Warn("EVENTS", fmt.Sprintf("failed to publish booking created event for %s: %v", booking.ID, err))
	}

	return booking, nil
}

// GetBooking returns a booking the caller owns (or any booking, for admins).
func (s *Service) GetBooking(ctx context.Context, ac auth.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) GetBookingByConfirmationNumber(ctx context.Context, ac auth.Context, confirmationNumber string) (*models.Booking, error) {
	booking, err := s.Ledger.GetByConfirmationNumber(ctx, confirmationNumber)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) ListUserBookings(ctx context.Context, ac auth.Context, userID string) ([]models.Booking, error) {
	if err := s.authorize(ac, userID); err != nil {
		return nil, err
	}
	return s.Ledger.ListByUser(ctx, userID)
}

// ListAllBookings is admin-only.
func (s *Service) ListAllBookings(ctx context.Context, ac auth.Context) ([]models.Booking, error) {
	if !ac.IsAdmin {
		return nil, apperr.Forbidden("caller %s is not allowed to list all bookings", ac.CallerID)
	}
	return s.Ledger.ListAll(ctx)
}

// FindAvailableRoomTypes lists room types bookable for the date range and
// guest count. No authorization: browsing is open to any signed-in user.
func (s *Service) FindAvailableRoomTypes(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]models.RoomTypeAvailability, error) {
	if err := s.Ledger.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}
	if guests < 1 {
		return nil, apperr.Validation("number of guests must be at least 1")
	}
	return s.Availability.FindAvailableRoomTypes(ctx, checkIn, checkOut, guests)
}

// CreatePaymentIntent opens the gateway intent for a PENDING booking's full
// price and hands back the client secret.
func (s *Service) CreatePaymentIntent(ctx context.Context, ac auth.Context, bookingID string) (*models.Intent, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, apperr.Conflict("can only create a payment intent for PENDING bookings, current status: %s", booking.Status)
	}
	return s.Payments.CreateBookingIntent(ctx, booking)
}

// ConfirmBooking verifies the payment with the gateway, then moves the
// booking to CONFIRMED and records the Payment row. Confirming twice with
// the same reference records at most one row.
func (s *Service) ConfirmBooking(ctx context.Context, ac auth.Context, bookingID, paymentIntentID string) (*models.Booking, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, apperr.Conflict("can only confirm bookings with PENDING status, current status: %s", booking.Status)
	}

	if _, err := s.Payments.VerifyIntent(ctx, paymentIntentID, booking.TotalPrice); err != nil {
		return nil, err
	}

	if err := s.Ledger.Confirm(ctx, booking, paymentIntentID); err != nil {
		return nil, err
	}

	if err := s.Payments.RecordPayment(ctx, booking, paymentIntentID, booking.TotalPrice); err != nil {
		return nil, err
	}

	if err := s.Events.PublishBookingConfirmed(*booking); err != nil {
		s.Logger.Warn("EVENTS", fmt.Sprintf("failed to publish booking confirmed event for %s: %v", booking.ID, err))
	}

	return booking, nil
}

// ModifyBooking re-dates a CONFIRMED booking, re-prices it and reconciles
// the price delta: refunds when cheaper, a verified surcharge when dearer.
func (s *Service) ModifyBooking(ctx context.Context, ac auth.Context, bookingID string, params ModifyBookingParams) (*models.Booking, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}

	newTotal, err := s.computeNewTotal(ctx, booking, params.CheckInDate, params.CheckOutDate, params.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	oldTotal := booking.TotalPrice
	delta := newTotal - oldTotal

	if err := s.Payments.ApplyPriceDelta(ctx, booking, delta, params.PaymentIntentID); err != nil {
		return nil, err
	}

	booking.CheckInDate = params.CheckInDate
	booking.CheckOutDate = params.CheckOutDate
	booking.NumberOfGuests = params.NumberOfGuests
	booking.TotalPrice = newTotal

	if err := s.Ledger.SaveWithRetry(ctx, booking,
		"failed to update booking after processing modification payments"); err != nil {
		return nil, err
	}

	s.Logger.LogBooking("MODIFY", booking.ID,
		fmt.Sprintf("re-priced from %.2f to %.2f (delta %.2f)", oldTotal, newTotal, delta))

	if err := s.Events.PublishBookingModified(*booking); err != nil {
		s.Logger.Warn("EVENTS", fmt.Sprintf("failed to publish booking modified event for %s: %v", booking.ID, err))
	}

	return booking, nil
}

// CreateModifyPaymentIntent computes the would-be delta for a modification
// without committing anything, and opens a surcharge intent only when the
// new stay costs more.
func (s *Service) CreateModifyPaymentIntent(ctx context.Context, ac auth.Context, bookingID string, params ModifyBookingParams) (*models.Intent, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}

	newTotal, err := s.computeNewTotal(ctx, booking, params.CheckInDate, params.CheckOutDate, params.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	delta := newTotal - booking.TotalPrice
	if delta <= 0 {
		return nil, apperr.Validation("no additional payment is required for the selected dates")
	}

	return s.Payments.CreateSurchargeIntent(ctx, booking, delta)
}

// CancelBooking refunds a CONFIRMED booking in full and marks it CANCELLED,
// subject to the 24-hour hotel-local cutoff.
func (s *Service) CancelBooking(ctx context.Context, ac auth.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}

	if err := s.Ledger.EnsureCancellable(booking); err != nil {
		return nil, err
	}

	if err := s.Payments.Refund(ctx, booking, booking.TotalPrice); err != nil {
		return nil, err
	}

	if err := s.Ledger.MarkCancelled(booking); err != nil {
		return nil, err
	}

	if err := s.Ledger.SaveWithRetry(ctx, booking,
		"refund processed but booking cancellation could not be saved"); err != nil {
		return nil, err
	}

	s.Logger.LogBooking("CANCEL", booking.ID,
		fmt.Sprintf("booking %s cancelled, %.2f refunded", booking.ConfirmationNumber, booking.TotalPrice))

	if err := s.Events.PublishBookingCancelled(*booking); err != nil {
		s.Logger.Warn("EVENTS", fmt.Sprintf("failed to publish booking cancelled event for %s: %v", booking.ID, err))
	}

	return booking, nil
}

// VoidBooking abandons a PENDING booking that never got paid.
func (s *Service) VoidBooking(ctx context.Context, ac auth.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Ledger.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ac, booking.UserID); err != nil {
		return nil, err
	}

	if err := s.Ledger.Void(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.Events.PublishBookingVoided(*booking); err != nil {
		s.Logger.Warn("EVENTS", fmt.Sprintf("failed to publish booking voided event for %s: %v", booking.ID, err))
	}

	return booking, nil
}

// computeNewTotal validates a proposed modification end to end and returns
// the re-priced total. Nothing is persisted here; both the dry-run intent
// path and the committing modify path share it.
func (s *Service) computeNewTotal(ctx context.Context, booking *models.Booking, checkIn, checkOut time.Time, guests int) (float64, error) {
	if err := s.Ledger.EnsureModifiable(booking); err != nil {
		return 0, err
	}
	if err := s.Ledger.ValidateDateRange(checkIn, checkOut); err != nil {
		return 0, err
	}

	if booking.RoomID != "" {
		free, err := s.Availability.RoomFreeForBooking(ctx, booking.RoomID, booking.ID, checkIn, checkOut)
		if err != nil {
			return 0, err
		}
		if !free {
			return 0, apperr.Conflict("the assigned room is not available for the new dates")
		}
	}

	roomType, err := s.RoomTypes.FindByID(ctx, booking.RoomTypeID)
	if err != nil {
		return 0, err
	}

	if guests < 1 {
		return 0, apperr.Validation("number of guests must be at least 1")
	}
	if guests > roomType.MaxOccupancy {
		return 0, apperr.Validation("number of guests (%d) exceeds maximum occupancy (%d) for this room type",
			guests, roomType.MaxOccupancy)
	}

	return ledger.TotalPrice(roomType.BasePrice, checkIn, checkOut), nil
}
