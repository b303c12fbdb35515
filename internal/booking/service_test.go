package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/auth"
	"tipton-reservations/internal/booking"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"
)

// Mock implementations
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) ValidateDateRange(checkIn, checkOut time.Time) error {
	args := m.Called(checkIn, checkOut)
	return args.Error(0)
}

func (m *MockLedger) CreatePending(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockLedger) Get(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockLedger) GetByConfirmationNumber(ctx context.Context, confirmationNumber string) (*models.Booking, error) {
	args := m.Called(ctx, confirmationNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockLedger) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockLedger) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockLedger) Confirm(ctx context.Context, b *models.Booking, paymentIntentID string) error {
	args := m.Called(ctx, b, paymentIntentID)
	return args.Error(0)
}

func (m *MockLedger) Void(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockLedger) EnsureCancellable(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockLedger) EnsureModifiable(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockLedger) MarkCancelled(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockLedger) SaveWithRetry(ctx context.Context, b *models.Booking, failureContext string) error {
	args := m.Called(ctx, b, failureContext)
	return args.Error(0)
}

type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) FindAvailableRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*models.Room, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockAvailability) RoomFreeForBooking(ctx context.Context, roomID, bookingID string, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, roomID, bookingID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailability) FindAvailableRoomTypes(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]models.RoomTypeAvailability, error) {
	args := m.Called(ctx, checkIn, checkOut, guests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoomTypeAvailability), args.Error(1)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) CreateBookingIntent(ctx context.Context, b *models.Booking) (*models.Intent, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Intent), args.Error(1)
}

func (m *MockReconciler) CreateSurchargeIntent(ctx context.Context, b *models.Booking, amount float64) (*models.Intent, error) {
	args := m.Called(ctx, b, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Intent), args.Error(1)
}

func (m *MockReconciler) VerifyIntent(ctx context.Context, intentID string, expectedAmount float64) (*models.Intent, error) {
	args := m.Called(ctx, intentID, expectedAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Intent), args.Error(1)
}

func (m *MockReconciler) RecordPayment(ctx context.Context, b *models.Booking, intentID string, amount float64) error {
	args := m.Called(ctx, b, intentID, amount)
	return args.Error(0)
}

func (m *MockReconciler) ApplyPriceDelta(ctx context.Context, b *models.Booking, delta float64, surchargeIntentID string) error {
	args := m.Called(ctx, b, delta, surchargeIntentID)
	return args.Error(0)
}

func (m *MockReconciler) Refund(ctx context.Context, b *models.Booking, refundAmount float64) error {
	args := m.Called(ctx, b, refundAmount)
	return args.Error(0)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserDirectory) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockRoomTypeCatalog struct {
	mock.Mock
}

func (m *MockRoomTypeCatalog) FindByID(ctx context.Context, id string) (*models.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RoomType), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingCreated(b models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBookingConfirmed(b models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBookingModified(b models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBookingCancelled(b models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBookingVoided(b models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

type mocks struct {
	ledger    *MockLedger
	avail     *MockAvailability
	payments  *MockReconciler
	users     *MockUserDirectory
	roomTypes *MockRoomTypeCatalog
	events    *MockEventPublisher
}

func newTestService() (*booking.Service, *mocks) {
	m := &mocks{
		ledger:    new(MockLedger),
		avail:     new(MockAvailability),
		payments:  new(MockReconciler),
		users:     new(MockUserDirectory),
		roomTypes: new(MockRoomTypeCatalog),
		events:    new(MockEventPublisher),
	}
	svc := booking.NewService(m.ledger, m.avail, m.payments, m.users, m.roomTypes, m.events, logger.NewTestLogger())
	return svc, m
}

func date(day int) time.Time {
	return time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
}

var guest = auth.Context{CallerID: "user123"}
var admin = auth.Context{CallerID: "admin-1", IsAdmin: true}

func activeUser() *models.User {
	return &models.User{ID: "user123", IsActive: true}
}

func queenRoomType() *models.RoomType {
	return &models.RoomType{ID: "rt-standard-queen", Name: "Standard Queen", BasePrice: 100.0, MaxOccupancy: 2, Active: true}
}

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:                 "booking-1",
		UserID:             "user123",
		RoomTypeID:         "rt-standard-queen",
		RoomID:             "room-101",
		CheckInDate:        date(10),
		CheckOutDate:       date(13),
		NumberOfGuests:     2,
		TotalPrice:         300.0,
		Status:             models.BookingConfirmed,
		ConfirmationNumber: "TIP-ABC123",
		PaymentID:          "pi_original",
	}
}

func TestCreateBookingPricesByNights(t *testing.T) {
	svc, m := newTestService()

	// 3 nights at 100.00 per night
	m.ledger.On("ValidateDateRange", date(10), date(13)).Return(nil)
	m.users.On("FindByID", mock.Anything, "user123").Return(activeUser(), nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)
	m.avail.On("FindAvailableRoom", mock.Anything, "rt-standard-queen", date(10), date(13)).
		Return(&models.Room{ID: "room-101", RoomTypeID: "rt-standard-queen", Status: models.RoomAvailable}, nil)
	m.ledger.On("CreatePending", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.TotalPrice == 300.0 && b.RoomID == "room-101" && b.UserID == "user123"
	})).Return(nil)
	m.events.On("PublishBookingCreated", mock.Anything).Return(nil)

	created, err := svc.CreateBooking(context.Background(), guest, booking.CreateBookingParams{
		RoomTypeID:     "rt-standard-queen",
		CheckInDate:    date(10),
		CheckOutDate:   date(13),
		NumberOfGuests: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 300.0, created.TotalPrice)
	assert.Equal(t, "room-101", created.RoomID)
	m.ledger.AssertExpectations(t)
}

func TestCreateBookingRejectsInactiveUser(t *testing.T) {
	svc, m := newTestService()

	m.ledger.On("ValidateDateRange", date(10), date(13)).Return(nil)
	m.users.On("FindByID", mock.Anything, "user123").
		Return(&models.User{ID: "user123", IsActive: false}, nil)

	_, err := svc.CreateBooking(context.Background(), guest, booking.CreateBookingParams{
		RoomTypeID:     "rt-standard-queen",
		CheckInDate:    date(10),
		CheckOutDate:   date(13),
		NumberOfGuests: 2,
	})

	assert.True(t, errors.Is(err, apperr.KindForbidden))
	m.ledger.AssertNotCalled(t, "CreatePending", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsOverOccupancy(t *testing.T) {
	svc, m := newTestService()

	m.ledger.On("ValidateDateRange", date(10), date(13)).Return(nil)
	m.users.On("FindByID", mock.Anything, "user123").Return(activeUser(), nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)

	_, err := svc.CreateBooking(context.Background(), guest, booking.CreateBookingParams{
		RoomTypeID:     "rt-standard-queen",
		CheckInDate:    date(10),
		CheckOutDate:   date(13),
		NumberOfGuests: 3,
	})

	assert.True(t, errors.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "maximum occupancy")
	m.avail.AssertNotCalled(t, "FindAvailableRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingSurfacesNoRoomsConflict(t *testing.T) {
	svc, m := newTestService()

	m.ledger.On("ValidateDateRange", date(10), date(13)).Return(nil)
	m.users.On("FindByID", mock.Anything, "user123").Return(activeUser(), nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)
	m.avail.On("FindAvailableRoom", mock.Anything, "rt-standard-queen", date(10), date(13)).
		Return(nil, apperr.Conflict("no rooms available"))

	_, err := svc.CreateBooking(context.Background(), guest, booking.CreateBookingParams{
		RoomTypeID:     "rt-standard-queen",
		CheckInDate:    date(10),
		CheckOutDate:   date(13),
		NumberOfGuests: 2,
	})

	assert.True(t, errors.Is(err, apperr.KindConflict))
}

func TestGetBookingOwnership(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)

	// Owner sees it
	found, err := svc.GetBooking(context.Background(), guest, "booking-1")
	assert.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)

	// A stranger does not
	_, err = svc.GetBooking(context.Background(), auth.Context{CallerID: "someone-else"}, "booking-1")
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	// An admin does
	found, err = svc.GetBooking(context.Background(), admin, "booking-1")
	assert.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
}

func TestListAllBookingsIsAdminOnly(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.ListAllBookings(context.Background(), guest)
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	m.ledger.On("ListAll", mock.Anything).Return([]models.Booking{*confirmedBooking()}, nil)
	bookings, err := svc.ListAllBookings(context.Background(), admin)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(bookings))
}

func TestConfirmBookingVerifiesBeforeTransition(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()
	b.Status = models.BookingPending
	b.PaymentID = ""

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.payments.On("VerifyIntent", mock.Anything, "pi_original", 300.0).
		Return(&models.Intent{ID: "pi_original", Status: "succeeded", Amount: 30000}, nil)
	m.ledger.On("Confirm", mock.Anything, b, "pi_original").Return(nil)
	m.payments.On("RecordPayment", mock.Anything, b, "pi_original", 300.0).Return(nil)
	m.events.On("PublishBookingConfirmed", mock.Anything).Return(nil)

	confirmed, err := svc.ConfirmBooking(context.Background(), guest, "booking-1", "pi_original")

	assert.NoError(t, err)
	assert.Equal(t, b.ID, confirmed.ID)
	m.payments.AssertExpectations(t)
	m.ledger.AssertExpectations(t)
}

func TestConfirmBookingRejectsFailedVerification(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()
	b.Status = models.BookingPending

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.payments.On("VerifyIntent", mock.Anything, "pi_short", 300.0).
		Return(nil, apperr.PaymentVerification("payment amount mismatch"))

	_, err := svc.ConfirmBooking(context.Background(), guest, "booking-1", "pi_short")

	assert.True(t, errors.Is(err, apperr.KindPaymentVerification))
	m.ledger.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	m.payments.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmBookingRejectsNonPending(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)

	_, err := svc.ConfirmBooking(context.Background(), guest, "booking-1", "pi_original")

	assert.True(t, errors.Is(err, apperr.KindConflict))
	m.payments.AssertNotCalled(t, "VerifyIntent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingRefundsThenSaves(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureCancellable", b).Return(nil)
	m.payments.On("Refund", mock.Anything, b, 300.0).Return(nil)
	m.ledger.On("MarkCancelled", b).Run(func(args mock.Arguments) {
		b.Status = models.BookingCancelled
	}).Return(nil)
	m.ledger.On("SaveWithRetry", mock.Anything, b, mock.AnythingOfType("string")).Return(nil)
	m.events.On("PublishBookingCancelled", mock.Anything).Return(nil)

	cancelled, err := svc.CancelBooking(context.Background(), guest, "booking-1")

	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	m.payments.AssertExpectations(t)
	m.ledger.AssertExpectations(t)
}

func TestCancelBookingStopsWhenCutoffFails(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureCancellable", b).
		Return(apperr.Validation("cancellations must be made at least 24 hours before check-in time"))

	_, err := svc.CancelBooking(context.Background(), guest, "booking-1")

	assert.True(t, errors.Is(err, apperr.KindValidation))
	m.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}

func TestModifyBookingAppliesDeltaBeforeSaving(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	// 3 nights becomes 5 nights: 300 -> 500, delta +200
	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureModifiable", b).Return(nil)
	m.ledger.On("ValidateDateRange", date(10), date(15)).Return(nil)
	m.avail.On("RoomFreeForBooking", mock.Anything, "room-101", "booking-1", date(10), date(15)).Return(true, nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)
	m.payments.On("ApplyPriceDelta", mock.Anything, b, 200.0, "pi_surcharge").Return(nil)
	m.ledger.On("SaveWithRetry", mock.Anything, b, mock.AnythingOfType("string")).Return(nil)
	m.events.On("PublishBookingModified", mock.Anything).Return(nil)

	modified, err := svc.ModifyBooking(context.Background(), guest, "booking-1", booking.ModifyBookingParams{
		CheckInDate:     date(10),
		CheckOutDate:    date(15),
		NumberOfGuests:  2,
		PaymentIntentID: "pi_surcharge",
	})

	assert.NoError(t, err)
	assert.Equal(t, 500.0, modified.TotalPrice)
	assert.Equal(t, date(15), modified.CheckOutDate)
	m.payments.AssertExpectations(t)
}

func TestModifyBookingRejectsOccupiedRoom(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureModifiable", b).Return(nil)
	m.ledger.On("ValidateDateRange", date(10), date(15)).Return(nil)
	m.avail.On("RoomFreeForBooking", mock.Anything, "room-101", "booking-1", date(10), date(15)).Return(false, nil)

	_, err := svc.ModifyBooking(context.Background(), guest, "booking-1", booking.ModifyBookingParams{
		CheckInDate:    date(10),
		CheckOutDate:   date(15),
		NumberOfGuests: 2,
	})

	assert.True(t, errors.Is(err, apperr.KindConflict))
	m.payments.AssertNotCalled(t, "ApplyPriceDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateModifyPaymentIntentRejectsNonPositiveDelta(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	// 3 nights becomes 2 nights: cheaper, no surcharge to collect
	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureModifiable", b).Return(nil)
	m.ledger.On("ValidateDateRange", date(10), date(12)).Return(nil)
	m.avail.On("RoomFreeForBooking", mock.Anything, "room-101", "booking-1", date(10), date(12)).Return(true, nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)

	_, err := svc.CreateModifyPaymentIntent(context.Background(), guest, "booking-1", booking.ModifyBookingParams{
		CheckInDate:    date(10),
		CheckOutDate:   date(12),
		NumberOfGuests: 2,
	})

	assert.True(t, errors.Is(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "no additional payment is required")
	m.payments.AssertNotCalled(t, "CreateSurchargeIntent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateModifyPaymentIntentOpensSurcharge(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("EnsureModifiable", b).Return(nil)
	m.ledger.On("ValidateDateRange", date(10), date(15)).Return(nil)
	m.avail.On("RoomFreeForBooking", mock.Anything, "room-101", "booking-1", date(10), date(15)).Return(true, nil)
	m.roomTypes.On("FindByID", mock.Anything, "rt-standard-queen").Return(queenRoomType(), nil)
	m.payments.On("CreateSurchargeIntent", mock.Anything, b, 200.0).
		Return(&models.Intent{ID: "pi_surcharge", ClientSecret: "secret_123"}, nil)

	intent, err := svc.CreateModifyPaymentIntent(context.Background(), guest, "booking-1", booking.ModifyBookingParams{
		CheckInDate:    date(10),
		CheckOutDate:   date(15),
		NumberOfGuests: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "secret_123", intent.ClientSecret)
}

func TestVoidBooking(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()
	b.Status = models.BookingPending

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)
	m.ledger.On("Void", mock.Anything, b).Return(nil)
	m.events.On("PublishBookingVoided", mock.Anything).Return(nil)

	_, err := svc.VoidBooking(context.Background(), guest, "booking-1")

	assert.NoError(t, err)
	m.ledger.AssertExpectations(t)
}

func TestCreatePaymentIntentRequiresPending(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)

	_, err := svc.CreatePaymentIntent(context.Background(), guest, "booking-1")

	assert.True(t, errors.Is(err, apperr.KindConflict))
	m.payments.AssertNotCalled(t, "CreateBookingIntent", mock.Anything, mock.Anything)
}

func TestStateChangesRequireOwnership(t *testing.T) {
	svc, m := newTestService()
	b := confirmedBooking()
	stranger := auth.Context{CallerID: "someone-else"}

	m.ledger.On("Get", mock.Anything, "booking-1").Return(b, nil)

	_, err := svc.CancelBooking(context.Background(), stranger, "booking-1")
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	_, err = svc.ModifyBooking(context.Background(), stranger, "booking-1", booking.ModifyBookingParams{
		CheckInDate:  date(10),
		CheckOutDate: date(15),
	})
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	_, err = svc.VoidBooking(context.Background(), stranger, "booking-1")
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	_, err = svc.ConfirmBooking(context.Background(), stranger, "booking-1", "pi_original")
	assert.True(t, errors.Is(err, apperr.KindForbidden))

	m.ledger.AssertNotCalled(t, "EnsureCancellable", mock.Anything)
	m.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}
