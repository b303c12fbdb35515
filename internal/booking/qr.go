package booking

import (
	"context"
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/auth"
	"tipton-reservations/internal/models"
	"tipton-reservations/internal/utils"
)

type confirmationPayload struct {
	ConfirmationNumber string `json:"confirmation_number"`
	CheckInDate        string `json:"check_in_date"`
	CheckOutDate       string `json:"check_out_date"`
	NumberOfGuests     int    `json:"number_of_guests"`
}

// ConfirmationQR renders a check-in QR code for a CONFIRMED booking.
func (s *Service) ConfirmationQR(ctx context.Context, ac auth.Context, bookingID string) ([]byte, error) {
	booking, err := s.GetBooking(ctx, ac, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingConfirmed {
		return nil, apperr.Conflict("QR codes are only issued for CONFIRMED bookings, current status: %s", booking.Status)
	}

	payload := confirmationPayload{
		ConfirmationNumber: booking.ConfirmationNumber,
		CheckInDate:        utils.FormatDate(booking.CheckInDate),
		CheckOutDate:       utils.FormatDate(booking.CheckOutDate),
		NumberOfGuests:     booking.NumberOfGuests,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(string(data), qrcode.Medium, 256)
}
