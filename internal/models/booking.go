package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingVoided    BookingStatus = "VOIDED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Terminal reports whether a booking can leave this status.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCancelled, BookingVoided, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID                 string        `bun:"id,pk" json:"id"`
	UserID             string        `bun:"user_id,notnull" json:"user_id"`
	RoomTypeID         string        `bun:"room_type_id,notnull" json:"room_type_id"`
	RoomID             string        `bun:"room_id,nullzero" json:"room_id"`
	CheckInDate        time.Time     `bun:"check_in_date,notnull" json:"check_in_date"`
	CheckOutDate       time.Time     `bun:"check_out_date,notnull" json:"check_out_date"`
	NumberOfGuests     int           `bun:"number_of_guests,notnull" json:"number_of_guests"`
	TotalPrice         float64       `bun:"total_price,notnull" json:"total_price"`
	Status             BookingStatus `bun:"status,notnull" json:"status"`
	ConfirmationNumber string        `bun:"confirmation_number,unique,notnull" json:"confirmation_number"`
	PaymentID          string        `bun:"payment_id,nullzero" json:"payment_id,omitempty"`
	CreatedAt          time.Time     `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt          time.Time     `bun:"updated_at,nullzero" json:"updated_at,omitempty"`
}

type CreateBookingRequest struct {
	RoomTypeID     string `json:"room_type_id"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
}

type ModifyBookingRequest struct {
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
}

type ConfirmBookingRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
