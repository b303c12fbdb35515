package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "PENDING"
	PaymentCompleted         PaymentStatus = "COMPLETED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
	PaymentFailed            PaymentStatus = "FAILED"
)

// Payment is one gateway charge recorded against a booking. A booking may own
// several rows: the initial charge plus one per modification surcharge.
type Payment struct {
	PaymentID       string        `json:"payment_id"`
	BookingID       string        `json:"booking_id"`
	UserID          string        `json:"user_id"`
	PaymentIntentID string        `json:"payment_intent_id"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	RefundedAmount  float64       `json:"refunded_amount"`
	RefundedAt      time.Time     `json:"refunded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at,omitempty"`
}

// Remaining is the refundable balance still held by this row.
func (p *Payment) Remaining() float64 {
	return p.Amount - p.RefundedAmount
}

// Intent is the gateway-side view of a charge, reduced to the fields
// reconciliation needs.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64 // minor units
	Currency     string
}

// Refund is the gateway's acknowledgement of a refund request.
type Refund struct {
	ID     string
	Status string
	Amount int64 // minor units
}
