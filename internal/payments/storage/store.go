package storage

import (
	"tipton-reservations/internal/models"
)

type Store interface {
	SavePayment(payment *models.Payment) error
	GetPayment(id string) (*models.Payment, error)
	GetPaymentByIntentID(intentID string) (*models.Payment, error)
	UpdatePayment(payment *models.Payment) error
	ListPaymentsByBooking(bookingID string) ([]*models.Payment, error)

	Close() error
	HealthCheck() error
}
