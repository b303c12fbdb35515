package db

import (
	"context"

	"tipton-reservations/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// InsertBooking → insert new booking row
func (d *DB) InsertBooking(ctx context.Context, booking *models.Booking) error {
	_, err := d.Bun.NewInsert().Model(booking).Exec(ctx)
	return err
}

// GetBookingByID → fetch one booking by its ID
func (d *DB) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookingByConfirmationNumber → fetch one booking by confirmation number
func (d *DB) GetBookingByConfirmationNumber(ctx context.Context, confirmationNumber string) (*models.Booking, error) {
	var booking models.Booking
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("confirmation_number = ?", confirmationNumber).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBooking → update mutable fields
func (d *DB) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	_, err := d.Bun.NewUpdate().
		Model(booking).
		Column("room_id", "check_in_date", "check_out_date", "number_of_guests",
			"total_price", "status", "payment_id", "updated_at").
		Where("id = ?", booking.ID).
		Exec(ctx)
	return err
}

// ListBookingsByUser → all bookings for a user, newest first
func (d *DB) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListAllBookings → every booking, newest first
func (d *DB) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ExistsByConfirmationNumber → uniqueness probe for confirmation numbers
func (d *DB) ExistsByConfirmationNumber(ctx context.Context, confirmationNumber string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Booking)(nil)).
		Where("confirmation_number = ?", confirmationNumber).
		Exists(ctx)
}
