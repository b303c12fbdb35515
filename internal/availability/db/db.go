package db

import (
	"context"
	"time"

	"tipton-reservations/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// RoomsByType returns every room of the given type in stable id order. The
// deterministic order is what makes room allocation reproducible.
func (d *DB) RoomsByType(ctx context.Context, roomTypeID string) ([]models.Room, error) {
	var rooms []models.Room
	err := d.Bun.NewSelect().
		Model(&rooms).
		Where("room_type_id = ?", roomTypeID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// BookedRoomIDs returns the ids of rooms of this type that have a PENDING or
// CONFIRMED booking overlapping the half-open range [checkIn, checkOut).
func (d *DB) BookedRoomIDs(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]string, error) {
	var roomIDs []string
	err := d.Bun.NewSelect().
		Column("room_id").
		Table("bookings").
		Where("room_type_id = ?", roomTypeID).
		Where("status IN (?)", bun.In([]string{string(models.BookingPending), string(models.BookingConfirmed)})).
		Where("check_in_date < ?", checkOut).
		Where("check_out_date > ?", checkIn).
		Where("room_id IS NOT NULL").
		Scan(ctx, &roomIDs)
	if err != nil {
		return nil, err
	}
	return roomIDs, nil
}

// OverlappingBookings returns PENDING or CONFIRMED bookings for one room that
// overlap [checkIn, checkOut).
func (d *DB) OverlappingBookings(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("room_id = ?", roomID).
		Where("status IN (?)", bun.In([]string{string(models.BookingPending), string(models.BookingConfirmed)})).
		Where("check_in_date < ?", checkOut).
		Where("check_out_date > ?", checkIn).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ActiveRoomTypes returns room types open for sale, in stable name order.
func (d *DB) ActiveRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := d.Bun.NewSelect().
		Model(&roomTypes).
		Where("active = ?", true).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}
