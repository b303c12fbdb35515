// Package availability answers one question: which physical room, if any,
// can host a stay. A room qualifies when its own status is AVAILABLE and no
// PENDING or CONFIRMED booking overlaps the requested half-open date range.
package availability

import (
	"context"
	"fmt"
	"time"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"
)

type DBLayer interface {
	RoomsByType(ctx context.Context, roomTypeID string) ([]models.Room, error)
	BookedRoomIDs(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]string, error)
	OverlappingBookings(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]models.Booking, error)
	ActiveRoomTypes(ctx context.Context) ([]models.RoomType, error)
}

// ListingCache caches the derived room-type availability listing. It never
// holds Booking, Payment or Room records themselves.
type ListingCache interface {
	GetListing(ctx context.Context, key string) ([]models.RoomTypeAvailability, bool)
	SetListing(ctx context.Context, key string, listing []models.RoomTypeAvailability)
}

type Service struct {
	DB     DBLayer
	Cache  ListingCache
	Logger *logger.Logger
}

func NewService(db DBLayer, cache ListingCache, log *logger.Logger) *Service {
	return &Service{DB: db, Cache: cache, Logger: log}
}

// FindAvailableRoom picks the first qualifying room of the type, in stable id
// order. First-fit is deliberate: allocation is reproducible, not balanced.
func (s *Service) FindAvailableRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*models.Room, error) {
	rooms, err := s.DB.RoomsByType(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms for type %s: %w", roomTypeID, err)
	}

	bookedIDs, err := s.DB.BookedRoomIDs(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked rooms for type %s: %w", roomTypeID, err)
	}

	booked := make(map[string]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	for i := range rooms {
		room := &rooms[i]
		if room.Status != models.RoomAvailable {
			continue
		}
		if booked[room.ID] {
			continue
		}
		return room, nil
	}

	return nil, apperr.Conflict(
		"no rooms available for room type %s between %s and %s",
		roomTypeID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
}

// CountAvailable counts rooms of the type free over [checkIn, checkOut).
func (s *Service) CountAvailable(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	rooms, err := s.DB.RoomsByType(ctx, roomTypeID)
	if err != nil {
		return 0, fmt.Errorf("failed to load rooms for type %s: %w", roomTypeID, err)
	}

	bookedIDs, err := s.DB.BookedRoomIDs(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return 0, fmt.Errorf("failed to load booked rooms for type %s: %w", roomTypeID, err)
	}

	booked := make(map[string]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	count := 0
	for _, room := range rooms {
		if room.Status == models.RoomAvailable && !booked[room.ID] {
			count++
		}
	}
	return count, nil
}

// RoomFreeForBooking re-checks one room's availability for new dates while
// ignoring the booking's own existing occupancy. Used by modification.
func (s *Service) RoomFreeForBooking(ctx context.Context, roomID, bookingID string, checkIn, checkOut time.Time) (bool, error) {
	overlapping, err := s.DB.OverlappingBookings(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("failed to load overlapping bookings for room %s: %w", roomID, err)
	}
	for _, b := range overlapping {
		if b.ID != bookingID {
			return false, nil
		}
	}
	return true, nil
}

// FindAvailableRoomTypes lists active room types that can host the guest
// count and still have at least one free room for the date range.
func (s *Service) FindAvailableRoomTypes(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]models.RoomTypeAvailability, error) {
	cacheKey := fmt.Sprintf("availability:%s:%s:%d",
		checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"), guests)

	if s.Cache != nil {
		if listing, ok := s.Cache.GetListing(ctx, cacheKey); ok {
			return listing, nil
		}
	}

	roomTypes, err := s.DB.ActiveRoomTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}

	listing := []models.RoomTypeAvailability{}
	for _, rt := range roomTypes {
		if rt.MaxOccupancy < guests {
			continue
		}
		count, err := s.CountAvailable(ctx, rt.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if count < 1 {
			continue
		}
		listing = append(listing, models.RoomTypeAvailability{
			RoomType:       rt,
			AvailableCount: count,
		})
	}

	if s.Cache != nil {
		s.Cache.SetListing(ctx, cacheKey, listing)
	}
	return listing, nil
}
