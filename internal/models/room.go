package models

import (
	"time"

	"github.com/uptrace/bun"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

type Room struct {
	bun.BaseModel `bun:"table:rooms"`

	ID         string     `bun:"id,pk" json:"id"`
	RoomTypeID string     `bun:"room_type_id,notnull" json:"room_type_id"`
	RoomNumber string     `bun:"room_number,unique,notnull" json:"room_number"`
	Floor      int        `bun:"floor" json:"floor"`
	Status     RoomStatus `bun:"status,notnull" json:"status"`
	CreatedAt  time.Time  `bun:"created_at,nullzero" json:"created_at,omitempty"`
}

type RoomType struct {
	bun.BaseModel `bun:"table:room_types"`

	ID           string    `bun:"id,pk" json:"id"`
	Name         string    `bun:"name,unique,notnull" json:"name"`
	Description  string    `bun:"description" json:"description"`
	BasePrice    float64   `bun:"base_price,notnull" json:"base_price"`
	MaxOccupancy int       `bun:"max_occupancy,notnull" json:"max_occupancy"`
	ImageURLs    []string  `bun:"image_urls,array" json:"image_urls"`
	Amenities    []string  `bun:"amenities,array" json:"amenities"`
	Active       bool      `bun:"active,notnull" json:"active"`
	CreatedAt    time.Time `bun:"created_at,nullzero" json:"created_at,omitempty"`
}

// RoomTypeAvailability pairs a room type with how many of its rooms are free
// for a requested date range.
type RoomTypeAvailability struct {
	RoomType       RoomType `json:"room_type"`
	AvailableCount int      `json:"available_count"`
}
