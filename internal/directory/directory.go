// Package directory provides read access to the users and room_types
// reference tables that bookings hang off.
package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/models"
)

type UserDirectory struct {
	Bun *bun.DB
}

func NewUserDirectory(db *bun.DB) *UserDirectory {
	return &UserDirectory{Bun: db}
}

func (d *UserDirectory) FindByID(ctx context.Context, id string) (*models.User, error) {
	user := new(models.User)
	err := d.Bun.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (d *UserDirectory) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := d.Bun.NewSelect().Model(&users).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

type RoomTypeCatalog struct {
	Bun *bun.DB
}

func NewRoomTypeCatalog(db *bun.DB) *RoomTypeCatalog {
	return &RoomTypeCatalog{Bun: db}
}

func (c *RoomTypeCatalog) FindByID(ctx context.Context, id string) (*models.RoomType, error) {
	roomType := new(models.RoomType)
	err := c.Bun.NewSelect().Model(roomType).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("room type not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return roomType, nil
}

func (c *RoomTypeCatalog) ListActive(ctx context.Context) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := c.Bun.NewSelect().Model(&roomTypes).Where("active = ?", true).Order("name ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}
